package doctors

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (repo *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (repo *DoctorMongoRepository) DeleteByID(ctx context.Context, doctorID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
