package treatments

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TreatmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewTreatmentMongoRepository(db *mongo.Client, dbName string) contracts.TreatmentRepository {
	return &TreatmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTreatments),
	}
}

func (repo *TreatmentMongoRepository) CreateTreatment(ctx context.Context, treatment *models.Treatment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, treatment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrTreatmentAlreadyExists(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TreatmentMongoRepository) FindAll(ctx context.Context) ([]models.Treatment, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var treatments []models.Treatment
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return treatments, nil
}

func (repo *TreatmentMongoRepository) FindByName(ctx context.Context, name string) (*models.Treatment, error) {
	var treatment models.Treatment
	err := repo.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&treatment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &treatment, nil
}

func (repo *TreatmentMongoRepository) FindNames(ctx context.Context) ([]models.Treatment, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var treatments []models.Treatment
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return treatments, nil
}
