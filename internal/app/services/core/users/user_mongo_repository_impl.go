package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

// UpsertByEmail registers or refreshes a user keyed by email. The role is
// deliberately left out of the update so re-registration never strips a grant.
func (repo *UserMongoRepository) UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error) {
	filter := bson.M{"email": user.Email}
	update := bson.M{
		"$set": bson.M{
			"name":      user.Name,
			"updatedAt": user.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"email":     user.Email,
			"createdAt": user.CreatedAt,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.User
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpsertDocument(err)
	}
	return &stored, nil
}

func (repo *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (repo *UserMongoRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (repo *UserMongoRepository) GrantAdminByID(ctx context.Context, userID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{"role": constvars.RoleAdmin},
	}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}
