package payments

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

// UpsertByTransactionID writes the payment only when no record with the same
// transaction id exists yet. A replay matches the existing record, the
// $setOnInsert update leaves it untouched, and the original is returned.
func (repo *PaymentMongoRepository) UpsertByTransactionID(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	filter := bson.M{"transactionId": payment.TransactionID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"bookingId":     payment.BookingID,
			"email":         payment.Email,
			"amount":        payment.Amount,
			"transactionId": payment.TransactionID,
			"createdAt":     payment.CreatedAt,
			"updatedAt":     payment.UpdatedAt,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Payment
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpsertDocument(err)
	}
	return &stored, nil
}
