package main

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/drivers/database"
	"doctorsportal-service/internal/pkg/constvars"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The booking consistency model depends on these indexes: duplicate bookings
// and double-booked slots are rejected by the server, not by application-level
// read-then-write checks. Run this before the first deploy.
func main() {
	driverConfig := config.NewDriverConfig()

	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndex(ctx, db.Collection(constvars.MongoCollectionBookings), mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "treatment", Value: 1},
			{Key: "appointmentDate", Value: 1},
		},
		Options: options.Index().
			SetName(constvars.MongoIndexUniquePatientBooking).
			SetUnique(true),
	})

	createIndex(ctx, db.Collection(constvars.MongoCollectionBookings), mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "appointmentDate", Value: 1},
			{Key: "slot", Value: 1},
		},
		Options: options.Index().
			SetName(constvars.MongoIndexUniqueSlotBooking).
			SetUnique(true),
	})

	createIndex(ctx, db.Collection(constvars.MongoCollectionPayments), mongo.IndexModel{
		Keys: bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().
			SetName(constvars.MongoIndexUniqueTransaction).
			SetUnique(true),
	})

	createIndex(ctx, db.Collection(constvars.MongoCollectionUsers), mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName(constvars.MongoIndexUniqueUserEmail).
			SetUnique(true),
	})

	createIndex(ctx, db.Collection(constvars.MongoCollectionTreatments), mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetName(constvars.MongoIndexUniqueTreatmentName).
			SetUnique(true),
	})

	if err := client.Disconnect(ctx); err != nil {
		logrus.Fatalf("Failed to disconnect from MongoDB: %v", err)
	}
	logrus.Println("Migration finished")
}

func createIndex(ctx context.Context, collection *mongo.Collection, model mongo.IndexModel) {
	name, err := collection.Indexes().CreateOne(ctx, model)
	if err != nil {
		logrus.Fatalf("Failed to create index on %s: %v", collection.Name(), err)
	}
	logrus.Printf("Created index %s on %s", name, collection.Name())
}
