package bookings

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

// InsertBooking is the single conditional write of the submission path. The
// duplicate-booking check and the slot-consumption check both live in unique
// indexes, so there is no read-then-insert window between them.
func (repo *BookingMongoRepository) InsertBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", translateDuplicateKey(err, booking.AppointmentDate)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *BookingMongoRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (repo *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var booking models.Booking
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) FindByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"appointmentDate": appointmentDate})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (repo *BookingMongoRepository) FindByTreatmentAndDate(ctx context.Context, treatment, appointmentDate string) ([]models.Booking, error) {
	filter := bson.M{
		"treatment":       treatment,
		"appointmentDate": appointmentDate,
	}
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

// MarkPaid matches an unpaid booking or a same-transaction replay, so a retry
// never creates a second transition and a different transaction id never
// overwrites the recorded one.
func (repo *BookingMongoRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id": objectID,
		"$or": []bson.M{
			{"paymentStatus": constvars.PaymentStatusUnpaid},
			{"transactionId": transactionID},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"paymentStatus": constvars.PaymentStatusPaid,
			"transactionId": transactionID,
		},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

// translateDuplicateKey maps a unique-index violation onto the conflict it
// represents, keyed by the index name embedded in the server error message.
func translateDuplicateKey(err error, appointmentDate string) error {
	message := err.Error()
	switch {
	case strings.Contains(message, constvars.MongoIndexUniquePatientBooking):
		return exceptions.ErrDuplicateBooking(err, appointmentDate)
	case strings.Contains(message, constvars.MongoIndexUniqueSlotBooking):
		return exceptions.ErrSlotAlreadyTaken(err)
	default:
		return exceptions.ErrMongoDBInsertDocument(err)
	}
}
