package availability

import (
	"context"
	"errors"
	"meetslot-service/internal/app/contracts"
	"meetslot-service/internal/app/models"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilities),
	}
}

// FindByUserID returns nil without error when the user has no stored record.
func (r *AvailabilityMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Availability, error) {
	var availability models.Availability
	err := r.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&availability)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &availability, nil
}

func (r *AvailabilityMongoRepository) Upsert(ctx context.Context, availability *models.Availability) error {
	filter := bson.M{"_id": availability.UserID}
	update := bson.M{
		"$set": bson.M{
			"days":      availability.Days,
			"timeGap":   availability.TimeGap,
			"updatedAt": availability.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": availability.CreatedAt},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
