package database

import (
	"meetslot-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionIndexes lists the indexes each collection needs, keyed by
// collection name. Availability documents are keyed by user id and need none.
func CollectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		constvars.MongoCollectionMeetings: {
			{
				Keys:    bson.D{{Key: "hostId", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetName("host_date"),
			},
			{
				Keys:    bson.D{{Key: "participants.identity", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetName("participant_date"),
			},
			{
				Keys:    bson.D{{Key: "endsAt", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("ends_at_status"),
			},
			{
				Keys:    bson.D{{Key: "startsAt", Value: 1}},
				Options: options.Index().SetName("starts_at"),
			},
		},
	}
}
