package meetings

import (
	"context"
	"errors"
	"meetslot-service/internal/app/contracts"
	"meetslot-service/internal/app/models"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/exceptions"
	"meetslot-service/internal/pkg/scheduling"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var closedStatuses = []string{string(scheduling.StatusCancelled), string(scheduling.StatusRejected)}

type MeetingMongoRepository struct {
	Collection *mongo.Collection
}

func NewMeetingMongoRepository(db *mongo.Client, dbName string) contracts.MeetingRepository {
	return &MeetingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMeetings),
	}
}

func (r *MeetingMongoRepository) Insert(ctx context.Context, meeting *models.Meeting) error {
	_, err := r.Collection.InsertOne(ctx, meeting)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// FindByID returns nil without error when no meeting has meetingID.
func (r *MeetingMongoRepository) FindByID(ctx context.Context, meetingID string) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.Collection.FindOne(ctx, bson.M{"_id": meetingID}).Decode(&meeting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &meeting, nil
}

// Update writes meeting when the stored version equals meeting.Version and
// bumps the version on success.
func (r *MeetingMongoRepository) Update(ctx context.Context, meeting *models.Meeting) (bool, error) {
	filter := bson.M{"_id": meeting.ID, "version": meeting.Version}
	update := bson.M{
		"$set": bson.M{
			"status":       meeting.Status,
			"participants": meeting.Participants,
			"updatedAt":    meeting.UpdatedAt,
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return false, nil
	}
	meeting.Version++
	return true, nil
}

func (r *MeetingMongoRepository) FindByViewer(ctx context.Context, viewerID string) ([]models.Meeting, error) {
	filter := bson.M{"$or": []bson.M{
		{"hostId": viewerID},
		{"participants.identity": viewerID},
	}}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startsAt", Value: 1}}))
}

// FindActiveOnDate lists meetings on date that userID hosts or was invited to
// and that are neither cancelled nor rejected.
func (r *MeetingMongoRepository) FindActiveOnDate(ctx context.Context, userID, date string) ([]models.Meeting, error) {
	filter := bson.M{
		"date":   date,
		"status": bson.M{"$nin": closedStatuses},
		"$or": []bson.M{
			{"hostId": userID},
			{"participants.identity": userID},
		},
	}
	return r.find(ctx, filter)
}

func (r *MeetingMongoRepository) FindEndedBetween(ctx context.Context, from, to time.Time) ([]models.Meeting, error) {
	filter := bson.M{
		"endsAt": bson.M{"$gte": from, "$lte": to},
		"status": bson.M{"$nin": closedStatuses},
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "endsAt", Value: 1}}))
}

func (r *MeetingMongoRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Meeting, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	meetings := make([]models.Meeting, 0)
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return meetings, nil
}
