package mongo

import (
	"context"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/profile"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	collProfiles      = "profiles"
	collBusinesses    = "businesses"
	collInvestments   = "investments"
	collDocuments     = "documents"
	collActivities    = "activities"
	collNotifications = "notifications"
)

// profileRepository implements profile.Repository on MongoDB
type profileRepository struct {
	db     *mongo.Database
	logger *logger.Logger
}

func NewProfileRepository(db *mongo.Database, logger *logger.Logger) profile.Repository {
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) GetProfile(ctx context.Context, accountID string) (*profile.Profile, error) {
	var p profile.Profile
	err := r.db.Collection(collProfiles).
		FindOne(ctx, bson.M{"_id": accountID}).
		Decode(&p)
	if err != nil {
		if ierr.Is(err, mongo.ErrNoDocuments) {
			return nil, ierr.NewError("profile not found").
				WithHint("No account exists with this id").
				WithReportableDetails(map[string]any{
					"account_id": accountID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load the account profile").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *profileRepository) UpdateSubscription(ctx context.Context, accountID string, sub *subscription.Subscription) error {
	result, err := r.db.Collection(collProfiles).UpdateOne(ctx,
		bson.M{"_id": accountID},
		bson.M{"$set": bson.M{
			"subscription": sub,
			"updatedAt":    time.Now().UTC(),
		}},
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to persist the subscription change").
			Mark(ierr.ErrDatabase)
	}
	if result.MatchedCount == 0 {
		return ierr.NewError("profile not found").
			WithHint("No account exists with this id").
			WithReportableDetails(map[string]any{
				"account_id": accountID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *profileRepository) CountBusinessProfiles(ctx context.Context, accountID string) (int64, error) {
	count, err := r.db.Collection(collBusinesses).
		CountDocuments(ctx, bson.M{"ownerId": accountID})
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count business profiles").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *profileRepository) CountInvestmentsSince(ctx context.Context, accountID string, since time.Time) (int64, error) {
	count, err := r.db.Collection(collInvestments).
		CountDocuments(ctx, bson.M{
			"investorId": accountID,
			"createdAt":  bson.M{"$gte": since},
		})
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count investments").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *profileRepository) StorageUsedGB(ctx context.Context, accountID string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ownerId": accountID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"bytes": bson.M{"$sum": "$sizeBytes"},
		}}},
	}

	cursor, err := r.db.Collection(collDocuments).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to compute storage usage").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Bytes int64 `bson:"bytes"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to compute storage usage").
			Mark(ierr.ErrDatabase)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return float64(results[0].Bytes) / (1 << 30), nil
}

func (r *profileRepository) LogActivity(ctx context.Context, activity *profile.Activity) error {
	_, err := r.db.Collection(collActivities).InsertOne(ctx, activity)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record activity").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *profileRepository) CreateNotification(ctx context.Context, notification *profile.Notification) error {
	_, err := r.db.Collection(collNotifications).InsertOne(ctx, notification)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create notification").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
