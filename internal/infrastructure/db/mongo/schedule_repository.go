package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

// ScheduleRepository implements ports.ScheduleRepository. It holds the client
// as well as the database because pickup booking runs in a multi-document
// transaction spanning the users and waste_schedules collections.
type ScheduleRepository struct {
	client *mongo.Client
	users  *mongo.Collection
	coll   *mongo.Collection
}

func NewScheduleRepository(client *mongo.Client, db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{
		client: client,
		users:  db.Collection(usersCollection),
		coll:   db.Collection(schedulesCollection),
	}
}

type scheduleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	CollectorID string             `bson:"collector_id"`
	Date        time.Time          `bson:"date"`
	Status      string             `bson:"status"`
	PointsUsed  int                `bson:"points_used"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// SchedulePickup runs balance check, point deduction and schedule insertion
// inside one transaction. Any failure aborts the whole transaction: the user's
// balance is unchanged and no schedule document exists afterwards. No retry is
// attempted; the caller sees the original error and may resubmit.
func (r *ScheduleRepository) SchedulePickup(ctx context.Context, params ports.SchedulePickupParams) (*domain.WasteSchedule, error) {
	userOID, err := primitive.ObjectIDFromHex(params.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	now := time.Now().UTC()

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var user userDoc
		if err := r.users.FindOne(sc, bson.M{"_id": userOID}).Decode(&user); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrUserNotFound
			}
			return nil, fmt.Errorf("find user: %w", err)
		}

		if user.Points < params.PointsUsed {
			return nil, domain.ErrInsufficientPoints
		}

		_, err := r.users.UpdateOne(sc, bson.M{"_id": userOID}, bson.M{
			"$inc": bson.M{"points": -params.PointsUsed},
			"$set": bson.M{"updated_at": now},
		})
		if err != nil {
			return nil, fmt.Errorf("deduct points: %w", err)
		}

		doc := scheduleDoc{
			UserID:      params.UserID,
			CollectorID: params.CollectorID,
			Date:        params.Date.UTC(),
			Status:      string(domain.ScheduleScheduled),
			PointsUsed:  params.PointsUsed,
			CreatedAt:   now,
		}

		res, err := r.coll.InsertOne(sc, doc)
		if err != nil {
			return nil, fmt.Errorf("insert schedule: %w", err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	doc := result.(scheduleDoc)
	return &domain.WasteSchedule{
		ID:          doc.ID.Hex(),
		UserID:      doc.UserID,
		CollectorID: doc.CollectorID,
		Date:        doc.Date,
		Status:      domain.ScheduleStatus(doc.Status),
		PointsUsed:  doc.PointsUsed,
		CreatedAt:   doc.CreatedAt,
	}, nil
}

// EnsureIndexes creates lookup indexes for user and collector views.
func (r *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "collector_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
