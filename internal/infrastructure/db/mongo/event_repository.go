package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

// EventRepository implements ports.EventRepository backed by the events
// collection, joining organizer profiles from users on listing.
type EventRepository struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		coll:  db.Collection(eventsCollection),
		users: db.Collection(usersCollection),
	}
}

type eventDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
	Location    string             `bson:"location"`
	Image       *domain.EventImage `bson:"image,omitempty"`
	OrganizerID string             `bson:"organizer_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d eventDoc) toDomain() domain.Event {
	return domain.Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		Location:    d.Location,
		Image:       d.Image,
		OrganizerID: d.OrganizerID,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *EventRepository) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	doc := eventDoc{
		Title:       ev.Title,
		Description: ev.Description,
		Date:        ev.Date.UTC(),
		Location:    ev.Location,
		Image:       ev.Image,
		OrganizerID: ev.OrganizerID,
		CreatedAt:   ev.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *ev
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// List returns all events newest date first, each joined with the organizer's
// public profile. Organizers that no longer exist leave the embedded profile
// with only the id set.
func (r *EventRepository) List(ctx context.Context) ([]ports.EventWithOrganizer, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var out []ports.EventWithOrganizer
	for cur.Next(ctx) {
		var doc eventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}

		item := ports.EventWithOrganizer{
			Event:     doc.toDomain(),
			Organizer: domain.EventOrganizer{ID: doc.OrganizerID},
		}
		if oid, err := primitive.ObjectIDFromHex(doc.OrganizerID); err == nil {
			var organizer userDoc
			if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&organizer); err == nil {
				item.Organizer.Name = organizer.Name
				item.Organizer.Role = domain.Role(organizer.Role)
			}
		}
		out = append(out, item)
	}
	return out, cur.Err()
}

// EnsureIndexes creates the date-sorted listing index.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	})
	return err
}
