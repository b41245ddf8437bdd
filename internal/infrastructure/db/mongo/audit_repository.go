package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// AuditRepository persists report status-change events to the report_events
// audit collection. Written asynchronously by the dispatcher workers.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) InsertAuditEvent(ctx context.Context, ev *domain.ReportAuditEvent) error {
	doc := bson.M{
		"report_id":    ev.ReportID,
		"from":         string(ev.From),
		"to":           string(ev.To),
		"actor_id":     ev.ActorID,
		"timestamp":    ev.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if ev.Notes != "" {
		doc["notes"] = ev.Notes
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
