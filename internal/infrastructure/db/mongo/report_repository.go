package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

// ReportRepository implements ports.ReportRepository backed by waste_reports.
type ReportRepository struct {
	coll *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{coll: db.Collection(reportsCollection)}
}

type reportDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	Description  string             `bson:"description"`
	WasteType    string             `bson:"waste_type"`
	Location     domain.Coordinates `bson:"location"`
	QuantityKg   float64            `bson:"quantity_kg,omitempty"`
	Status       string             `bson:"status"`
	PointsEarned int                `bson:"points_earned"`
	Notes        string             `bson:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d reportDoc) toDomain() domain.WasteReport {
	return domain.WasteReport{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		Description:  d.Description,
		WasteType:    domain.WasteType(d.WasteType),
		Location:     d.Location,
		QuantityKg:   d.QuantityKg,
		Status:       domain.ReportStatus(d.Status),
		PointsEarned: d.PointsEarned,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.WasteReport) (*domain.WasteReport, error) {
	doc := reportDoc{
		UserID:       report.UserID,
		Description:  report.Description,
		WasteType:    string(report.WasteType),
		Location:     report.Location,
		QuantityKg:   report.QuantityKg,
		Status:       string(report.Status),
		PointsEarned: report.PointsEarned,
		CreatedAt:    report.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	created := *report
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id string) (*domain.WasteReport, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}

	var doc reportDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}

	report := doc.toDomain()
	return &report, nil
}

func (r *ReportRepository) ListByUser(ctx context.Context, userID string) ([]domain.WasteReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reports by user: %w", err)
	}
	return decodeReports(ctx, cur)
}

func (r *ReportRepository) List(ctx context.Context, filter ports.ReportFilter) ([]domain.WasteReport, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return decodeReports(ctx, cur)
}

func (r *ReportRepository) UpdateStatus(ctx context.Context, id string, status domain.ReportStatus, notes string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReportNotFound
	}

	set := bson.M{"status": string(status)}
	if notes != "" {
		set["notes"] = notes
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update report status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

// EnsureIndexes creates the owner and status queue indexes.
func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeReports(ctx context.Context, cur *mongo.Cursor) ([]domain.WasteReport, error) {
	defer cur.Close(ctx)

	var reports []domain.WasteReport
	for cur.Next(ctx) {
		var doc reportDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		reports = append(reports, doc.toDomain())
	}
	return reports, cur.Err()
}
