package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/metrics"
)

// ModerationRepository stores moderation reports.
type ModerationRepository struct {
	reportCollection *mongo.Collection
	validator        EntityValidator
}

func NewModerationRepository(db *mongo.Database, validator EntityValidator) *ModerationRepository {
	return &ModerationRepository{reportCollection: db.Collection("moderationreports"), validator: validator}
}

var _ contract.IModerationRepository = (*ModerationRepository)(nil)

func (r *ModerationRepository) CreateReport(ctx context.Context, report *entity.ModerationReport) error {
	if err := r.validator.ValidateEntity(report); err != nil {
		return err
	}
	if _, err := r.reportCollection.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *ModerationRepository) GetReports(ctx context.Context) ([]*entity.ModerationReport, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.reportCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find reports: %w", err)
	}
	defer cursor.Close(ctx)

	reports := []*entity.ModerationReport{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}

func (r *ModerationRepository) UpdateReportStatus(ctx context.Context, id string, status entity.ReportStatus) (*entity.ModerationReport, error) {
	if err := checkEnum("status", status); err != nil {
		return nil, err
	}
	var report entity.ModerationReport
	if err := setField(ctx, r.reportCollection, id, "status", status, &report); err != nil {
		return nil, fmt.Errorf("report %s: %w", id, err)
	}
	return &report, nil
}

func (r *ModerationRepository) CountReportsByStatus(ctx context.Context, status entity.ReportStatus) (int64, error) {
	return r.reportCollection.CountDocuments(ctx, bson.M{"status": status})
}

func (r *ModerationRepository) CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error) {
	return countGroupedBy(ctx, r.reportCollection, "status")
}

// ActivityLogRepository appends to and reads the audit trail.
type ActivityLogRepository struct {
	collection *mongo.Collection
	validator  EntityValidator
}

func NewActivityLogRepository(db *mongo.Database, validator EntityValidator) *ActivityLogRepository {
	return &ActivityLogRepository{collection: db.Collection("activitylogs"), validator: validator}
}

var _ contract.IActivityLogRepository = (*ActivityLogRepository)(nil)

func (r *ActivityLogRepository) AppendLog(ctx context.Context, log *entity.ActivityLog) error {
	if err := r.validator.ValidateEntity(log); err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, log); err != nil {
		metrics.ActivityLogFailures.Inc()
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

func (r *ActivityLogRepository) GetRecentLogs(ctx context.Context, limit int64) ([]*entity.ActivityLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activity logs: %w", err)
	}
	defer cursor.Close(ctx)

	logs := []*entity.ActivityLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode activity logs: %w", err)
	}
	return logs, nil
}
