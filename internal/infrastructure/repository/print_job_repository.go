package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/internal/domain/enum"
	"github.com/sangkips/investify-receipts/internal/domain/repository"
	"github.com/sangkips/investify-receipts/pkg/pagination"
	"gorm.io/gorm"
)

type printJobRepository struct {
	db *gorm.DB
}

// NewPrintJobRepository creates a new print job repository
func NewPrintJobRepository(db *gorm.DB) repository.PrintJobRepository {
	return &printJobRepository{db: db}
}

func (r *printJobRepository) Create(ctx context.Context, job *entity.PrintJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *printJobRepository) MarkPrinted(ctx context.Context, id uuid.UUID, printedAt time.Time, printErr error) error {
	updates := map[string]interface{}{
		"status":     enum.PrintJobStatusPrinted,
		"printed_at": printedAt,
		"error":      "",
	}
	if printErr != nil {
		updates["status"] = enum.PrintJobStatusFailed
		updates["printed_at"] = nil
		updates["error"] = printErr.Error()
	}

	return r.db.WithContext(ctx).
		Model(&entity.PrintJob{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *printJobRepository) List(ctx context.Context, filter repository.PrintJobFilter, params *pagination.PaginationParams) ([]entity.PrintJob, int64, error) {
	var jobs []entity.PrintJob
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.PrintJob{}).
		Scopes(ScheduledBetween(filter.From, filter.To), OfKind(filter.Kind))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Scopes(Paginate(params)).
		Order("scheduled_at DESC").
		Find(&jobs).Error

	return jobs, total, err
}
