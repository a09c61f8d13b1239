package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/internal/domain/enum"
	"github.com/sangkips/investify-receipts/pkg/pagination"
)

// PrintJobFilter narrows print history queries
type PrintJobFilter struct {
	From time.Time
	To   time.Time
	Kind *enum.PrintKind
}

// PrintJobRepository defines the interface for print history data access
type PrintJobRepository interface {
	Create(ctx context.Context, job *entity.PrintJob) error
	// MarkPrinted sets the final status of a job; printErr is stored when non-nil
	MarkPrinted(ctx context.Context, id uuid.UUID, printedAt time.Time, printErr error) error
	List(ctx context.Context, filter PrintJobFilter, params *pagination.PaginationParams) ([]entity.PrintJob, int64, error)
}
