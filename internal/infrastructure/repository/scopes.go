package repository

import (
	"time"

	"github.com/sangkips/investify-receipts/internal/domain/enum"
	"github.com/sangkips/investify-receipts/pkg/pagination"
	"gorm.io/gorm"
)

// ScheduledBetween returns a GORM scope limiting print jobs to an inclusive
// [from, to] window. Bounds are stored and compared in UTC.
func ScheduledBetween(from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !from.IsZero() {
			db = db.Where("scheduled_at >= ?", from.UTC())
		}
		if !to.IsZero() {
			db = db.Where("scheduled_at <= ?", to.UTC())
		}
		return db
	}
}

// OfKind filters print jobs by kind; a nil kind matches all
func OfKind(kind *enum.PrintKind) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if kind == nil {
			return db
		}
		return db.Where("kind = ?", *kind)
	}
}

// Paginate applies page-based limit and offset
func Paginate(params *pagination.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset()).Limit(params.PerPage)
	}
}
