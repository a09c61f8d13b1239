package service

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/internal/domain/enum"
	"github.com/sangkips/investify-receipts/internal/domain/repository"
	"github.com/sangkips/investify-receipts/pkg/apperror"
	"github.com/sangkips/investify-receipts/pkg/dateutil"
	"github.com/sangkips/investify-receipts/pkg/pagination"
)

// PrintJobService reads the print history
type PrintJobService struct {
	jobRepo repository.PrintJobRepository
	cal     *dateutil.Calendar
}

// NewPrintJobService creates a new print job service
func NewPrintJobService(jobRepo repository.PrintJobRepository, cal *dateutil.Calendar) *PrintJobService {
	if cal == nil {
		cal = dateutil.NewCalendar(nil, nil)
	}
	return &PrintJobService{
		jobRepo: jobRepo,
		cal:     cal,
	}
}

// ListPrintJobsInput represents the filters for listing print jobs
type ListPrintJobsInput struct {
	Period      string
	CustomStart *time.Time
	CustomEnd   *time.Time
	Kind        *enum.PrintKind
}

// ResolveRange turns a period tag and optional custom bounds into a Pakistan date range.
// Bad input is reported as a 400.
func (s *PrintJobService) ResolveRange(period string, customStart, customEnd *time.Time) (dateutil.DateRange, error) {
	p, err := dateutil.ParsePeriod(period)
	if err != nil {
		return dateutil.DateRange{}, apperror.NewInvalidArgumentError(err)
	}
	rng, err := s.cal.DateRange(p, customStart, customEnd)
	if err != nil {
		if errors.Is(err, dateutil.ErrInvalidArgument) {
			return dateutil.DateRange{}, apperror.NewInvalidArgumentError(err)
		}
		return dateutil.DateRange{}, err
	}
	return rng, nil
}

// List returns print jobs scheduled within the requested period, newest first
func (s *PrintJobService) List(ctx context.Context, input ListPrintJobsInput, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.PrintJob], dateutil.DateRange, error) {
	rng, err := s.ResolveRange(input.Period, input.CustomStart, input.CustomEnd)
	if err != nil {
		return nil, dateutil.DateRange{}, err
	}

	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	jobs, total, err := s.jobRepo.List(ctx, repository.PrintJobFilter{
		From: rng.Start,
		To:   rng.End,
		Kind: input.Kind,
	}, params)
	if err != nil {
		return nil, dateutil.DateRange{}, err
	}

	return pagination.NewPaginatedResult(jobs, params, total), rng, nil
}

// ParseDate parses a start_date or end_date query value in Pakistan time
func (s *PrintJobService) ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := s.cal.ParseDate(value)
	if err != nil {
		return nil, apperror.NewInvalidArgumentError(err)
	}
	return &t, nil
}

// Calendar returns the calendar used to resolve ranges
func (s *PrintJobService) Calendar() *dateutil.Calendar {
	return s.cal
}
