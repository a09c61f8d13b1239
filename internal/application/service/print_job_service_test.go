package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/pkg/apperror"
	"github.com/sangkips/investify-receipts/pkg/dateutil"
	"github.com/sangkips/investify-receipts/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrintJobService(repo *fakeJobRepo) *PrintJobService {
	return NewPrintJobService(repo, dateutil.NewCalendar(pkt, func() time.Time {
		return time.Date(2024, 3, 15, 20, 30, 0, 0, time.UTC)
	}))
}

func TestPrintJobService_ListToday(t *testing.T) {
	repo := &fakeJobRepo{jobs: []entity.PrintJob{{DocumentNumber: "R-1"}}, total: 1}
	svc := newPrintJobService(repo)

	result, rng, err := svc.List(context.Background(), ListPrintJobsInput{}, &pagination.PaginationParams{Page: 0, PerPage: 500})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, rng.Start, repo.filter.From)
	assert.Equal(t, rng.End, repo.filter.To)
	assert.Equal(t, 1, repo.params.Page)
	assert.Equal(t, 100, repo.params.PerPage)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestPrintJobService_InvalidInput(t *testing.T) {
	svc := newPrintJobService(&fakeJobRepo{})

	_, _, err := svc.List(context.Background(), ListPrintJobsInput{Period: "fortnight"}, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	assert.ErrorIs(t, err, dateutil.ErrInvalidArgument)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, pkt)
	_, _, err = svc.List(context.Background(), ListPrintJobsInput{Period: "custom", CustomStart: &start}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, dateutil.ErrInvalidArgument)
}

func TestPrintJobService_ParseDate(t *testing.T) {
	svc := newPrintJobService(&fakeJobRepo{})

	none, err := svc.ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, none)

	day, err := svc.ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, pkt).Unix(), day.Unix())

	_, err = svc.ParseDate("yesterday-ish")
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
