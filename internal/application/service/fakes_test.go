package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/internal/domain/repository"
	"github.com/sangkips/investify-receipts/pkg/pagination"
	"github.com/sangkips/investify-receipts/pkg/printer"
)

type fakeSurface struct {
	mu       sync.Mutex
	data     []byte
	closed   bool
	printed  bool
	printErr error
}

func (s *fakeSurface) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, p...)
	return len(p), nil
}

func (s *fakeSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSurface) Print(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.printed = true
	return s.printErr
}

func (s *fakeSurface) isPrinted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.printed
}

type fakeHost struct {
	mu       sync.Mutex
	openErr  error
	printErr error
	titles   []string
	surfaces []*fakeSurface
}

func (h *fakeHost) Open(ctx context.Context, title string) (printer.Surface, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.openErr != nil {
		return nil, h.openErr
	}
	s := &fakeSurface{printErr: h.printErr}
	h.titles = append(h.titles, title)
	h.surfaces = append(h.surfaces, s)
	return s, nil
}

func (h *fakeHost) Format() printer.Format { return printer.FormatHTML }

func (h *fakeHost) Status() printer.Status {
	return printer.Status{Configured: true, Connected: true, Type: "fake", Format: printer.FormatHTML}
}

type markCall struct {
	id        uuid.UUID
	printedAt time.Time
	err       error
}

type fakeJobRepo struct {
	mu        sync.Mutex
	createErr error
	jobs      []entity.PrintJob
	marks     []markCall
	filter    repository.PrintJobFilter
	params    *pagination.PaginationParams
	total     int64
}

func (r *fakeJobRepo) Create(ctx context.Context, job *entity.PrintJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	job.ID = uuid.New()
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *fakeJobRepo) MarkPrinted(ctx context.Context, id uuid.UUID, printedAt time.Time, printErr error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marks = append(r.marks, markCall{id: id, printedAt: printedAt, err: printErr})
	return nil
}

func (r *fakeJobRepo) List(ctx context.Context, filter repository.PrintJobFilter, params *pagination.PaginationParams) ([]entity.PrintJob, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filter = filter
	r.params = params
	return r.jobs, r.total, nil
}

func (r *fakeJobRepo) markCalls() []markCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]markCall(nil), r.marks...)
}

type fakeStoreRepo struct {
	profile *entity.StoreProfile
	err     error
	created int
	updated int
}

func (r *fakeStoreRepo) Get(ctx context.Context) (*entity.StoreProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.profile == nil {
		return nil, nil
	}
	p := *r.profile
	return &p, nil
}

func (r *fakeStoreRepo) Create(ctx context.Context, profile *entity.StoreProfile) error {
	profile.ID = uuid.New()
	p := *profile
	r.profile = &p
	r.created++
	return nil
}

func (r *fakeStoreRepo) Update(ctx context.Context, profile *entity.StoreProfile) error {
	p := *profile
	r.profile = &p
	r.updated++
	return nil
}
