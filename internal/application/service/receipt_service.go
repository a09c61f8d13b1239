package service

import (
	"context"
	"sync"
	"time"

	"github.com/sangkips/investify-receipts/internal/application/render"
	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/internal/domain/enum"
	"github.com/sangkips/investify-receipts/internal/domain/repository"
	"github.com/sangkips/investify-receipts/pkg/apperror"
	"github.com/sangkips/investify-receipts/pkg/dateutil"
	"github.com/sangkips/investify-receipts/pkg/printer"
	"github.com/sangkips/investify-receipts/pkg/utils"
	"go.uber.org/zap"
)

// DefaultPrintDelay is how long a written surface settles before printing.
const DefaultPrintDelay = 500 * time.Millisecond

// ConfirmationPrefix prefixes generated BNPL confirmation numbers.
const ConfirmationPrefix = "BNPL-"

// StoreProfileProvider supplies the store identity for document headers.
type StoreProfileProvider interface {
	Profile(ctx context.Context) (entity.StoreProfile, error)
}

type terminalKey struct{}

// WithTerminalID tags ctx with the POS terminal that requested a print.
func WithTerminalID(ctx context.Context, terminalID string) context.Context {
	return context.WithValue(ctx, terminalKey{}, terminalID)
}

func terminalFromContext(ctx context.Context) string {
	id, _ := ctx.Value(terminalKey{}).(string)
	return id
}

// ReceiptService renders sale receipts and BNPL payment confirmations onto a print
// host and prints them after a settle delay.
type ReceiptService struct {
	host     printer.Host
	renderer *render.Renderer
	store    StoreProfileProvider
	jobRepo  repository.PrintJobRepository
	cal      *dateutil.Calendar
	delay    time.Duration
	logger   *zap.Logger

	pending sync.WaitGroup
}

// NewReceiptService creates a new receipt service. A negative delay uses DefaultPrintDelay.
func NewReceiptService(
	host printer.Host,
	renderer *render.Renderer,
	store StoreProfileProvider,
	jobRepo repository.PrintJobRepository,
	cal *dateutil.Calendar,
	delay time.Duration,
	logger *zap.Logger,
) *ReceiptService {
	if cal == nil {
		cal = dateutil.NewCalendar(nil, nil)
	}
	if delay < 0 {
		delay = DefaultPrintDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptService{
		host:     host,
		renderer: renderer,
		store:    store,
		jobRepo:  jobRepo,
		cal:      cal,
		delay:    delay,
		logger:   logger,
	}
}

// GenerateReceipt writes a sale receipt to a new surface and schedules it for printing.
// It returns once printing is scheduled.
func (s *ReceiptService) GenerateReceipt(ctx context.Context, receipt entity.SaleReceipt) (*entity.PrintJob, error) {
	field := zap.String("receipt_number", receipt.ReceiptNumber)

	surface, err := s.host.Open(ctx, render.ReceiptTitle(receipt.ReceiptNumber))
	if err != nil {
		s.logger.Error("Error generating receipt", field, zap.Error(err))
		return nil, apperror.NewSurfaceUnavailableError(err)
	}

	store, err := s.store.Profile(ctx)
	if err != nil {
		s.logger.Error("Error generating receipt", field, zap.Error(err))
		return nil, err
	}

	doc, err := s.renderer.SaleReceipt(s.host.Format(), store, receipt, s.cal.Now())
	if err != nil {
		s.logger.Error("Error generating receipt", field, zap.Error(err))
		return nil, err
	}

	if err := writeSurface(surface, doc); err != nil {
		s.logger.Error("Error generating receipt", field, zap.Error(err))
		return nil, err
	}

	return s.schedule(ctx, surface, enum.PrintKindReceipt, receipt.ReceiptNumber, "Receipt printed", field), nil
}

// GenerateBnplPaymentConfirmation writes a payment confirmation to a new surface and
// schedules it for printing. When the confirmation has no number, one is generated;
// the returned value carries the number that was printed.
func (s *ReceiptService) GenerateBnplPaymentConfirmation(ctx context.Context, confirmation entity.PaymentConfirmation) (entity.PaymentConfirmation, *entity.PrintJob, error) {
	confirmation = s.assignConfirmationNumber(confirmation)
	field := zap.String("confirmation_number", confirmation.ConfirmationNumber)

	surface, err := s.host.Open(ctx, render.ConfirmationTitle(confirmation.ConfirmationNumber))
	if err != nil {
		s.logger.Error("Error generating BNPL payment confirmation", field, zap.Error(err))
		return confirmation, nil, apperror.NewSurfaceUnavailableError(err)
	}

	store, err := s.store.Profile(ctx)
	if err != nil {
		s.logger.Error("Error generating BNPL payment confirmation", field, zap.Error(err))
		return confirmation, nil, err
	}

	doc, err := s.renderer.PaymentConfirmation(s.host.Format(), store, confirmation, s.cal.Now())
	if err != nil {
		s.logger.Error("Error generating BNPL payment confirmation", field, zap.Error(err))
		return confirmation, nil, err
	}

	if err := writeSurface(surface, doc); err != nil {
		s.logger.Error("Error generating BNPL payment confirmation", field, zap.Error(err))
		return confirmation, nil, err
	}

	job := s.schedule(ctx, surface, enum.PrintKindBnplConfirmation, confirmation.ConfirmationNumber,
		"BNPL payment confirmation printed", field)
	return confirmation, job, nil
}

// PreviewReceipt renders a sale receipt as HTML without printing it.
func (s *ReceiptService) PreviewReceipt(ctx context.Context, receipt entity.SaleReceipt) (render.Document, error) {
	store, err := s.store.Profile(ctx)
	if err != nil {
		return render.Document{}, err
	}
	return s.renderer.SaleReceipt(printer.FormatHTML, store, receipt, s.cal.Now())
}

// PreviewPaymentConfirmation renders a payment confirmation as HTML without printing it.
func (s *ReceiptService) PreviewPaymentConfirmation(ctx context.Context, confirmation entity.PaymentConfirmation) (render.Document, error) {
	store, err := s.store.Profile(ctx)
	if err != nil {
		return render.Document{}, err
	}
	confirmation = s.assignConfirmationNumber(confirmation)
	return s.renderer.PaymentConfirmation(printer.FormatHTML, store, confirmation, s.cal.Now())
}

// Status returns the print host status.
func (s *ReceiptService) Status() printer.Status {
	return s.host.Status()
}

// TestPrint prints a sample receipt.
func (s *ReceiptService) TestPrint(ctx context.Context) (*entity.PrintJob, error) {
	now := s.cal.Now()
	return s.GenerateReceipt(ctx, entity.SaleReceipt{
		ReceiptNumber: "TEST-" + now.Format("150405"),
		InvoiceNumber: "TEST-001",
		SaleDate:      now,
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 100, TotalPrice: 100},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 50, TotalPrice: 100},
		},
		Subtotal:      200,
		TotalAmount:   200,
		PaymentMethod: "cash",
		PaymentStatus: "paid",
	})
}

// Wait blocks until every scheduled print has fired.
func (s *ReceiptService) Wait() {
	s.pending.Wait()
}

func (s *ReceiptService) assignConfirmationNumber(c entity.PaymentConfirmation) entity.PaymentConfirmation {
	if c.ConfirmationNumber != "" {
		return c
	}
	return c.WithConfirmationNumber(utils.GenerateConfirmationNumber(ConfirmationPrefix, s.cal.Now()))
}

func writeSurface(surface printer.Surface, doc render.Document) error {
	if _, err := surface.Write(doc.Body); err != nil {
		return err
	}
	return surface.Close()
}

// schedule records a print job and fires Print after the settle delay.
// Scheduled prints are not cancellable.
func (s *ReceiptService) schedule(ctx context.Context, surface printer.Surface, kind enum.PrintKind, number, printedMsg string, field zap.Field) *entity.PrintJob {
	status := s.host.Status()
	job := &entity.PrintJob{
		Kind:           kind,
		DocumentNumber: number,
		Status:         enum.PrintJobStatusScheduled,
		HostType:       status.Type,
		Format:         string(status.Format),
		TerminalID:     terminalFromContext(ctx),
		ScheduledAt:    s.cal.Now().UTC(),
	}
	recorded := true
	if err := s.jobRepo.Create(ctx, job); err != nil {
		recorded = false
		s.logger.Warn("Failed to record print job", field, zap.Error(err))
	}
	jobID := job.ID

	s.pending.Add(1)
	time.AfterFunc(s.delay, func() {
		defer s.pending.Done()

		printErr := surface.Print(context.Background())
		if printErr != nil {
			s.logger.Error("Print failed", field, zap.Error(printErr))
		} else {
			s.logger.Info(printedMsg, field)
		}

		if !recorded {
			return
		}
		if err := s.jobRepo.MarkPrinted(context.Background(), jobID, s.cal.Now().UTC(), printErr); err != nil {
			s.logger.Warn("Failed to update print job", field, zap.Error(err))
		}
	})

	return job
}
