package response

import (
	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/pkg/dateutil"
	"github.com/sangkips/investify-receipts/pkg/pagination"
)

// PrintScheduledResponse is returned once a document is written and queued for printing
type PrintScheduledResponse struct {
	DocumentNumber string           `json:"document_number"`
	Job            *entity.PrintJob `json:"job"`
}

// ConfirmationScheduledResponse carries the confirmation number that was printed
type ConfirmationScheduledResponse struct {
	ConfirmationNumber string                     `json:"confirmation_number"`
	Confirmation       entity.PaymentConfirmation `json:"confirmation"`
	Job                *entity.PrintJob           `json:"job"`
}

// DateRangeResponse shows a resolved range as UTC instants and in Pakistan time
type DateRangeResponse struct {
	Period       string `json:"period"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	StartDisplay string `json:"start_display"`
	EndDisplay   string `json:"end_display"`
}

// NewDateRangeResponse formats rng for API output
func NewDateRangeResponse(period string, rng dateutil.DateRange, cal *dateutil.Calendar) DateRangeResponse {
	if period == "" {
		period = string(dateutil.PeriodToday)
	}
	return DateRangeResponse{
		Period:       period,
		StartDate:    dateutil.FormatDateForDatabase(rng.Start),
		EndDate:      dateutil.FormatDateForDatabase(rng.End),
		StartDisplay: cal.FormatForDisplay(rng.Start),
		EndDisplay:   cal.FormatForDisplay(rng.End),
	}
}

// PrintJobListResponse is a page of print history within a date range
type PrintJobListResponse struct {
	Range      DateRangeResponse       `json:"range"`
	Items      []entity.PrintJob       `json:"items"`
	Pagination *pagination.Pagination `json:"pagination"`
}
