package printer

import (
	"context"
	"fmt"
)

// Mailer sends an HTML body to a recipient.
type Mailer interface {
	SendHTML(to, subject, htmlBody string) error
	Configured() bool
}

// --- Email Printer (digital receipt copy to an inbox) ---

type mailHost struct {
	mailer Mailer
	inbox  string
}

// NewMailHost creates a host that "prints" by emailing the HTML document to inbox.
func NewMailHost(mailer Mailer, inbox string) Host {
	return &mailHost{mailer: mailer, inbox: inbox}
}

func (h *mailHost) Open(ctx context.Context, title string) (Surface, error) {
	if h.mailer == nil || !h.mailer.Configured() || h.inbox == "" {
		return nil, unavailable("email host is not configured")
	}
	return &bufferedSurface{
		send: func(ctx context.Context, data []byte) error {
			if err := h.mailer.SendHTML(h.inbox, title, string(data)); err != nil {
				return fmt.Errorf("printer: failed to email %q: %w", title, err)
			}
			return nil
		},
	}, nil
}

func (h *mailHost) Format() Format {
	return FormatHTML
}

func (h *mailHost) Status() Status {
	configured := h.mailer != nil && h.mailer.Configured() && h.inbox != ""
	return Status{Configured: configured, Connected: configured, Type: "email", Format: FormatHTML}
}
