package printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"
)

// Format is the byte format a host expects documents in.
type Format string

const (
	FormatHTML   Format = "html"
	FormatESCPOS Format = "escpos"
)

var (
	// ErrSurfaceUnavailable is returned when a host declines to open a new surface.
	ErrSurfaceUnavailable = errors.New("printer: surface unavailable")
	// ErrSurfaceClosed is returned when writing to a surface that was already closed.
	ErrSurfaceClosed = errors.New("printer: surface closed for writing")
)

// Host opens display surfaces for printable documents.
type Host interface {
	// Open returns a new surface, or an error wrapping ErrSurfaceUnavailable.
	Open(ctx context.Context, title string) (Surface, error)
	// Format returns the document format the host renders.
	Format() Format
	// Status returns connection status information.
	Status() Status
}

// Surface is a single document destination. Documents are written, the surface is
// closed for writes, and Print sends the result to the device.
type Surface interface {
	Write(p []byte) (int, error)
	Close() error
	Print(ctx context.Context) error
}

// Status describes a host for diagnostics.
type Status struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Format     Format `json:"format"`
}

func unavailable(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSurfaceUnavailable, fmt.Sprintf(format, args...))
}

// bufferedSurface collects a document in memory and hands it to send on Print.
type bufferedSurface struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	closed  bool
	onClose func(data []byte) error
	send    func(ctx context.Context, data []byte) error
}

func (s *bufferedSurface) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrSurfaceClosed
	}
	return s.buf.Write(p)
}

func (s *bufferedSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.onClose != nil {
		return s.onClose(s.buf.Bytes())
	}
	return nil
}

func (s *bufferedSurface) Print(ctx context.Context) error {
	if err := s.Close(); err != nil {
		return err
	}
	s.mu.Lock()
	data := append([]byte(nil), s.buf.Bytes()...)
	s.mu.Unlock()
	if s.send == nil {
		return nil
	}
	return s.send(ctx, data)
}

// --- USB Printer (writes to device file, e.g. /dev/usb/lp0) ---

type usbHost struct {
	path string
}

// NewUSBHost creates a host that writes ESC/POS bytes to a USB device file.
func NewUSBHost(devicePath string) Host {
	return &usbHost{path: devicePath}
}

func (h *usbHost) Open(ctx context.Context, title string) (Surface, error) {
	if _, err := os.Stat(h.path); err != nil {
		return nil, unavailable("USB device %s: %v", h.path, err)
	}
	return &bufferedSurface{send: h.print}, nil
}

func (h *usbHost) print(ctx context.Context, data []byte) error {
	f, err := os.OpenFile(h.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", h.path, err)
	}
	defer f.Close()

	_, err = f.Write(data)
	if err != nil {
		return fmt.Errorf("printer: failed to write to USB device %s: %w", h.path, err)
	}
	return nil
}

func (h *usbHost) Format() Format {
	return FormatESCPOS
}

func (h *usbHost) Status() Status {
	_, err := os.Stat(h.path)
	return Status{Configured: true, Connected: err == nil, Type: "usb", Format: FormatESCPOS}
}

// --- Network Printer (dials TCP, e.g. 192.168.1.100:9100) ---

type networkHost struct {
	address string
	timeout time.Duration
}

// NewNetworkHost creates a host that sends ESC/POS bytes over raw TCP.
// Address should include port, e.g. "192.168.1.100:9100".
func NewNetworkHost(address string) Host {
	return &networkHost{
		address: address,
		timeout: 5 * time.Second,
	}
}

func (h *networkHost) Open(ctx context.Context, title string) (Surface, error) {
	dialer := net.Dialer{Timeout: 2 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", h.address)
	if err != nil {
		return nil, unavailable("printer %s unreachable: %v", h.address, err)
	}
	conn.Close()
	return &bufferedSurface{send: h.print}, nil
}

func (h *networkHost) print(ctx context.Context, data []byte) error {
	dialer := net.Dialer{Timeout: h.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", h.address)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", h.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	_, err = conn.Write(data)
	if err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", h.address, err)
	}
	return nil
}

func (h *networkHost) Format() Format {
	return FormatESCPOS
}

func (h *networkHost) Status() Status {
	conn, err := net.DialTimeout("tcp", h.address, 2*time.Second)
	if err == nil {
		conn.Close()
	}
	return Status{Configured: true, Connected: err == nil, Type: "network", Format: FormatESCPOS}
}

// --- Null Printer (no-op, used when no printer is configured) ---

type nullHost struct{}

// NewNullHost creates a host whose surfaces accept and discard documents.
func NewNullHost() Host {
	return &nullHost{}
}

func (h *nullHost) Open(ctx context.Context, title string) (Surface, error) {
	return &bufferedSurface{}, nil
}

func (h *nullHost) Format() Format {
	return FormatHTML
}

func (h *nullHost) Status() Status {
	return Status{Configured: false, Connected: false, Type: "none", Format: FormatHTML}
}
