package printer

import (
	"fmt"

	"github.com/spf13/afero"
)

// Config selects and configures a print host.
//
//	Type: "spool", "usb", "network", "email", or "none"
//	USBPath: device path for USB printers (e.g. "/dev/usb/lp0")
//	Address: TCP address for network printers (e.g. "192.168.1.100:9100")
//	SpoolDir / SpoolMax: spool directory and pending-document limit
//	Inbox: recipient for the email host
type Config struct {
	Type     string
	USBPath  string
	Address  string
	SpoolDir string
	SpoolMax int
	Inbox    string
}

// NewHostFromConfig creates the appropriate Host based on type.
func NewHostFromConfig(cfg Config, fs afero.Fs, mailer Mailer) (Host, error) {
	switch cfg.Type {
	case "spool":
		if cfg.SpoolDir == "" {
			return nil, fmt.Errorf("printer: spool directory is required for spool printer type")
		}
		if fs == nil {
			fs = afero.NewOsFs()
		}
		return NewSpoolHost(fs, cfg.SpoolDir, cfg.SpoolMax), nil
	case "usb":
		if cfg.USBPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for USB printer type")
		}
		return NewUSBHost(cfg.USBPath), nil
	case "network":
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewNetworkHost(cfg.Address), nil
	case "email":
		if cfg.Inbox == "" {
			return nil, fmt.Errorf("printer: inbox is required for email printer type")
		}
		return NewMailHost(mailer, cfg.Inbox), nil
	case "none", "":
		return NewNullHost(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use spool, usb, network, email, or none)", cfg.Type)
	}
}
