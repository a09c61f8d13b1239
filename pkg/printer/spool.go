package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/investify-receipts/pkg/utils"
	"github.com/spf13/afero"
)

// PrintedDirName is the spool subdirectory documents move to once printed.
const PrintedDirName = "printed"

// --- Spool Printer (HTML files picked up by a print agent) ---

type spoolHost struct {
	fs         afero.Fs
	dir        string
	maxPending int
}

// NewSpoolHost creates a host that writes HTML documents into dir. A document is
// pending until printed, at which point it moves into dir/printed. A maxPending of
// zero means unlimited.
func NewSpoolHost(fs afero.Fs, dir string, maxPending int) Host {
	return &spoolHost{fs: fs, dir: dir, maxPending: maxPending}
}

func (h *spoolHost) Open(ctx context.Context, title string) (Surface, error) {
	printedDir := filepath.Join(h.dir, PrintedDirName)
	if err := h.fs.MkdirAll(printedDir, 0o755); err != nil {
		return nil, unavailable("spool directory %s: %v", h.dir, err)
	}

	if h.maxPending > 0 {
		pending, err := h.Pending()
		if err != nil {
			return nil, unavailable("spool directory %s: %v", h.dir, err)
		}
		if pending >= h.maxPending {
			return nil, unavailable("spool %s is full (%d pending)", h.dir, pending)
		}
	}

	name := fmt.Sprintf("%s-%s-%s.html",
		time.Now().UTC().Format("20060102T150405"),
		utils.Slugify(title),
		uuid.New().String()[:8],
	)
	path := filepath.Join(h.dir, name)

	return &bufferedSurface{
		onClose: func(data []byte) error {
			if err := afero.WriteFile(h.fs, path, data, 0o644); err != nil {
				return fmt.Errorf("printer: failed to spool %s: %w", path, err)
			}
			return nil
		},
		send: func(ctx context.Context, data []byte) error {
			if err := h.fs.Rename(path, filepath.Join(printedDir, name)); err != nil {
				return fmt.Errorf("printer: failed to release %s: %w", path, err)
			}
			return nil
		},
	}, nil
}

// Pending counts documents waiting in the spool directory.
func (h *spoolHost) Pending() (int, error) {
	entries, err := afero.ReadDir(h.fs, h.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".html") {
			count++
		}
	}
	return count, nil
}

func (h *spoolHost) Format() Format {
	return FormatHTML
}

func (h *spoolHost) Status() Status {
	ok, _ := afero.DirExists(h.fs, h.dir)
	return Status{Configured: true, Connected: ok, Type: "spool", Format: FormatHTML}
}
