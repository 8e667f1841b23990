// Package journal persists extraction results to an append-only text file.
package journal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/romyhermawan96/asvarabot/internal/extract"
)

const (
	headerPrefix = "===== Processed at: "
	headerSuffix = " ====="
	timeLayout   = "2006-01-02 15:04:05"
	blockTitle   = "JADWAL SURVEY:"
	footer       = "=================================================="
	filePerm     = 0o644
)

// Journal appends one formatted block per extraction to a flat file.
// The file is opened per append so the process never holds it across the
// long waits between messages.
type Journal struct {
	path string
	log  *slog.Logger
	now  func() time.Time
}

// New creates a Journal writing to the given path.
func New(path string, log *slog.Logger) *Journal {
	return &Journal{
		path: path,
		log:  log.With("component", "journal"),
		now:  time.Now,
	}
}

// Append writes one result block stamped with the local wall clock.
// originalMessage is included as an "[Original Message: ...]" line when
// non-empty (polling mode); the one-shot driver passes "".
func (j *Journal) Append(record *extract.Record, originalMessage string) error {
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open journal file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatBlock(record, originalMessage, j.now())); err != nil {
		return fmt.Errorf("failed to append to journal file: %w", err)
	}

	j.log.Info("result journaled", "path", j.path, "name", record.Name)

	return nil
}

func formatBlock(record *extract.Record, originalMessage string, at time.Time) string {
	var b strings.Builder

	b.WriteString(headerPrefix + at.Format(timeLayout) + headerSuffix + "\n")
	if originalMessage != "" {
		b.WriteString("[Original Message: " + originalMessage + "]\n")
	}
	b.WriteString(blockTitle + "\n")
	b.WriteString("- Phone Number : " + record.PhoneNumber + "\n")
	b.WriteString("- Date         : " + record.Date + "\n")
	b.WriteString("- Time         : " + record.Time + "\n")
	b.WriteString("- Name         : " + record.Name + "\n")
	b.WriteString(footer + "\n\n")

	return b.String()
}
