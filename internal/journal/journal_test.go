package journal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/romyhermawan96/asvarabot/internal/extract"
)

var (
	headerRe = regexp.MustCompile(`^===== Processed at: (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) =====$`)
	fieldRe  = regexp.MustCompile(`^- (Phone Number|Date|Time|Name) +: (.*)$`)
)

// parseBlocks reads the journal file back into records, verifying the
// documented block layout along the way.
func parseBlocks(t *testing.T, path string) []extract.Record {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read journal: %v", err)
	}

	var records []extract.Record
	var current *extract.Record

	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case headerRe.MatchString(line):
			current = &extract.Record{}
		case line == "==================================================":
			if current == nil {
				t.Fatal("footer without header")
			}
			records = append(records, *current)
			current = nil
		case fieldRe.MatchString(line):
			m := fieldRe.FindStringSubmatch(line)
			switch m[1] {
			case "Phone Number":
				current.PhoneNumber = m[2]
			case "Date":
				current.Date = m[2]
			case "Time":
				current.Time = m[2]
			case "Name":
				current.Name = m[2]
			}
		}
	}

	return records
}

func newTestJournal(t *testing.T) (*Journal, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hasil_survey.txt")
	j := New(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	j.now = func() time.Time {
		return time.Date(2026, 1, 15, 14, 3, 7, 0, time.Local)
	}

	return j, path
}

func TestAppendRoundTrip(t *testing.T) {
	t.Parallel()

	j, path := newTestJournal(t)

	record := &extract.Record{
		PhoneNumber: "081234567890",
		Date:        "Senin, 15 Januari 2026",
		Time:        "14:00",
		Name:        "Budi",
	}

	if err := j.Append(record, "Halo, saya Budi"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	records := parseBlocks(t, path)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0] != *record {
		t.Errorf("round-trip = %+v, want %+v", records[0], *record)
	}
}

func TestAppendBlockLayout(t *testing.T) {
	t.Parallel()

	j, path := newTestJournal(t)

	record := &extract.Record{
		PhoneNumber: "0812",
		Date:        "Selasa, 16 Januari 2026",
		Time:        "09:30",
		Name:        "Siti",
	}

	if err := j.Append(record, "pesan asli"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read journal: %v", err)
	}

	want := "===== Processed at: 2026-01-15 14:03:07 =====\n" +
		"[Original Message: pesan asli]\n" +
		"JADWAL SURVEY:\n" +
		"- Phone Number : 0812\n" +
		"- Date         : Selasa, 16 Januari 2026\n" +
		"- Time         : 09:30\n" +
		"- Name         : Siti\n" +
		"==================================================\n\n"

	if string(data) != want {
		t.Errorf("block layout mismatch:\ngot:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestAppendWithoutOriginalMessage(t *testing.T) {
	t.Parallel()

	j, path := newTestJournal(t)

	if err := j.Append(&extract.Record{Name: "Andi"}, ""); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read journal: %v", err)
	}

	if strings.Contains(string(data), "[Original Message:") {
		t.Errorf("one-shot block must not contain the original-message line:\n%s", data)
	}
}

func TestAppendAccumulates(t *testing.T) {
	t.Parallel()

	j, path := newTestJournal(t)

	first := &extract.Record{PhoneNumber: "0811", Name: "Budi"}
	second := &extract.Record{PhoneNumber: "0812", Name: "Siti"}

	if err := j.Append(first, "pesan satu"); err != nil {
		t.Fatalf("first Append() error = %v", err)
	}
	if err := j.Append(second, "pesan dua"); err != nil {
		t.Fatalf("second Append() error = %v", err)
	}

	records := parseBlocks(t, path)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0] != *first || records[1] != *second {
		t.Errorf("round-trip = %+v, want [%+v %+v]", records, *first, *second)
	}
}

func TestAppendUnwritablePathFails(t *testing.T) {
	t.Parallel()

	j := New(filepath.Join(t.TempDir(), "missing", "hasil_survey.txt"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := j.Append(&extract.Record{}, ""); err == nil {
		t.Fatal("Append() expected error for unwritable path, got nil")
	}
}
