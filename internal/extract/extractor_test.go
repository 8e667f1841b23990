package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

// completerFunc adapts a function to the Completer interface, standing in
// for the completion API in tests.
type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestExtractorExtract(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		input    string
		reply    string
		replyErr error
		wantOK   bool
		want     Record
	}{
		{
			name:   "booking message with clean model reply",
			input:  "Halo, saya Budi 081234567890. Booking untuk hari Senin, 15 Januari jam 14:00",
			reply:  `{"phone_number":"081234567890","date":"Senin, 15 Januari 2026","time":"14:00","name":"Budi"}`,
			wantOK: true,
			want: Record{
				PhoneNumber: "081234567890",
				Date:        "Senin, 15 Januari 2026",
				Time:        "14:00",
				Name:        "Budi",
			},
		},
		{
			name:   "model reply wrapped in prose",
			input:  "pesan apa saja",
			reply:  `Here you go: {"phone_number":"0812","date":"","time":"","name":"Andi"} thanks`,
			wantOK: true,
			want:   Record{PhoneNumber: "0812", Name: "Andi"},
		},
		{
			name:   "model reply without JSON",
			input:  "pesan apa saja",
			reply:  "Maaf, tidak ada jadwal di pesan ini.",
			wantOK: false,
		},
		{
			name:   "model reply missing a key",
			input:  "pesan apa saja",
			reply:  `{"phone_number":"0812","date":"","time":""}`,
			wantOK: false,
		},
		{
			name:     "completion API failure",
			input:    "pesan apa saja",
			replyErr: errors.New("chat completion failed: status code 429"),
			wantOK:   false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotPrompt string
			fake := completerFunc(func(_ context.Context, prompt string) (string, error) {
				gotPrompt = prompt
				return tc.reply, tc.replyErr
			})

			extractor := NewExtractor(fake, log)

			record, ok := extractor.Extract(context.Background(), tc.input)
			if ok != tc.wantOK {
				t.Fatalf("Extract() ok = %v, want %v", ok, tc.wantOK)
			}

			if !strings.Contains(gotPrompt, Normalize(tc.input)) {
				t.Errorf("prompt does not contain the normalized message:\n%s", gotPrompt)
			}

			if !tc.wantOK {
				if record != nil {
					t.Fatalf("failed extraction returned record %+v", record)
				}
				return
			}

			if *record != tc.want {
				t.Errorf("Extract() = %+v, want %+v", *record, tc.want)
			}
		})
	}
}

func TestExtractorNormalizesBeforePrompting(t *testing.T) {
	t.Parallel()

	var gotPrompt string
	fake := completerFunc(func(_ context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return `{"phone_number":"","date":"","time":"","name":""}`, nil
	})

	extractor := NewExtractor(fake, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, ok := extractor.Extract(context.Background(), "baris\nsatu\t\"kutip\"")
	if !ok {
		t.Fatal("Extract() failed unexpectedly")
	}

	if strings.ContainsAny(gotPrompt[strings.Index(gotPrompt, "Pesan:"):], "\t") {
		t.Errorf("message section of prompt still contains framing characters:\n%s", gotPrompt)
	}
	if !strings.Contains(gotPrompt, "baris satu  kutip") {
		t.Errorf("prompt does not contain normalized message:\n%s", gotPrompt)
	}
}
