package extract

import (
	"context"
	"log/slog"
)

// Completer issues one chat-completion call and returns the model's reply
// text. Implemented by the openai package; test doubles satisfy it directly.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Extractor runs the full extraction pipeline against a Completer.
// It is stateless across invocations and safe to share between the polling
// and one-shot drivers.
type Extractor struct {
	ai  Completer
	log *slog.Logger
}

// NewExtractor creates an Extractor backed by the given completion client.
func NewExtractor(ai Completer, log *slog.Logger) *Extractor {
	return &Extractor{
		ai:  ai,
		log: log.With("component", "extractor"),
	}
}

// Extract derives a Record from raw message text, or reports that nothing
// could be extracted. Every stage failure (completion error, no JSON object
// in the reply, missing keys) collapses to (nil, false); the cause is only
// logged, never distinguished to the caller. No stage is retried.
func (e *Extractor) Extract(ctx context.Context, text string) (*Record, bool) {
	prompt := BuildPrompt(Normalize(text))

	reply, err := e.ai.Complete(ctx, prompt)
	if err != nil {
		e.log.ErrorContext(ctx, "completion call failed", "error", err)
		return nil, false
	}

	candidate, ok := RecoverJSON(reply)
	if !ok {
		e.log.WarnContext(ctx, "no JSON object in model reply", "reply_length", len(reply))
		return nil, false
	}

	record, ok := ValidateFields(candidate)
	if !ok {
		e.log.WarnContext(ctx, "model reply missing required fields")
		return nil, false
	}

	e.log.InfoContext(ctx, "extraction succeeded",
		"phone_number", record.PhoneNumber,
		"date", record.Date,
		"time", record.Time,
		"name", record.Name)

	return record, true
}
