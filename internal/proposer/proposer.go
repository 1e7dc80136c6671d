package proposer

import "context"

// ProposedSpan is one candidate tag returned by a generator: a mechanism id
// plus a span that must be an exact, unmodified substring of the entry text.
// The service layer re-validates the substring property before persisting
// anything, so a misbehaving generator cannot smuggle rewritten text into a
// session.
type ProposedSpan struct {
	MechanismID string   `json:"mechanism_id"`
	SpanText    string   `json:"span_text"`
	Rationale   *string  `json:"rationale,omitempty"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// Generator produces candidate semantic tags for one verbatim answer.
// allowedMechanisms is guidance, not a filter the caller applies to results.
type Generator interface {
	Generate(ctx context.Context, entryText string, allowedMechanisms []string) ([]ProposedSpan, error)
}
