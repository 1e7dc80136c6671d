package proposer

import "context"

type staticGenerator struct {
	spans []ProposedSpan
}

// NewStaticGenerator returns a generator that always yields the given spans.
// With no spans it is the no-op generator used when no LLM is configured.
func NewStaticGenerator(spans ...ProposedSpan) Generator {
	return &staticGenerator{spans: spans}
}

func (g *staticGenerator) Generate(ctx context.Context, entryText string, allowedMechanisms []string) ([]ProposedSpan, error) {
	out := make([]ProposedSpan, len(g.spans))
	copy(out, g.spans)
	return out, nil
}
