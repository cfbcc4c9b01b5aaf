package billing

import "context"

// Stage is a pure payload transform.
type Stage func(Payload) Payload

// Pipeline composes the pricing stages in their required order:
// enum normalization, vehicle flag derivation (the single storage read),
// registration charge, totals. Both the create-bill and the update-bill
// flows run the same pipeline so the two paths cannot drift.
type Pipeline struct {
	pre     []Stage
	counter TricycleCounter
	post    []Stage
}

func NewPipeline(counter TricycleCounter) *Pipeline {
	return &Pipeline{
		pre:     []Stage{NormalizeEnums},
		counter: counter,
		post:    []Stage{ComputeRMV, ComputeTotals},
	}
}

// Run normalizes a raw request body and prices it. The string slice lists
// fields the normalizer dropped; it is informational only.
func (pl *Pipeline) Run(ctx context.Context, raw map[string]any) (Payload, []string, error) {
	p, ignored := NormalizePayload(raw)
	p, err := pl.Price(ctx, p)
	return p, ignored, err
}

// Price runs the post-normalization stages over an already-canonical
// payload, e.g. one merged from an existing bill plus a patch.
func (pl *Pipeline) Price(ctx context.Context, p Payload) (Payload, error) {
	for _, stage := range pl.pre {
		p = stage(p)
	}

	p, err := ApplyVehicleFlags(ctx, pl.counter, p)
	if err != nil {
		return p, err
	}

	for _, stage := range pl.post {
		p = stage(p)
	}
	return p, nil
}
