// Package movingload computes envelope values for a simply supported beam
// crossed by two point loads travelling together at a fixed spacing.
//
// Loads are given in kN and converted to N at construction. Lengths and
// positions are in metres, measured from support A. All returned forces are
// in N and moments in N·m.
package movingload

import "math"

// KilonewtonToNewton is the factor applied to both loads at construction.
const KilonewtonToNewton = 1000.0

// Problem is a two-load moving load case on a simply supported span.
// It is immutable once built and safe for concurrent use.
type Problem struct {
	span    float64 // L (m)
	w1      float64 // leading load (N)
	w2      float64 // trailing load (N)
	spacing float64 // x (m), W2 sits at a + x
	valid   bool    // x < L

	// Derived
	xByL float64 // x / L
	u1   float64 // W1 / (W1 + W2)
	u2   float64 // W2 / (W1 + W2)
}

// New creates a Problem from a span (m), two loads (kN) and their spacing (m).
// A spacing at or beyond the span is accepted; check Valid before trusting
// the envelope values in that case.
func New(span, w1kN, w2kN, spacing float64) (*Problem, error) {
	if !isFinite(span) || span <= 0 {
		return nil, &InputError{Field: "span", Value: span, Err: ErrInvalidSpan}
	}
	if !isFinite(w1kN) || w1kN < 0 {
		return nil, &InputError{Field: "W1", Value: w1kN, Err: ErrInvalidLoad}
	}
	if !isFinite(w2kN) || w2kN < 0 {
		return nil, &InputError{Field: "W2", Value: w2kN, Err: ErrInvalidLoad}
	}
	if w1kN+w2kN == 0 {
		return nil, &InputError{Field: "W1+W2", Value: 0, Err: ErrInvalidLoad}
	}
	if !isFinite(spacing) {
		return nil, &InputError{Field: "spacing", Value: spacing, Err: ErrInvalidSpacing}
	}

	// Inputs near the float64 limit can still overflow once converted.
	w1 := w1kN * KilonewtonToNewton
	w2 := w2kN * KilonewtonToNewton
	if !isFinite(w1) {
		return nil, &InputError{Field: "W1", Value: w1kN, Err: ErrInvalidLoad}
	}
	if !isFinite(w2) {
		return nil, &InputError{Field: "W2", Value: w2kN, Err: ErrInvalidLoad}
	}
	if !isFinite(w1 + w2) {
		return nil, &InputError{Field: "W1+W2", Value: w1kN + w2kN, Err: ErrInvalidLoad}
	}
	xByL := spacing / span
	if !isFinite(xByL) {
		return nil, &InputError{Field: "spacing", Value: spacing, Err: ErrInvalidSpacing}
	}

	return &Problem{
		span:    span,
		w1:      w1,
		w2:      w2,
		spacing: spacing,
		valid:   spacing < span,
		xByL:    xByL,
		u1:      w1 / (w1 + w2),
		u2:      w2 / (w1 + w2),
	}, nil
}

// Span returns the beam length L in m.
func (p *Problem) Span() float64 { return p.span }

// W1 returns the leading load in N.
func (p *Problem) W1() float64 { return p.w1 }

// W2 returns the trailing load in N.
func (p *Problem) W2() float64 { return p.w2 }

// Spacing returns the distance x between the loads in m.
func (p *Problem) Spacing() float64 { return p.spacing }

// Valid reports whether the spacing is shorter than the span.
func (p *Problem) Valid() bool { return p.valid }

// SpacingRatio returns x / L.
func (p *Problem) SpacingRatio() float64 { return p.xByL }

// U1 returns the share of the total load carried by W1.
func (p *Problem) U1() float64 { return p.u1 }

// U2 returns the share of the total load carried by W2.
func (p *Problem) U2() float64 { return p.u2 }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
