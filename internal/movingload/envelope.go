package movingload

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxReactionA returns the largest vertical reaction at support A.
func (p *Problem) MaxReactionA() float64 {
	return math.Max(p.w2, p.w1+p.w2*(1-p.xByL))
}

// MaxReactionB returns the largest vertical reaction at support B.
func (p *Problem) MaxReactionB() float64 {
	return math.Max(p.w1, p.w2+p.w1*(1-p.xByL))
}

// MidspanBendingMoment returns the governing bending moment at midspan.
func (p *Problem) MidspanBendingMoment() float64 {
	return p.w2 * p.spacing * (1 - p.xByL)
}

// MidspanShear returns the governing shear at midspan.
func (p *Problem) MidspanShear() float64 {
	return 0.5 * (p.w1 + p.w2 + p.xByL*math.Abs(p.w1-p.w2))
}

// MaxShear returns the position and value of the largest shear. It occurs at
// the support nearer the heavier load; equal loads report support B.
func (p *Problem) MaxShear() (position, value float64) {
	if p.w1 > p.w2 {
		return 0, p.w1 + p.w2*(1-p.xByL)
	}
	return p.span, p.w2 + p.w1*(1-p.xByL)
}

// CriticalPoint is one candidate of the maximum bending moment search.
type CriticalPoint struct {
	Index    int     `json:"index"`
	Section  float64 `json:"section_m"`  // where the moment is evaluated
	Position float64 `json:"position_m"` // position of W1
	Moment   float64 `json:"moment_nm"`
}

// CriticalPoints evaluates the four classical candidates for the absolute
// maximum moment under two moving loads (Hibbeler 6.6), in this order:
//
//	0: section 0.5(L + U1·x), W1 at section - x
//	1: section 0.5(L - U2·x), W1 at section
//	2: section L - x,         W1 at section
//	3: section x,             W1 at 0
func (p *Problem) CriticalPoints() []CriticalPoint {
	p0 := 0.5 * (p.span + p.u1*p.spacing)
	p1 := 0.5 * (p.span - p.u2*p.spacing)
	p2 := p.span - p.spacing
	p3 := p.spacing

	candidates := [4][2]float64{
		{p0, p0 - p.spacing},
		{p1, p1},
		{p2, p2},
		{p3, 0},
	}

	points := make([]CriticalPoint, len(candidates))
	for i, c := range candidates {
		points[i] = CriticalPoint{
			Index:    i,
			Section:  c[0],
			Position: c[1],
			Moment:   p.BendingMomentAt(c[0], c[1]),
		}
	}
	return points
}

// MaxBendingMoment returns the section and value of the largest moment among
// the critical points. Exact ties go to the lowest index.
func (p *Problem) MaxBendingMoment() (position, value float64) {
	best := governing(p.CriticalPoints())
	return best.Section, best.Moment
}

// governing returns the first point holding the largest moment.
func governing(points []CriticalPoint) CriticalPoint {
	moments := make([]float64, len(points))
	for i, cp := range points {
		moments[i] = cp.Moment
	}
	return points[floats.MaxIdx(moments)]
}

// Summary collects every envelope value of a Problem.
type Summary struct {
	Span    float64 `json:"span_m"`
	W1      float64 `json:"w1_n"`
	W2      float64 `json:"w2_n"`
	Spacing float64 `json:"spacing_m"`
	Valid   bool    `json:"valid"`

	MaxReactionA         float64 `json:"max_reaction_a_n"`
	MaxReactionB         float64 `json:"max_reaction_b_n"`
	MidspanBendingMoment float64 `json:"midspan_moment_nm"`
	MidspanShear         float64 `json:"midspan_shear_n"`

	MaxShearPosition  float64 `json:"max_shear_position_m"`
	MaxShear          float64 `json:"max_shear_n"`
	MaxMomentPosition float64 `json:"max_moment_position_m"`
	MaxMoment         float64 `json:"max_moment_nm"`
	GoverningPoint    int     `json:"governing_point"`

	CriticalPoints []CriticalPoint `json:"critical_points"`
}

// Analyze runs every envelope query and returns the results together.
func (p *Problem) Analyze() Summary {
	s := Summary{
		Span:                 p.span,
		W1:                   p.w1,
		W2:                   p.w2,
		Spacing:              p.spacing,
		Valid:                p.valid,
		MaxReactionA:         p.MaxReactionA(),
		MaxReactionB:         p.MaxReactionB(),
		MidspanBendingMoment: p.MidspanBendingMoment(),
		MidspanShear:         p.MidspanShear(),
		CriticalPoints:       p.CriticalPoints(),
	}
	s.MaxShearPosition, s.MaxShear = p.MaxShear()

	best := governing(s.CriticalPoints)
	s.MaxMomentPosition, s.MaxMoment, s.GoverningPoint = best.Section, best.Moment, best.Index
	return s
}
