package movingload

import "gonum.org/v1/gonum/floats"

// BendingMomentInfluence returns the moment at section p caused by a unit
// load at position a. The line is continuous at a == p.
func (p *Problem) BendingMomentInfluence(section, a float64) float64 {
	if a < 0 || a > p.span {
		return 0
	} else if a <= section {
		return a * (1 - section/p.span)
	}
	return (1 - a/p.span) * section
}

// ShearInfluence returns the shear at section p caused by a unit load at
// position a. At a == p the line jumps by 1 and the right-hand value is used.
func (p *Problem) ShearInfluence(section, a float64) float64 {
	if a < 0 || a > p.span {
		return 0
	} else if a < section {
		return -(a / p.span)
	}
	return 1 - a/p.span
}

// ShearAt returns the shear at section with W1 at position a and W2 at a + x.
func (p *Problem) ShearAt(section, a float64) float64 {
	a1, a2 := a, a+p.spacing
	return p.w1*p.ShearInfluence(section, a1) + p.w2*p.ShearInfluence(section, a2)
}

// BendingMomentAt returns the moment at section with W1 at position a and W2 at a + x.
func (p *Problem) BendingMomentAt(section, a float64) float64 {
	a1, a2 := a, a+p.spacing
	return p.w1*p.BendingMomentInfluence(section, a1) + p.w2*p.BendingMomentInfluence(section, a2)
}

// InfluenceOrdinate is one row of an influence table.
type InfluenceOrdinate struct {
	Position float64 `json:"position_m"`
	Shear    float64 `json:"shear"`
	Moment   float64 `json:"moment_m"`
}

// InfluenceTable samples both unit influence lines at section for steps+1
// evenly spaced load positions from A (0) to B (L).
func (p *Problem) InfluenceTable(section float64, steps int) ([]InfluenceOrdinate, error) {
	if steps < 1 {
		return nil, &InputError{Field: "steps", Value: float64(steps), Err: ErrInvalidSteps}
	}

	positions := floats.Span(make([]float64, steps+1), 0, p.span)
	table := make([]InfluenceOrdinate, len(positions))
	for i, a := range positions {
		table[i] = InfluenceOrdinate{
			Position: a,
			Shear:    p.ShearInfluence(section, a),
			Moment:   p.BendingMomentInfluence(section, a),
		}
	}
	return table, nil
}
