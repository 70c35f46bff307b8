package movingload

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_ToyProblem(t *testing.T) {
	p := toyProblem(t)

	assert.InDelta(t, 3600.0, p.MaxReactionA(), tol)
	assert.InDelta(t, 3000.0, p.MaxReactionB(), tol)
	assert.InDelta(t, 2400.0, p.MidspanBendingMoment(), tol)
	// 0.5 * (3000 + 1000 + 0.4*|3000 - 1000|)
	assert.InDelta(t, 2400.0, p.MidspanShear(), tol)

	pos, v := p.MaxShear()
	assert.Equal(t, 0.0, pos)
	assert.InDelta(t, 3600.0, v, tol)

	pos, m := p.MaxBendingMoment()
	assert.InDelta(t, 4.5, pos, tol)
	assert.InDelta(t, 8100.0, m, 1e-6)
}

func TestCriticalPoints_ToyProblem(t *testing.T) {
	p := toyProblem(t)

	want := []CriticalPoint{
		{Index: 0, Section: 6.5, Position: 2.5, Moment: 4900},
		{Index: 1, Section: 4.5, Position: 4.5, Moment: 8100},
		{Index: 2, Section: 6, Position: 6, Moment: 7200},
		{Index: 3, Section: 4, Position: 0, Moment: 2400},
	}

	got := p.CriticalPoints()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Index, got[i].Index)
		assert.InDelta(t, want[i].Section, got[i].Section, tol, "candidate %d", i)
		assert.InDelta(t, want[i].Position, got[i].Position, tol, "candidate %d", i)
		assert.InDelta(t, want[i].Moment, got[i].Moment, 1e-6, "candidate %d", i)
	}
}

func TestMaxBendingMoment_IsLargestCandidate(t *testing.T) {
	cases := [][4]float64{
		{10, 3, 1, 4},
		{10, 1, 3, 4},
		{20, 5, 5, 2},
		{8, 0, 4, 3},
		{15, 2.5, 7.5, 6},
	}

	for _, c := range cases {
		p, err := New(c[0], c[1], c[2], c[3])
		require.NoError(t, err)

		pos, value := p.MaxBendingMoment()
		best := math.Inf(-1)
		var bestSection float64
		for _, cp := range p.CriticalPoints() {
			if cp.Moment > best {
				best, bestSection = cp.Moment, cp.Section
			}
		}
		assert.Equal(t, best, value, "case %v", c)
		assert.Equal(t, bestSection, pos, "case %v", c)
	}
}

func TestGoverning_TieGoesToFirstCandidate(t *testing.T) {
	points := []CriticalPoint{
		{Index: 0, Section: 6.5, Moment: 4900},
		{Index: 1, Section: 4.5, Moment: 8100},
		{Index: 2, Section: 6, Moment: 8100},
		{Index: 3, Section: 4, Moment: 2400},
	}

	best := governing(points)
	assert.Equal(t, 1, best.Index)
	assert.Equal(t, 4.5, best.Section)
}

func TestMaxBendingMoment_EqualCandidates(t *testing.T) {
	// With W1 = 0 and x = L/2, candidates 0 and 3 both put W2 at midspan.
	p, err := New(10, 0, 1, 5)
	require.NoError(t, err)

	points := p.CriticalPoints()
	require.Equal(t, points[0].Moment, points[3].Moment)

	pos, value := p.MaxBendingMoment()
	assert.Equal(t, points[0].Section, pos)
	assert.InDelta(t, 2500.0, value, tol)
}

func TestMaxShear_GoverningSupport(t *testing.T) {
	tests := []struct {
		name    string
		w1, w2  float64
		wantPos float64
		want    float64
	}{
		{"heavier leading load governs at A", 3, 1, 0, 3000 + 1000*0.6},
		{"heavier trailing load governs at B", 1, 3, 10, 3000 + 1000*0.6},
		{"equal loads report B", 2, 2, 10, 2000 + 2000*0.6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(10, tc.w1, tc.w2, 4)
			require.NoError(t, err)
			pos, v := p.MaxShear()
			assert.Equal(t, tc.wantPos, pos)
			assert.InDelta(t, tc.want, v, tol)
		})
	}
}

func TestMaxReactions_Bounds(t *testing.T) {
	cases := [][4]float64{
		{10, 3, 1, 4},
		{10, 1, 3, 9},
		{6, 4, 4, 1},
		{30, 0.5, 12, 20},
	}

	for _, c := range cases {
		p, err := New(c[0], c[1], c[2], c[3])
		require.NoError(t, err)

		lower := math.Max(p.W1(), p.W2())
		upper := p.W1() + p.W2()
		for _, r := range []float64{p.MaxReactionA(), p.MaxReactionB()} {
			assert.GreaterOrEqual(t, r, lower-tol, "case %v", c)
			assert.LessOrEqual(t, r, upper+tol, "case %v", c)
		}
	}
}

func TestMaxReactions_SwapUnderMirroredLoads(t *testing.T) {
	p, err := New(10, 3, 1, 4)
	require.NoError(t, err)
	mirrored, err := New(10, 1, 3, 4)
	require.NoError(t, err)

	assert.InDelta(t, p.MaxReactionA(), mirrored.MaxReactionB(), tol)
	assert.InDelta(t, p.MaxReactionB(), mirrored.MaxReactionA(), tol)
	assert.InDelta(t, p.MidspanShear(), mirrored.MidspanShear(), tol)
}

func TestQueries_Idempotent(t *testing.T) {
	p := toyProblem(t)

	first := p.Analyze()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, p.Analyze())
	}
}

func TestQueries_ConcurrentReads(t *testing.T) {
	p := toyProblem(t)
	want := p.Analyze()

	var wg sync.WaitGroup
	results := make([]Summary, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Analyze()
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestAnalyze_Summary(t *testing.T) {
	p := toyProblem(t)
	s := p.Analyze()

	assert.Equal(t, 10.0, s.Span)
	assert.Equal(t, 3000.0, s.W1)
	assert.Equal(t, 1000.0, s.W2)
	assert.Equal(t, 4.0, s.Spacing)
	assert.True(t, s.Valid)
	assert.Equal(t, p.MaxReactionA(), s.MaxReactionA)
	assert.Equal(t, p.MaxReactionB(), s.MaxReactionB)
	assert.Equal(t, p.MidspanBendingMoment(), s.MidspanBendingMoment)
	assert.Equal(t, p.MidspanShear(), s.MidspanShear)
	assert.Equal(t, 0.0, s.MaxShearPosition)
	assert.InDelta(t, 4.5, s.MaxMomentPosition, tol)
	assert.InDelta(t, 8100.0, s.MaxMoment, 1e-6)
	assert.Equal(t, 1, s.GoverningPoint)
	assert.Len(t, s.CriticalPoints, 4)
}

func BenchmarkMaxBendingMoment(b *testing.B) {
	p, err := New(10, 3, 1, 4)
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < b.N; i++ {
		p.MaxBendingMoment()
	}
}
