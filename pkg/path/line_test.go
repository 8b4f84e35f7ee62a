package path

import (
	"testing"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vee = []core.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}

func TestLine_Curves(t *testing.T) {
	tests := []struct {
		name   string
		points []core.Point
		curve  Curve
		want   string
	}{
		{
			name:   "linear",
			points: []core.Point{{X: 0, Y: 100}, {X: 50, Y: 50}, {X: 100, Y: 75}},
			curve:  CurveLinear,
			want:   "M 0 100 L 50 50 L 100 75",
		},
		{
			name:   "monotone",
			points: []core.Point{{X: 0, Y: 100}, {X: 50, Y: 50}, {X: 100, Y: 75}},
			curve:  CurveMonotone,
			want:   "M 0 100 C 16.667 83.333 33.333 50 50 50 C 66.667 50 83.333 66.667 100 75",
		},
		{
			name:   "cardinal",
			points: vee,
			curve:  CurveCardinal,
			want:   "M 0 0 C 0.833 0.833 8.333 10 10 10 C 11.667 10 19.167 0.833 20 0",
		},
		{
			name:   "step",
			points: vee,
			curve:  CurveStep,
			want:   "M 0 0 L 5 0 L 5 10 L 10 10 L 15 10 L 15 0 L 20 0",
		},
		{
			name:   "step before",
			points: vee,
			curve:  CurveStepBefore,
			want:   "M 0 0 L 0 10 L 10 10 L 10 0 L 20 0",
		},
		{
			name:   "step after",
			points: vee,
			curve:  CurveStepAfter,
			want:   "M 0 0 L 10 0 L 10 10 L 20 10 L 20 0",
		},
		{
			name:   "basis",
			points: vee,
			curve:  CurveBasis,
			want:   "M 3.333 3.333 C 6.667 6.667 13.333 6.667 15 5 C 16.667 3.333 16.667 3.333 16.667 3.333",
		},
		{
			name:   "unknown curve is linear",
			points: vee,
			curve:  Curve("wobbly"),
			want:   "M 0 0 L 10 10 L 20 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.points, tt.curve, DefaultTension).String())
		})
	}
}

func TestLine_FewPoints(t *testing.T) {
	two := []core.Point{{X: 0, Y: 0}, {X: 10.12345, Y: -5}}

	for _, curve := range Curves {
		t.Run(string(curve), func(t *testing.T) {
			assert.Empty(t, Line(nil, curve, DefaultTension).String())
			assert.Equal(t, "M 1 2", Line([]core.Point{{X: 1, Y: 2}}, curve, DefaultTension).String())
			assert.Equal(t, "M 0 0 L 10.123 -5", Line(two, curve, DefaultTension).String())
		})
	}
}

func TestLine_MonotoneNoOvershoot(t *testing.T) {
	series := map[string][]core.Point{
		"increasing": {{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1.1}, {X: 3, Y: 5}, {X: 4, Y: 5.2}, {X: 5, Y: 20}},
		"decreasing": {{X: 0, Y: 50}, {X: 2, Y: 49}, {X: 3, Y: 10}, {X: 7, Y: 9.5}, {X: 8, Y: 0}},
		"plateau":    {{X: 0, Y: 0}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 8}},
	}

	for name, points := range series {
		t.Run(name, func(t *testing.T) {
			p := Line(points, CurveMonotone, DefaultTension)
			require.Len(t, p, len(points))

			for i, cmd := range p[1:] {
				require.Equal(t, OpCubic, cmd.Op)
				lo := min(points[i].Y, points[i+1].Y)
				hi := max(points[i].Y, points[i+1].Y)

				for _, y := range []float64{cmd.Args[1], cmd.Args[3]} {
					assert.GreaterOrEqual(t, y, lo-1e-9, "segment %d", i)
					assert.LessOrEqual(t, y, hi+1e-9, "segment %d", i)
				}
			}
		})
	}
}

func TestLine_Deterministic(t *testing.T) {
	points := []core.Point{{X: 0.1, Y: 0.2}, {X: 1.0 / 3, Y: 2.0 / 3}, {X: 7.77777, Y: -1.23456}, {X: 9, Y: 1e-7}}

	for _, curve := range Curves {
		a := Line(points, curve, DefaultTension).String()
		b := Line(points, curve, DefaultTension).String()
		assert.Equal(t, a, b, string(curve))
		assert.NotContains(t, a, "e-")
	}
}

func TestArea(t *testing.T) {
	points := []core.Point{{X: 0, Y: 100}, {X: 50, Y: 50}, {X: 100, Y: 75}}

	assert.Equal(t, "M 0 100 L 50 50 L 100 75 L 100 200 L 0 200 Z", Area(points, 200, CurveLinear, 0).String())
	assert.Empty(t, Area(nil, 200, CurveLinear, 0).String())
	assert.Equal(t, "M 5 5 L 5 0 L 5 0 Z", Area([]core.Point{{X: 5, Y: 5}}, 0, CurveMonotone, 0).String())
}

func TestApproximateLength(t *testing.T) {
	assert.Equal(t, 0.0, ApproximateLength(nil))
	assert.Equal(t, 0.0, ApproximateLength([]core.Point{{X: 3, Y: 3}}))
	assert.InDelta(t, 14.3, ApproximateLength([]core.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}), 1e-9)
}

func TestCurve_Valid(t *testing.T) {
	assert.True(t, CurveStepAfter.Valid())
	assert.False(t, Curve("spline").Valid())
}
