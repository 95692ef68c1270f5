package geomtransform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func requirePointInDelta(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for c := 0; c < 3; c++ {
		require.InDelta(t, want[c], got[c], delta, "coordinate %d", c)
	}
}

func requirePointsInDelta(t *testing.T, want, got PointSet, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		requirePointInDelta(t, want[i], got[i], delta)
	}
}

func TestApplyTranslates(t *testing.T) {
	tr := Translate(mgl64.Vec3{1, 2, 3})
	got := tr.Apply(PointSet{{0, 0, 0}, {1, 1, 1}})
	require.Equal(t, PointSet{{1, 2, 3}, {2, 3, 4}}, got)
}

func TestApplyRotates(t *testing.T) {
	got := RotateZ(math.Pi / 2).Apply(PointSet{{1, 0, 0}, {0, 1, 0}})
	requirePointsInDelta(t, PointSet{{0, 1, 0}, {-1, 0, 0}}, got, 1e-12)
}

func TestApplyReturnsNewSet(t *testing.T) {
	in := PointSet{{1, 2, 3}}
	out := Identity().Apply(in)
	require.Equal(t, in, out)
	out[0] = mgl64.Vec3{9, 9, 9}
	require.Equal(t, PointSet{{1, 2, 3}}, in)
}

func TestApplyNil(t *testing.T) {
	require.Nil(t, Identity().Apply(nil))
}
