package scatter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavekit/scatter"
)

// recordingMethod captures the arguments PhaseShift dispatches with.
type recordingMethod struct {
	k0, mass float64
	v        scatter.Potential
	result   float64
	err      error
}

func (m *recordingMethod) PhaseShift(k0, mass float64, v scatter.Potential) (float64, error) {
	m.k0, m.mass, m.v = k0, mass, v

	return m.result, m.err
}

// TestPhaseShift_Dispatch: the entry point forwards its arguments to the
// method untouched and returns the method's result verbatim.
func TestPhaseShift_Dispatch(t *testing.T) {
	v := scatter.MomentumFunc(func(k, kp float64) float64 { return k * kp })
	m := &recordingMethod{result: 42.5}

	deg, err := scatter.PhaseShift(m, 0.3, 4.76, v)
	require.NoError(t, err)
	assert.Equal(t, 42.5, deg)
	assert.Equal(t, 0.3, m.k0)
	assert.Equal(t, 4.76, m.mass)
	assert.Equal(t, 0.125, m.v.Momentum(0.5, 0.25), "potential must pass through unwrapped")
}

// TestPhaseShift_ErrorPassthrough: method errors surface unchanged.
func TestPhaseShift_ErrorPassthrough(t *testing.T) {
	sentinel := errors.New("boom")
	m := &recordingMethod{err: sentinel}

	_, err := scatter.PhaseShift(m, 0.3, 4.76, nil)
	assert.ErrorIs(t, err, sentinel)
}

// TestAdapters: the func adapters satisfy their interfaces and forward
// their arguments.
func TestAdapters(t *testing.T) {
	var p scatter.Potential = scatter.MomentumFunc(func(k, kp float64) float64 { return k + kp })
	assert.Equal(t, 0.75, p.Momentum(0.5, 0.25))

	var r scatter.Radial = scatter.RadialFunc(func(r float64) float64 { return -r })
	assert.Equal(t, -2.5, r.Radial(2.5))
}
