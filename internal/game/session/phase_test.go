package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "INITIALIZING", PhaseInitializing.String())
	assert.Equal(t, "INITIALIZED", PhaseInitialized.String())
	assert.Equal(t, "READY", PhaseReady.String())
	assert.Equal(t, "MAIN", PhaseMain.String())
	assert.Equal(t, "END", PhaseEnd.String())
	assert.Equal(t, "UNKNOWN", Phase(42).String())
}

func TestPhase_Ordering(t *testing.T) {
	t.Parallel()

	// The declared order drives the join/running checks
	assert.True(t, PhaseInitializing.IsNowOrBefore(PhaseInitializing))
	assert.True(t, PhaseInitializing.IsNowOrBefore(PhaseEnd))
	assert.False(t, PhaseInitialized.IsNowOrBefore(PhaseInitializing))

	assert.True(t, PhaseEnd.IsNowOrAfter(PhaseInitialized))
	assert.True(t, PhaseInitialized.IsNowOrAfter(PhaseInitialized))
	assert.False(t, PhaseInitializing.IsNowOrAfter(PhaseInitialized))
}
