package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_New(t *testing.T) {
	t.Parallel()

	p := New("p1", "raccoon")

	assert.Equal(t, "p1", p.ID())
	assert.Equal(t, "raccoon", p.Nickname())
	assert.False(t, p.IsReadyToStart())
	assert.False(t, p.IsFrozen())
	assert.False(t, p.IsScreenCovered())
}

func TestPlayer_Ready(t *testing.T) {
	t.Parallel()

	p := New("p1", "raccoon")

	p.SetReady(true)
	assert.True(t, p.IsReadyToStart())

	p.SetReady(false)
	assert.False(t, p.IsReadyToStart())
}

func TestPlayer_Freeze(t *testing.T) {
	t.Parallel()

	p := New("p1", "raccoon")

	p.Freeze()
	assert.True(t, p.IsFrozen())

	p.Unfreeze()
	assert.False(t, p.IsFrozen())
}

func TestPlayer_CoverScreen(t *testing.T) {
	t.Parallel()

	p := New("p1", "raccoon")

	p.CoverScreen()
	assert.True(t, p.IsScreenCovered())

	p.UncoverScreen()
	assert.False(t, p.IsScreenCovered())
}
