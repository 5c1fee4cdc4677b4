package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raccoonfox/hide-and-seek/internal/game/player"
)

func TestTeam_Members(t *testing.T) {
	t.Parallel()

	g := &Game{room: &fakeRoom{number: "123456"}}
	team := newTeam(CharacterRacoon, g)

	p1 := player.New("p1", "one")
	p2 := player.New("p2", "two")
	team.AddPlayer(p1)
	team.AddPlayer(p2)

	assert.Equal(t, CharacterRacoon, team.Character())
	assert.Equal(t, 2, team.Size())
	assert.True(t, team.Has("p1"))
	assert.False(t, team.Has("p3"))
	assert.ElementsMatch(t, []string{"p1", "p2"}, team.MemberIDs())
	assert.Len(t, team.Members(), 2)
}

func TestTeam_Topic(t *testing.T) {
	t.Parallel()

	// Both teams share the game topic, clients filter by character
	g := &Game{room: &fakeRoom{number: "123456"}}
	hiding := newTeam(CharacterRacoon, g)
	seeking := newTeam(CharacterFox, g)

	assert.Equal(t, "/topic/rooms/123456/game", hiding.Topic())
	assert.Equal(t, hiding.Topic(), seeking.Topic())
}

func TestTeam_FreezePlayers(t *testing.T) {
	t.Parallel()

	g := &Game{room: &fakeRoom{number: "123456"}}
	team := newTeam(CharacterFox, g)

	p1 := player.New("p1", "one")
	p2 := player.New("p2", "two")
	team.AddPlayer(p1)
	team.AddPlayer(p2)

	team.FreezePlayers()
	assert.True(t, p1.IsFrozen())
	assert.True(t, p2.IsFrozen())

	team.UnfreezePlayers()
	assert.False(t, p1.IsFrozen())
	assert.False(t, p2.IsFrozen())
}
