package room

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raccoonfox/hide-and-seek/internal/apperrors"
	"github.com/raccoonfox/hide-and-seek/internal/game/player"
	"github.com/raccoonfox/hide-and-seek/internal/game/session"
	"github.com/raccoonfox/hide-and-seek/internal/testutil"
)

func testGameConfig() session.Config {
	return session.Config{
		MaxRound:      3,
		ReadyDuration: 5 * time.Millisecond,
		MainDuration:  5 * time.Millisecond,
		TickInterval:  time.Millisecond,
	}
}

func mustStartGame(t *testing.T, r *Room, b *testutil.RecordingBroadcaster) *session.Game {
	t.Helper()
	g, err := session.NewGame(r, b, testGameConfig())
	require.NoError(t, err)
	return g
}

func fillRoom(r *Room, count int) []*player.Player {
	players := make([]*player.Player, 0, count)
	for i := 0; i < count; i++ {
		p := player.New(fmt.Sprintf("p%d", i), fmt.Sprintf("player%d", i))
		_ = r.AddPlayer(p)
		players = append(players, p)
	}
	return players
}

func TestRoom_AddPlayer(t *testing.T) {
	t.Parallel()

	r := NewRoom("123456", "", 8)
	p := player.New("p1", "one")

	require.NoError(t, r.AddPlayer(p))
	assert.True(t, r.Has(p))
	assert.Equal(t, 1, r.PlayerCount())

	// Joining twice is rejected
	assert.ErrorIs(t, r.AddPlayer(p), apperrors.ErrAlreadyIn)
}

func TestRoom_Capacity(t *testing.T) {
	t.Parallel()

	r := NewRoom("123456", "", 8)
	fillRoom(r, 8)

	assert.True(t, r.IsFull())
	err := r.AddPlayer(player.New("p9", "nine"))
	assert.ErrorIs(t, err, apperrors.ErrRoomFull)
}

func TestRoom_AddPlayerAfterGameAttached(t *testing.T) {
	t.Parallel()

	r := NewRoom("123456", "", 8)
	fillRoom(r, 4)
	mustStartGame(t, r, testutil.NewRecordingBroadcaster())

	late := player.New("late", "late")
	assert.ErrorIs(t, r.AddPlayer(late), apperrors.ErrGameStarted)
	assert.False(t, r.CanJoin(late))
}

func TestRoom_RemovePlayer(t *testing.T) {
	t.Parallel()

	r := NewRoom("123456", "", 8)
	p := player.New("p1", "one")
	require.NoError(t, r.AddPlayer(p))

	require.NoError(t, r.RemovePlayer(p))
	assert.False(t, r.Has(p))

	// Removing an absent player is an error
	assert.ErrorIs(t, r.RemovePlayer(p), apperrors.ErrNotInRoom)
}

func TestRoom_IsReadyToStartGame(t *testing.T) {
	t.Parallel()

	r := NewRoom("123456", "", 8)
	players := fillRoom(r, 5)

	// Strict majority: 2 of 5 is not enough
	players[0].SetReady(true)
	players[1].SetReady(true)
	assert.False(t, r.IsReadyToStartGame())

	// 3 of 5 passes
	players[2].SetReady(true)
	assert.True(t, r.IsReadyToStartGame())
}

func TestRoom_HasAuthority(t *testing.T) {
	t.Parallel()

	public := NewRoom("111111", "", 8)
	private := NewRoom("222222", "secret", 8)
	p := player.New("p1", "one")

	assert.True(t, public.HasAuthority(p, ""))
	assert.False(t, private.HasAuthority(p, "wrong"))
	assert.True(t, private.HasAuthority(p, "secret"))

	// Existing members keep access regardless of the password they present
	require.NoError(t, private.AddPlayer(p))
	assert.True(t, private.HasAuthority(p, ""))
}

func TestRoom_CanJoinWithPassword(t *testing.T) {
	t.Parallel()

	r := NewRoom("123456", "secret", 8)
	fillRoom(r, 4)
	outsider := player.New("out", "outsider")

	// No running game yet: mid-game joining is closed
	assert.False(t, r.CanJoinWithPassword(outsider, "secret"))

	mustStartGame(t, r, testutil.NewRecordingBroadcaster())
	assert.True(t, r.IsGameRunning())

	assert.True(t, r.CanJoinWithPassword(outsider, "secret"))
	assert.False(t, r.CanJoinWithPassword(outsider, "wrong"))
}

func TestRoom_CanJoinWithPassword_Full(t *testing.T) {
	t.Parallel()

	r := NewRoom("123456", "", 8)
	fillRoom(r, 8)
	mustStartGame(t, r, testutil.NewRecordingBroadcaster())

	outsider := player.New("out", "outsider")
	assert.False(t, r.CanJoinWithPassword(outsider, ""))
}

func TestRoom_AttachGame_SetOnce(t *testing.T) {
	t.Parallel()

	r := NewRoom("123456", "", 8)
	fillRoom(r, 4)
	b := testutil.NewRecordingBroadcaster()

	first := mustStartGame(t, r, b)
	assert.Same(t, first, r.PlayingGame())

	// A second game fails to attach and cannot displace the running one
	second, err := session.NewGame(r, b, testGameConfig())
	assert.ErrorIs(t, err, apperrors.ErrGameStarted)
	assert.Nil(t, second)
	assert.Same(t, first, r.PlayingGame())

	r.DetachGame()
	assert.Nil(t, r.PlayingGame())
	assert.False(t, r.IsGameInitialized())
}

func TestRoom_ToRoomData(t *testing.T) {
	t.Parallel()

	r := NewRoom("123456", "secret", 8)
	players := fillRoom(r, 4)
	players[0].SetReady(true)

	data := r.ToRoomData()
	assert.Equal(t, "123456", data.RoomNumber)
	assert.False(t, data.Public)
	assert.Len(t, data.Players, 4)
	assert.Empty(t, data.Phase)

	// After team assignment every player carries a character
	mustStartGame(t, r, testutil.NewRecordingBroadcaster())
	data = r.ToRoomData()
	assert.Equal(t, "INITIALIZED", data.Phase)
	for _, pd := range data.Players {
		assert.NotEmpty(t, pd.Character)
	}
}
