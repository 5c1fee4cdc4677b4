package room

import (
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raccoonfox/hide-and-seek/internal/apperrors"
	"github.com/raccoonfox/hide-and-seek/internal/config"
	"github.com/raccoonfox/hide-and-seek/internal/game/player"
	"github.com/raccoonfox/hide-and-seek/internal/game/session"
	"github.com/raccoonfox/hide-and-seek/internal/protocol"
	"github.com/raccoonfox/hide-and-seek/internal/server/storage"
	"github.com/raccoonfox/hide-and-seek/internal/testutil"
)

func newTestManager(t *testing.T) (*RoomManager, *testutil.RecordingBroadcaster) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := storage.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	b := testutil.NewRecordingBroadcaster()

	rm := NewRoomManager(store, b, config.GameConfig{
		MaxRound:      3,
		MaxPlayers:    8,
		ReadyDuration: 30,
		MainDuration:  120,
		TickInterval:  100,
		RoomTimeout:   10,
	})
	return rm, b
}

func TestRoomManager_CreateRoom(t *testing.T) {
	t.Parallel()

	rm, _ := newTestManager(t)
	p := player.New("p1", "one")

	r, err := rm.CreateRoom(p, "")
	require.NoError(t, err)

	assert.Len(t, r.RoomNumber(), 6)
	assert.True(t, r.Has(p))
	assert.Same(t, r, rm.GetRoom(r.RoomNumber()))
}

func TestRoomManager_GenerateRoomCode(t *testing.T) {
	t.Parallel()

	rm, _ := newTestManager(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := rm.generateRoomCode()
		assert.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
		// Simulate the code being taken so uniqueness is enforced
		rm.rooms[code] = NewRoom(code, "", 8)
		assert.False(t, seen[code])
		seen[code] = true
	}
}

func TestRoomManager_JoinRoom(t *testing.T) {
	t.Parallel()

	rm, b := newTestManager(t)
	owner := player.New("p1", "one")
	r, err := rm.CreateRoom(owner, "secret")
	require.NoError(t, err)

	// Wrong password is rejected before touching the roster
	joiner := player.New("p2", "two")
	_, err = rm.JoinRoom(joiner, r.RoomNumber(), "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.False(t, r.Has(joiner))

	joined, err := rm.JoinRoom(joiner, r.RoomNumber(), "secret")
	require.NoError(t, err)
	assert.True(t, joined.Has(joiner))

	// The room is notified about the newcomer
	msgs := b.MessagesOfType(r.Topic(), protocol.MsgPlayerJoined)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.PlayerJoinedPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, "p2", payload.Player.ID)
}

func TestRoomManager_JoinRoom_NotFound(t *testing.T) {
	t.Parallel()

	rm, _ := newTestManager(t)
	_, err := rm.JoinRoom(player.New("p1", "one"), "000000", "")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestRoomManager_LeaveRoom(t *testing.T) {
	t.Parallel()

	rm, b := newTestManager(t)
	owner := player.New("p1", "one")
	joiner := player.New("p2", "two")

	r, err := rm.CreateRoom(owner, "")
	require.NoError(t, err)
	_, err = rm.JoinRoom(joiner, r.RoomNumber(), "")
	require.NoError(t, err)

	require.NoError(t, rm.LeaveRoom(joiner, r.RoomNumber()))
	assert.False(t, r.Has(joiner))
	require.Len(t, b.MessagesOfType(r.Topic(), protocol.MsgPlayerLeft), 1)

	// Last player out dissolves the room
	require.NoError(t, rm.LeaveRoom(owner, r.RoomNumber()))
	assert.Nil(t, rm.GetRoom(r.RoomNumber()))
}

func TestRoomManager_SetPlayerReady(t *testing.T) {
	t.Parallel()

	rm, b := newTestManager(t)
	p := player.New("p1", "one")
	r, err := rm.CreateRoom(p, "")
	require.NoError(t, err)

	require.NoError(t, rm.SetPlayerReady(p, r.RoomNumber(), true))
	assert.True(t, p.IsReadyToStart())

	msgs := b.MessagesOfType(r.Topic(), protocol.MsgPlayerReady)
	require.Len(t, msgs, 1)

	outsider := player.New("out", "outsider")
	assert.ErrorIs(t, rm.SetPlayerReady(outsider, r.RoomNumber(), true), apperrors.ErrNotInRoom)
}

func TestRoomManager_StartGame(t *testing.T) {
	t.Parallel()

	rm, b := newTestManager(t)
	owner := player.New("p1", "one")
	r, err := rm.CreateRoom(owner, "")
	require.NoError(t, err)

	players := []*player.Player{owner}
	for _, id := range []string{"p2", "p3", "p4"} {
		p := player.New(id, id)
		_, err := rm.JoinRoom(p, r.RoomNumber(), "")
		require.NoError(t, err)
		players = append(players, p)
	}

	// 2 of 4 ready is not a strict majority
	players[0].SetReady(true)
	players[1].SetReady(true)
	_, err = rm.StartGame(r.RoomNumber())
	assert.ErrorIs(t, err, apperrors.ErrGameNotStart)

	players[2].SetReady(true)
	game, err := rm.StartGame(r.RoomNumber())
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Same(t, game, r.PlayingGame())

	// The start broadcast carries the full team assignment
	msgs := b.MessagesOfType(r.Topic(), protocol.MsgGameStart)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.GameStartPayload](msgs[0])
	require.NoError(t, err)
	assert.Len(t, payload.HidingTeam, 2)
	assert.Len(t, payload.SeekingTeam, 2)

	// A running room cannot start a second game
	_, err = rm.StartGame(r.RoomNumber())
	assert.ErrorIs(t, err, apperrors.ErrGameStarted)
}

func TestRoomManager_StartGame_Concurrent(t *testing.T) {
	t.Parallel()

	rm, b := newTestManager(t)
	owner := player.New("p1", "one")
	r, err := rm.CreateRoom(owner, "")
	require.NoError(t, err)

	for _, id := range []string{"p2", "p3", "p4", "p5", "p6", "p7", "p8"} {
		p := player.New(id, id)
		_, err := rm.JoinRoom(p, r.RoomNumber(), "")
		require.NoError(t, err)
	}
	for _, p := range r.PlayersSnapshot() {
		p.SetReady(true)
	}

	// Racing starters must produce exactly one attached game;
	// the rest fail instead of returning orphan games
	const starters = 4
	begin := make(chan struct{})
	winners := make(chan *session.Game, starters)
	var wg sync.WaitGroup
	for i := 0; i < starters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-begin
			game, err := rm.StartGame(r.RoomNumber())
			if err != nil {
				assert.ErrorIs(t, err, apperrors.ErrGameStarted)
				return
			}
			winners <- game
		}()
	}
	close(begin)
	wg.Wait()
	close(winners)

	var started []*session.Game
	for game := range winners {
		started = append(started, game)
	}
	require.Len(t, started, 1)
	assert.Same(t, started[0], r.PlayingGame())
	assert.Len(t, b.MessagesOfType(r.Topic(), protocol.MsgGameStart), 1)
}

func TestRoomManager_RejoinRoom(t *testing.T) {
	t.Parallel()

	rm, _ := newTestManager(t)
	owner := player.New("p1", "one")
	r, err := rm.CreateRoom(owner, "secret")
	require.NoError(t, err)

	players := []*player.Player{owner}
	for _, id := range []string{"p2", "p3"} {
		p := player.New(id, id)
		_, err := rm.JoinRoom(p, r.RoomNumber(), "secret")
		require.NoError(t, err)
		players = append(players, p)
	}

	// Members reconnect without any checks
	got, err := rm.RejoinRoom(owner, r.RoomNumber(), "")
	require.NoError(t, err)
	assert.Same(t, r, got)

	// Without a running game outsiders cannot use the mid-game path
	outsider := player.New("out", "outsider")
	_, err = rm.RejoinRoom(outsider, r.RoomNumber(), "secret")
	assert.ErrorIs(t, err, apperrors.ErrGameNotStart)

	for _, p := range players {
		p.SetReady(true)
	}
	_, err = rm.StartGame(r.RoomNumber())
	require.NoError(t, err)

	// With a running game, an authorized outsider is added to the roster
	got, err = rm.RejoinRoom(outsider, r.RoomNumber(), "secret")
	require.NoError(t, err)
	assert.True(t, got.Has(outsider))

	_, err = rm.RejoinRoom(player.New("out2", "o2"), r.RoomNumber(), "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestRoomManager_Cleanup(t *testing.T) {
	t.Parallel()

	rm, b := newTestManager(t)
	rm.roomTimeout = time.Minute

	stale := NewRoom("111111", "", 8)
	stale.createdAt = time.Now().Add(-2 * time.Minute)
	rm.rooms["111111"] = stale

	fresh := NewRoom("222222", "", 8)
	rm.rooms["222222"] = fresh

	// Rooms with a game attached are never reclaimed
	busy := NewRoom("333333", "", 8)
	busy.createdAt = time.Now().Add(-2 * time.Minute)
	for i := 0; i < 4; i++ {
		_ = busy.AddPlayer(player.New(string(rune('a'+i)), "p"))
	}
	rm.rooms["333333"] = busy
	startTestGame(t, rm, busy)

	rm.cleanup()

	assert.Nil(t, rm.GetRoom("111111"))
	assert.NotNil(t, rm.GetRoom("222222"))
	assert.NotNil(t, rm.GetRoom("333333"))
	assert.NotEmpty(t, b.Messages(stale.Topic()))
}

func startTestGame(t *testing.T, rm *RoomManager, r *Room) {
	t.Helper()
	for _, p := range r.PlayersSnapshot() {
		p.SetReady(true)
	}
	_, err := rm.StartGame(r.RoomNumber())
	require.NoError(t, err)
}
