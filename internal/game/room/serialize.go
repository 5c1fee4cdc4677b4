package room

import (
	"github.com/raccoonfox/hide-and-seek/internal/game/player"
	"github.com/raccoonfox/hide-and-seek/internal/server/storage"
)

// ToRoomData 将 Room 转换为可序列化的快照
func (r *Room) ToRoomData() *storage.RoomData {
	r.mu.RLock()
	game := r.playingGame
	players := make([]*player.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	data := &storage.RoomData{
		RoomNumber: r.roomNumber,
		Public:     r.password == "",
		Players:    make([]storage.PlayerData, 0, len(players)),
		CreatedAt:  r.createdAt.Unix(),
	}
	r.mu.RUnlock()

	if game != nil {
		data.Phase = game.CurrentPhase().String()
		data.Round = game.Round()
	}

	for _, p := range players {
		pd := storage.PlayerData{
			ID:            p.ID(),
			Nickname:      p.Nickname(),
			Ready:         p.IsReadyToStart(),
			Frozen:        p.IsFrozen(),
			ScreenCovered: p.IsScreenCovered(),
		}
		if game != nil {
			switch {
			case game.HidingTeam().Has(p.ID()):
				pd.Character = string(game.HidingTeam().Character())
			case game.SeekingTeam().Has(p.ID()):
				pd.Character = string(game.SeekingTeam().Character())
			}
		}
		data.Players = append(data.Players, pd)
	}

	return data
}
