package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "room:"

	// 房间数据过期时间
	roomExpiration = 2 * time.Hour
)

// RoomData 房间快照（用于 Redis 序列化）
type RoomData struct {
	RoomNumber string       `json:"room_number"`
	Public     bool         `json:"public"`
	Players    []PlayerData `json:"players"`
	Phase      string       `json:"phase,omitempty"` // 没有对局时为空
	Round      int          `json:"round,omitempty"`
	CreatedAt  int64        `json:"created_at"`
}

// PlayerData 玩家快照
type PlayerData struct {
	ID            string `json:"id"`
	Nickname      string `json:"nickname"`
	Ready         bool   `json:"ready"`
	Frozen        bool   `json:"frozen"`
	ScreenCovered bool   `json:"screen_covered"`
	Character     string `json:"character,omitempty"` // 分队后的角色
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoom 保存房间快照到 Redis
func (rs *RedisStore) SaveRoom(ctx context.Context, roomNumber string, data *RoomData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}

	key := roomKeyPrefix + roomNumber
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom 从 Redis 加载房间快照（仅返回数据，需要外部重建）
func (rs *RedisStore) LoadRoom(ctx context.Context, roomNumber string) (*RoomData, error) {
	key := roomKeyPrefix + roomNumber
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 房间不存在
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("反序列化房间数据失败: %w", err)
	}

	return &roomData, nil
}

// DeleteRoom 从 Redis 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, roomNumber string) error {
	key := roomKeyPrefix + roomNumber
	return rs.client.Del(ctx, key).Err()
}

// GetAllRoomNumbers 获取所有房间号
func (rs *RedisStore) GetAllRoomNumbers(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	numbers := make([]string, len(keys))
	for i, key := range keys {
		numbers[i] = key[len(roomKeyPrefix):]
	}
	return numbers, nil
}

// SetRoomExpiration 设置房间快照过期时间
func (rs *RedisStore) SetRoomExpiration(ctx context.Context, roomNumber string, expiration time.Duration) error {
	key := roomKeyPrefix + roomNumber
	return rs.client.Expire(ctx, key, expiration).Err()
}
