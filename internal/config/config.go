package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Auth   AuthConfig   `yaml:"auth"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	Secret      string `yaml:"secret"`       // JWT 签名密钥
	TokenExpire int    `yaml:"token_expire"` // Token 有效期（分钟）
}

// TokenExpireDuration 返回 Token 有效时长
func (c *AuthConfig) TokenExpireDuration() time.Duration {
	return time.Duration(c.TokenExpire) * time.Minute
}

// GameConfig 游戏配置
type GameConfig struct {
	MaxRound      int `yaml:"max_round"`      // 最大回合数
	MaxPlayers    int `yaml:"max_players"`    // 每个房间最大玩家数
	ReadyDuration int `yaml:"ready_duration"` // READY 阶段时长（秒）
	MainDuration  int `yaml:"main_duration"`  // MAIN 阶段时长（秒）
	TickInterval  int `yaml:"tick_interval"`  // 请求队列处理间隔（毫秒）
	RoomTimeout   int `yaml:"room_timeout"`   // 空闲房间回收超时（分钟）
}

// ReadyPhaseDuration 返回 READY 阶段时长
func (c *GameConfig) ReadyPhaseDuration() time.Duration {
	return time.Duration(c.ReadyDuration) * time.Second
}

// MainPhaseDuration 返回 MAIN 阶段时长
func (c *GameConfig) MainPhaseDuration() time.Duration {
	return time.Duration(c.MainDuration) * time.Second
}

// TickIntervalDuration 返回队列处理间隔
func (c *GameConfig) TickIntervalDuration() time.Duration {
	return time.Duration(c.TickInterval) * time.Millisecond
}

// RoomTimeoutDuration 返回空闲房间回收超时
func (c *GameConfig) RoomTimeoutDuration() time.Duration {
	return time.Duration(c.RoomTimeout) * time.Minute
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults 填充零值字段的默认值
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 1410
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Auth.Secret == "" {
		c.Auth.Secret = "dev-only-secret"
	}
	if c.Auth.TokenExpire == 0 {
		c.Auth.TokenExpire = 120
	}
	if c.Game.MaxRound == 0 {
		c.Game.MaxRound = 3
	}
	if c.Game.MaxPlayers == 0 {
		c.Game.MaxPlayers = 8
	}
	if c.Game.ReadyDuration == 0 {
		c.Game.ReadyDuration = 30
	}
	if c.Game.MainDuration == 0 {
		c.Game.MainDuration = 120
	}
	if c.Game.TickInterval == 0 {
		c.Game.TickInterval = 100
	}
	if c.Game.RoomTimeout == 0 {
		c.Game.RoomTimeout = 10
	}
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
