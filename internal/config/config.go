package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var (
	ErrUnknownStorage    = errors.New("unknown storage")
	ErrInvalidThinkDelay = errors.New("invalid bot think delay")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage  string `yaml:"storage"   env:"STORAGE"   env-default:"memory"`
	// GameTTL - idle sessions expire after it in either storage.
	GameTTL time.Duration `yaml:"game-ttl" env:"GAME_TTL" env-default:"24h"`
	Redis   Redis         `yaml:"redis"`
	Bot     Bot           `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Bot struct {
	// ThinkDelay is kept as text so an explicit "0s" is not replaced by the default.
	ThinkDelay string `yaml:"think-delay" env:"BOT_THINK_DELAY" env-default:"600ms"`
	// Seed of the bot's random choices, 0 picks one from the clock.
	Seed int64 `yaml:"seed" env:"BOT_SEED" env-default:"0"`
}

// Load - reads config.yml at path, environment variables override it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Storage != StorageMemory && config.Storage != StorageRedis {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, config.Storage)
	}

	if _, err := config.Bot.GetThinkDelay(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GetThinkDelay - the pause before every bot move, zero disables it.
func (that *Bot) GetThinkDelay() (time.Duration, error) {
	delay, err := time.ParseDuration(that.ThinkDelay)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidThinkDelay, err)
	}

	if delay < 0 {
		return 0, fmt.Errorf("%w: %s is negative", ErrInvalidThinkDelay, that.ThinkDelay)
	}

	return delay, nil
}
