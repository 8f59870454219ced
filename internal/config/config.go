package config

import (
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverBadger = "badger"
	DriverFile   = "file"
	DriverMemory = "memory"
)

type AppConfig struct {
	DataDir       string `split_words:"true" default:"data"`
	StoreDriver   string `split_words:"true" default:"badger"`
	UndoCapacity  int    `split_words:"true" default:"50"`
	MaxNameLength int    `split_words:"true" default:"20"`
}

func ReadAppConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, err
	}
	switch cfg.StoreDriver {
	case DriverBadger, DriverFile, DriverMemory:
	default:
		return AppConfig{}, ErrUnknownDriver
	}
	if cfg.UndoCapacity < 0 {
		cfg.UndoCapacity = 0
	}
	if cfg.MaxNameLength <= 0 {
		cfg.MaxNameLength = 20
	}
	return cfg, nil
}

func MustReadAppConfig() AppConfig {
	cfg, err := ReadAppConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}
