package storage

import (
	"context"
	"io"

	"github.com/psucodervn/anotador/internal/config"
)

// Store is what Open hands back: a byte store that can enumerate its keys
// and must be closed on shutdown.
type Store interface {
	Exists(ctx context.Context, key string) (bool, error)
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context) ([]string, error)
	io.Closer
}

var (
	_ Store = (*BadgerHoldStorage)(nil)
	_ Store = (*FileStorage)(nil)
	_ Store = (*MemoryStorage)(nil)
)

func Open(cfg config.AppConfig) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverFile:
		s, err := NewFileStorage(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMemory:
		return NewMemoryStorage(), nil
	case config.DriverBadger:
		s, err := NewBadgerHoldStorage(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, config.ErrUnknownDriver
	}
}
