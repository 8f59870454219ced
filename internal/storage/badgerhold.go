package storage

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/psucodervn/anotador/internal/model"
)

type BadgerHoldStorage struct {
	store *badgerhold.Store
}

func NewBadgerHoldStorage(dir string) (*BadgerHoldStorage, error) {
	opts := badgerhold.DefaultOptions
	opts.Dir = dir
	opts.ValueDir = dir
	opts.NumVersionsToKeep = 1
	opts.Logger = newBadgerLogger()
	store, err := badgerhold.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerHoldStorage{
		store: store,
	}, nil
}

func (b *BadgerHoldStorage) Close() error {
	return b.store.Close()
}

func (b *BadgerHoldStorage) Exists(ctx context.Context, key string) (bool, error) {
	var blob model.Blob
	err := b.store.Get(key, &blob)
	if model.IsNotFound(err) {
		return false, nil
	}
	return err == nil, err
}

func (b *BadgerHoldStorage) Read(ctx context.Context, key string) ([]byte, error) {
	var blob model.Blob
	if err := b.store.Get(key, &blob); err != nil {
		if model.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return blob.Data, nil
}

func (b *BadgerHoldStorage) Write(ctx context.Context, key string, data []byte) error {
	return b.store.Upsert(key, &model.Blob{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now().Unix(),
	})
}

func (b *BadgerHoldStorage) Delete(ctx context.Context, key string) (bool, error) {
	err := b.store.Delete(key, model.Blob{})
	if errors.Is(err, badgerhold.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Keys lists every stored key, sorted.
func (b *BadgerHoldStorage) Keys(ctx context.Context) ([]string, error) {
	var blobs []model.Blob
	if err := b.store.Find(&blobs, nil); err != nil {
		return nil, err
	}
	keys := make([]string, len(blobs))
	for i := range blobs {
		keys[i] = blobs[i].Key
	}
	sort.Strings(keys)
	return keys, nil
}
