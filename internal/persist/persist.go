// Package persist stores engine snapshots as human-readable JSON records.
//
// Loading never fails from the caller's point of view: a missing or empty
// record, a record that does not decode and a record with an unknown version
// all yield the supplied default. Corrupt records are left untouched until the user
// discards them.
package persist

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/psucodervn/anotador/internal/model"
)

// Storage is a key-addressed byte store. Read returns nil data and a nil
// error for a key that was never written. Write overwrites unconditionally.
type Storage interface {
	Exists(ctx context.Context, key string) (bool, error)
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) (bool, error)
}

// Load reads the record under key. ok reports whether a stored record was
// used instead of def.
func Load[T model.Versioned](ctx context.Context, s Storage, key string, def T) (v T, ok bool) {
	data, err := s.Read(ctx, key)
	if err != nil {
		log.Err(err).Str("key", key).Msg("read record failed")
		return def, false
	}
	if len(data) == 0 {
		return def, false
	}
	// null and {} decode cleanly but carry nothing to resume.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("decode record failed, using defaults")
		return def, false
	}
	if len(fields) == 0 {
		log.Warn().Str("key", key).Msg("empty record, using defaults")
		return def, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("decode record failed, using defaults")
		return def, false
	}
	if ver := v.SchemaVersion(); ver != 0 && ver != v.CurrentVersion() {
		log.Warn().Err(model.ErrUnsupportedVersion).Str("key", key).Int("version", ver).Msg("using defaults")
		return def, false
	}
	return v, true
}

func Save[T model.Versioned](ctx context.Context, s Storage, key string, v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return s.Write(ctx, key, data)
}

// Discard removes the record under key. It is not an error if there was none.
func Discard(ctx context.Context, s Storage, key string) error {
	_, err := s.Delete(ctx, key)
	return err
}
