package storage

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// badgerLogger forwards badger's own messages to zerolog. Badger is chatty at
// info level, so only warnings and errors pass through.
type badgerLogger struct {
	l zerolog.Logger
}

var _ badger.Logger = (*badgerLogger)(nil)

func newBadgerLogger() *badgerLogger {
	return &badgerLogger{l: log.With().Str("component", "badger").Logger()}
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Error().Msgf(strings.TrimSpace(format), args...)
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warn().Msgf(strings.TrimSpace(format), args...)
}

func (b *badgerLogger) Infof(format string, args ...interface{}) {}

func (b *badgerLogger) Debugf(format string, args ...interface{}) {}
