package logger

import (
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	loggerWithoutCaller = zerolog.New(os.Stderr)
)

func Init(debug bool, pretty bool, additionalWriters ...io.Writer) {
	InitWithConfig(Config{Debug: debug, Pretty: pretty, Caller: true}, additionalWriters...)
}

func InitWithConfig(cfg Config, additionalWriters ...io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.Pretty {
		additionalWriters = append(additionalWriters, zerolog.ConsoleWriter{Out: os.Stderr})
	} else if len(additionalWriters) == 0 {
		additionalWriters = append(additionalWriters, os.Stderr)
	}

	loggerWithoutCaller = zerolog.New(zerolog.MultiLevelWriter(additionalWriters...)).With().Timestamp().Logger()
	if cfg.Caller {
		log.Logger = loggerWithoutCaller.With().Caller().Logger()
	} else {
		log.Logger = loggerWithoutCaller
	}
}

func InitFromEnv() {
	var cfg Config
	envconfig.MustProcess("LOG", &cfg)
	InitWithConfig(cfg)
}

// WithoutCaller return a clone logger without caller field
func WithoutCaller() zerolog.Logger {
	return loggerWithoutCaller
}
