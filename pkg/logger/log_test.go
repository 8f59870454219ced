package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWithConfig(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		name      string
		cfg       Config
		wantLevel zerolog.Level
		wantDebug bool
	}{
		{name: "info", cfg: Config{}, wantLevel: zerolog.InfoLevel, wantDebug: false},
		{name: "debug", cfg: Config{Debug: true}, wantLevel: zerolog.DebugLevel, wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bf bytes.Buffer
			InitWithConfig(tt.cfg, &bf)
			if got := zerolog.GlobalLevel(); got != tt.wantLevel {
				t.Errorf("GlobalLevel() = %v, want %v", got, tt.wantLevel)
			}
			log.Debug().Msg("debug line")
			if got := strings.Contains(bf.String(), "debug line"); got != tt.wantDebug {
				t.Errorf("debug written = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}
