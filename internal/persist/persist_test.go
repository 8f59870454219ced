package persist

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/psucodervn/anotador/internal/model"
	"github.com/psucodervn/anotador/internal/storage"
)

type failingStorage struct {
	*storage.MemoryStorage
}

func (failingStorage) Read(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestLoad_Fallback(t *testing.T) {
	ctx := context.Background()
	def := model.DefaultPreferences()

	tests := []struct {
		name   string
		stored []byte
		want   model.Preferences
		wantOk bool
	}{
		{name: "never written", stored: nil, want: def, wantOk: false},
		{name: "garbage", stored: []byte("{not json"), want: def, wantOk: false},
		{name: "null", stored: []byte("null"), want: def, wantOk: false},
		{name: "empty object", stored: []byte("{}"), want: def, wantOk: false},
		{name: "array", stored: []byte(`[1,2]`), want: def, wantOk: false},
		{name: "truncated", stored: []byte(`{"version":1,"defaultTeamAName":"Lo`), want: def, wantOk: false},
		{name: "future version", stored: []byte(`{"version":99,"defaultTeamAName":"X"}`), want: def, wantOk: false},
		{
			name:   "untagged record",
			stored: []byte(`{"defaultTeamAName":"A","defaultTeamBName":"B","defaultTarget30":true}`),
			want:   model.Preferences{DefaultTeamAName: "A", DefaultTeamBName: "B", DefaultTarget30: true},
			wantOk: true,
		},
		{
			name:   "current",
			stored: []byte(`{"version":1,"defaultTeamAName":"A","defaultTeamBName":"B","keepScreenOn":true}`),
			want:   model.Preferences{Version: 1, DefaultTeamAName: "A", DefaultTeamBName: "B", KeepScreenOn: true},
			wantOk: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := storage.NewMemoryStorage()
			if tt.stored != nil {
				if err := s.Write(ctx, model.KeyPreferences, tt.stored); err != nil {
					t.Fatal(err)
				}
			}
			got, ok := Load(ctx, s, model.KeyPreferences, def)
			if ok != tt.wantOk {
				t.Errorf("Load() ok = %v, want %v", ok, tt.wantOk)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_CorruptRecordIsKept(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStorage()
	_ = s.Write(ctx, model.KeyMus, []byte("###"))

	if _, ok := Load(ctx, s, model.KeyMus, model.MusRecord{}); ok {
		t.Fatal("Load() ok = true for corrupt record")
	}
	if exists, _ := s.Exists(ctx, model.KeyMus); !exists {
		t.Error("corrupt record was removed")
	}
}

func TestLoad_ReadError(t *testing.T) {
	def := model.DefaultPreferences()
	got, ok := Load(context.Background(), failingStorage{}, model.KeyPreferences, def)
	if ok || !reflect.DeepEqual(got, def) {
		t.Errorf("Load() = %+v, %v, want defaults", got, ok)
	}
}

func TestSaveLoadDiscard(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStorage()
	rec := model.MusRecord{
		Version: model.MusVersion,
		TeamA:   model.TeamRecord{Name: "A", Score: 12, GamesWon: 1},
		TeamB:   model.TeamRecord{Name: "B", Score: 3},
		Stakes:  model.StakesRecord{Grande: 2, Juego: 5},
		Target:  40,
	}
	if err := Save(ctx, s, model.KeyMus, rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, ok := Load(ctx, s, model.KeyMus, model.MusRecord{})
	if !ok || !reflect.DeepEqual(got, rec) {
		t.Errorf("Load() = %+v, %v, want %+v", got, ok, rec)
	}
	if err := Discard(ctx, s, model.KeyMus); err != nil {
		t.Fatalf("Discard() error = %v", err)
	}
	if err := Discard(ctx, s, model.KeyMus); err != nil {
		t.Errorf("second Discard() error = %v", err)
	}
	if _, ok := Load(ctx, s, model.KeyMus, model.MusRecord{}); ok {
		t.Error("Load() after Discard should fall back")
	}
}
