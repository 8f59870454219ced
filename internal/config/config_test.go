package config

import (
	"os"
	"testing"
)

func TestReadAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    AppConfig
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: AppConfig{DataDir: "data", StoreDriver: DriverBadger, UndoCapacity: 50, MaxNameLength: 20},
		},
		{
			name: "overrides",
			env: map[string]string{
				"DATA_DIR":        "/tmp/x",
				"STORE_DRIVER":    "file",
				"UNDO_CAPACITY":   "0",
				"MAX_NAME_LENGTH": "12",
			},
			want: AppConfig{DataDir: "/tmp/x", StoreDriver: DriverFile, UndoCapacity: 0, MaxNameLength: 12},
		},
		{
			name: "negative capacity means unbounded",
			env:  map[string]string{"UNDO_CAPACITY": "-4"},
			want: AppConfig{DataDir: "data", StoreDriver: DriverBadger, UndoCapacity: 0, MaxNameLength: 20},
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"STORE_DRIVER": "redis"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"DATA_DIR", "STORE_DRIVER", "UNDO_CAPACITY", "MAX_NAME_LENGTH"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := ReadAppConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadAppConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ReadAppConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
