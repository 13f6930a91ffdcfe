package cliconfig

import (
	"errors"
	"testing"

	"github.com/bft-labs/paralogmask/internal/domain"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"PARALOGMASK_CHUNK_SIZE": "2048",
				"PARALOGMASK_LOG_LEVEL":  "debug",
				"PARALOGMASK_LOG_FORMAT": "json",
				"PARALOGMASK_MMAP":       "false",
			},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: Config{ChunkSize: 2048, LogLevel: "debug", LogFormat: "json", MMap: false},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"PARALOGMASK_CHUNK_SIZE": "2048",
				"PARALOGMASK_LOG_LEVEL":  "debug",
			},
			changed:  map[string]bool{"log-level": true},
			initial:  Config{ChunkSize: 64, LogLevel: "error"},
			expected: Config{ChunkSize: 2048, LogLevel: "error"},
		},
		{
			name:     "handles bool '1' as true",
			envVars:  map[string]string{"PARALOGMASK_MMAP": "1"},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{MMap: true},
		},
		{
			name:     "non-positive chunk size is ignored",
			envVars:  map[string]string{"PARALOGMASK_CHUNK_SIZE": "0"},
			changed:  map[string]bool{},
			initial:  Config{ChunkSize: 512},
			expected: Config{ChunkSize: 512},
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"PARALOGMASK_CHUNK_SIZE": "not-a-number"},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{
				"PARALOGMASK_CHUNK_SIZE",
				"PARALOGMASK_LOG_LEVEL",
				"PARALOGMASK_LOG_FORMAT",
				"PARALOGMASK_MMAP",
			} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("ApplyEnvConfig() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("cfg = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
