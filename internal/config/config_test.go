package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 250*time.Millisecond, cfg.Analysis.Budget())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "holdem-odds.hcl")
	src := `
analysis {
  duration   = "1s"
  opponents  = 3
  max_trials = 5000
}

random {
  seed = 42
}

output {
  log_level = "debug"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Analysis.Budget())
	assert.Equal(t, 3, cfg.Analysis.Opponents)
	assert.Equal(t, 5000, cfg.Analysis.MaxTrials)
	assert.Equal(t, int64(42), cfg.Random.Seed)
	assert.Equal(t, "debug", cfg.Output.LogLevel)
	assert.Equal(t, "auto", cfg.Output.Color, "unset fields keep their defaults")
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		src     string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "empty file",
			src:  "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "partial analysis block",
			src:  `analysis { opponents = 5 }`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5, cfg.Analysis.Opponents)
				assert.Equal(t, "250ms", cfg.Analysis.Duration)
			},
		},
		{
			name: "color only",
			src:  `output { color = "never" }`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "never", cfg.Output.Color)
				assert.Equal(t, "warn", cfg.Output.LogLevel)
			},
		},
		{name: "bad duration", src: `analysis { duration = "soon" }`, wantErr: true},
		{name: "zero duration", src: `analysis { duration = "0s" }`, wantErr: true},
		{name: "too many opponents", src: `analysis { opponents = 23 }`, wantErr: true},
		{name: "negative trials", src: `analysis { max_trials = -1 }`, wantErr: true},
		{name: "bad log level", src: `output { log_level = "loud" }`, wantErr: true},
		{name: "bad color", src: `output { color = "sometimes" }`, wantErr: true},
		{name: "unknown block", src: `server { url = "x" }`, wantErr: true},
		{name: "syntax error", src: `analysis {`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse([]byte(tt.src), "test.hcl")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		env     map[string]string
		want    func(cfg *Config)
		wantErr bool
	}{
		{
			name: "all variables set",
			env: map[string]string{
				EnvSeed:      "12345",
				EnvDuration:  "2s",
				EnvOpponents: "4",
			},
			want: func(cfg *Config) {
				cfg.Random.Seed = 12345
				cfg.Analysis.Duration = "2s"
				cfg.Analysis.Opponents = 4
			},
		},
		{
			name: "nothing set",
			env:  map[string]string{},
			want: func(*Config) {},
		},
		{
			name: "empty values are ignored",
			env:  map[string]string{EnvSeed: ""},
			want: func(*Config) {},
		},
		{name: "invalid seed", env: map[string]string{EnvSeed: "not-a-number"}, wantErr: true},
		{name: "invalid duration", env: map[string]string{EnvDuration: "forever"}, wantErr: true},
		{name: "invalid opponents", env: map[string]string{EnvOpponents: "two"}, wantErr: true},
		{name: "out of range opponents", env: map[string]string{EnvOpponents: "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}

			cfg := Default()
			err := cfg.ApplyEnv(lookup)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := Default()
			tt.want(want)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestNilConfig(t *testing.T) {
	t.Parallel()
	var cfg *Config
	require.Error(t, cfg.Validate())
	require.Error(t, cfg.ApplyEnv(os.LookupEnv))
}
