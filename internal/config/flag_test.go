package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "overrides both",
			args:     []string{"cmd", "-d", "/tmp/x.db", "-l", "debug"},
			expected: Config{DatabaseDSN: "/tmp/x.db", LogLevel: "debug"},
		},
		{
			name:     "keeps defaults without flags",
			args:     []string{"cmd"},
			expected: Config{DatabaseDSN: "fleetdesk.db", LogLevel: "info"},
		},
		{
			name:     "unknown flags ignored",
			args:     []string{"cmd", "-z", "1", "-d", "a.db"},
			expected: Config{DatabaseDSN: "a.db", LogLevel: "info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}
