package cli

import (
	"testing"

	"polyglot/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags_Apply(t *testing.T) {
	base := config.Config{
		Dir:        "languages",
		Pair:       "English-Russian",
		FormsFile:  "",
		LogLevel:   "warn",
		SeedSample: true,
	}

	tests := []struct {
		name     string
		args     []string
		expected config.Config
	}{
		{
			name:     "nothing set keeps config",
			args:     nil,
			expected: base,
		},
		{
			name: "all flags set",
			args: []string{"--dir", "/tmp/d", "--pair", "English-French", "--forms", "forms.txt", "--log-level", "debug", "--no-sample"},
			expected: config.Config{
				Dir:        "/tmp/d",
				Pair:       "English-French",
				FormsFile:  "forms.txt",
				LogLevel:   "debug",
				SeedSample: false,
			},
		},
		{
			name: "short flags",
			args: []string{"-d", "dicts", "-p", "English-German"},
			expected: config.Config{
				Dir:        "dicts",
				Pair:       "English-German",
				LogLevel:   "warn",
				SeedSample: true,
			},
		},
		{
			name:     "explicit false keeps sample data",
			args:     []string{"--no-sample=false"},
			expected: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			cmd := &cobra.Command{}
			setupFlags(cmd, flags)
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg := base
			flags.Apply(cmd, &cfg)

			assert.Equal(t, tt.expected, cfg)
		})
	}
}
