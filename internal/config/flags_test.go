package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 4343},
			expected: "localhost:4343",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{
			name:         "valid host name",
			input:        "sim.thoughtforge.test:4343",
			expectedHost: "sim.thoughtforge.test",
			expectedPort: 4343,
		},
		{
			name:         "valid IP address",
			input:        "10.1.2.3:9000",
			expectedHost: "10.1.2.3",
			expectedPort: 9000,
		},
		{
			name:        "missing port",
			input:       "localhost",
			expectError: true,
		},
		{
			name:        "empty host",
			input:       ":4343",
			expectError: true,
		},
		{
			name:        "port not a number",
			input:       "localhost:abc",
			expectError: true,
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func parseTestFlags(t *testing.T, args ...string) *StructuredConfig {
	t.Helper()

	fs := flag.NewFlagSet("thoughtforge-test", flag.ContinueOnError)
	collect := registerFlags(fs)
	require.NoError(t, fs.Parse(args))

	return collect()
}

func TestRegisterFlags_AllFlags(t *testing.T) {
	cfg := parseTestFlags(t,
		"-a", "sim.internal:9000",
		"-request-timeout", "10s",
		"-store-path", "/var/lib/thoughtforge/runs.db",
		"-env-file", "/path/to/custom.env",
	)

	assert.Equal(t, "sim.internal", cfg.API.Host)
	assert.Equal(t, 9000, cfg.API.Port)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "/var/lib/thoughtforge/runs.db", cfg.Store.Path)
	assert.Equal(t, "/path/to/custom.env", cfg.EnvFilePath)
}

func TestRegisterFlags_NoFlagsYieldsZeroConfig(t *testing.T) {
	cfg := parseTestFlags(t)

	assert.Equal(t, API{}, cfg.API)
	assert.Equal(t, Store{}, cfg.Store)
	assert.Empty(t, cfg.EnvFilePath)
}

func TestGetClientConfigWithFlags_FlagsFillUnsetFields(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfigWithFlags(parseTestFlags(t,
		"-a", "flag-host:5000",
		"-store-path", "/tmp/runs.db",
	))
	require.NoError(t, err)

	assert.Equal(t, "flag-host", cfg.API.Host)
	assert.Equal(t, 5000, cfg.API.Port)
	assert.Equal(t, "/tmp/runs.db", cfg.Store.Path)
	// fields no source sets still fall back to defaults
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
}

func TestGetClientConfigWithFlags_EnvWinsOverFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"THOUGHTFORGE_HOST": "env-host",
		"THOUGHTFORGE_PORT": "6000",
	})

	cfg, err := GetClientConfigWithFlags(parseTestFlags(t, "-a", "flag-host:5000"))
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.API.Host)
	assert.Equal(t, 6000, cfg.API.Port)
}

func TestGetClientConfigWithFlags_FlagsWinOverLegacyAliases(t *testing.T) {
	setEnvVars(t, map[string]string{
		"HOST": "legacy-host",
		"PORT": "7000",
	})

	cfg, err := GetClientConfigWithFlags(parseTestFlags(t, "-a", "flag-host:5000"))
	require.NoError(t, err)

	assert.Equal(t, "flag-host", cfg.API.Host)
	assert.Equal(t, 5000, cfg.API.Port)
}

func TestGetClientConfigWithFlags_EnvFileFlag(t *testing.T) {
	clearEnvVars(t)

	envFile := filepath.Join(t.TempDir(), "flag.env")
	require.NoError(t, os.WriteFile(envFile, []byte("THOUGHTFORGE_API_KEY=file-key\n"), 0o600))

	cfg, err := GetClientConfigWithFlags(parseTestFlags(t, "-env-file", envFile))
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.API.Key)
}

func TestGetClientConfigWithFlags_NilFlagsBehavesLikeGetClientConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"THOUGHTFORGE_API_KEY": "tf-secret-key",
	})

	cfg, err := GetClientConfigWithFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "tf-secret-key", cfg.API.Key)
	assert.Equal(t, DefaultHost, cfg.API.Host)
	assert.Equal(t, DefaultPort, cfg.API.Port)
}
