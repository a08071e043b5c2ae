package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/desk/internal/core/domain"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		config       string
		args         []string
		expectedExit int
		expectedOut  string
	}{
		{
			name:         "Success with default config",
			args:         []string{"views"},
			expectedExit: 0,
			expectedOut:  "○ trade/offer",
		},
		{
			name:         "Localized validation",
			config:       "locale: de\n",
			args:         []string{"validate", "1.2.3"},
			expectedExit: 1,
			expectedOut:  "Höchstens ein Dezimaltrennzeichen verwenden.",
		},
		{
			name:         "Offer form",
			args:         []string{"offer", "0.1"},
			expectedExit: 0,
			expectedOut:  "enabled=true",
		},
		{
			name:         "Error with invalid config",
			config:       "network: moonnet\n",
			args:         []string{"views"},
			expectedExit: 1,
		},
		{
			name:         "Error with unknown view",
			args:         []string{"view", "missing"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			t.Setenv(configEnv, "")
			graft.ResetDefaultCache()
			t.Cleanup(graft.ResetDefaultCache)

			tmpDir := t.TempDir()
			if tt.config != "" {
				path := filepath.Join(tmpDir, domain.ConfigFileName)
				require.NoError(t, os.WriteFile(path, []byte(tt.config), domain.PrivateFilePerm))
			}
			t.Chdir(tmpDir)

			var stdout, stderr bytes.Buffer
			exitCode := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.expectedExit, exitCode, stderr.String())
			assert.Contains(t, stdout.String(), tt.expectedOut)
		})
	}
}

func TestRun_ConfigFlag(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	graft.ResetDefaultCache()
	t.Cleanup(graft.ResetDefaultCache)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: de\n"), domain.PrivateFilePerm))
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"--config", path, "validate", "0"}, &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "✗ \"0\": Der Betrag darf nicht null sein.\n", stdout.String())
}

func TestRun_ConfigEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	graft.ResetDefaultCache()
	t.Cleanup(graft.ResetDefaultCache)

	t.Setenv(configEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"views"}, &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: ")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"version"}, &stdout, &stderr)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "desk version dev\n", stdout.String())
}
