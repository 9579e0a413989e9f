package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sentinel-snapshot/internal/adapters/copernicus"
	"sentinel-snapshot/internal/domain"
	"sentinel-snapshot/internal/evalscript"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T, id, secret string) {
	t.Helper()
	t.Setenv("SNAPSHOT_CLIENT_ID", id)
	t.Setenv("SNAPSHOT_CLIENT_SECRET", secret)
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t, "id", "secret")

	cfg, err := Load("snapshot", nil, io.Discard)
	require.NoError(t, err)

	require.Equal(t, "image1.jpg", cfg.Filename)
	require.Equal(t, 512, cfg.Height)
	require.Equal(t, DefaultBox, cfg.Box)
	require.Equal(t, domain.FormatJPEG, cfg.Format)
	require.Equal(t, 90, cfg.Quality)
	require.Equal(t, 2.0, cfg.Brightness)
	require.False(t, cfg.ShowToken)
	require.Equal(t, copernicus.DefaultTimeout, cfg.Timeout)
	require.Equal(t, copernicus.DefaultTokenURL, cfg.TokenURL)
	require.Equal(t, copernicus.DefaultProcessURL, cfg.ProcessURL)
	require.Equal(t, "id", cfg.ClientID)
	require.Equal(t, "secret", cfg.ClientSecret)

	require.NoError(t, cfg.Validate())
}

func TestLoadFlags(t *testing.T) {
	setCredentials(t, "id", "secret")

	args := []string{
		"-S", "prague.png",
		"-V", "1000",
		"--box", "14.2,49.9,14.7,50.2",
		"-F", domain.FormatPNG,
		"-K", "75",
		"-E", "custom.js",
		"-J", "3.5",
		"-T",
		"--timeout", "30s",
	}

	cfg, err := Load("snapshot", args, io.Discard)
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Filename", cfg.Filename, "prague.png"},
		{"Height", cfg.Height, 1000},
		{"Box", cfg.Box, "14.2,49.9,14.7,50.2"},
		{"Format", cfg.Format, domain.FormatPNG},
		{"Quality", cfg.Quality, 75},
		{"EvalscriptPath", cfg.EvalscriptPath, "custom.js"},
		{"Brightness", cfg.Brightness, 3.5},
		{"ShowToken", cfg.ShowToken, true},
		{"Timeout", cfg.Timeout, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}

	require.NoError(t, cfg.Validate())
}

func TestLoadHelp(t *testing.T) {
	out := &bytes.Buffer{}
	_, err := Load("snapshot", []string{"--help"}, out)
	require.ErrorIs(t, err, pflag.ErrHelp)
	require.Contains(t, out.String(), domain.FormatTIFF)
}

func TestLoadUnknownFlag(t *testing.T) {
	_, err := Load("snapshot", []string{"--nope"}, io.Discard)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLoadConfigFile(t *testing.T) {
	setCredentials(t, "", "")

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	content := "client_id: file-id\nclient_secret: file-secret\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load("snapshot", []string{"--config", path}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "file-id", cfg.ClientID)
	require.Equal(t, "file-secret", cfg.ClientSecret)
}

func TestValidateMissingCredentials(t *testing.T) {
	cases := []struct {
		name     string
		id, secr string
	}{
		{"both blank", "", ""},
		{"id blank", "", "secret"},
		{"secret blank", "id", ""},
		{"whitespace", "  ", "secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{ClientID: tc.id, ClientSecret: tc.secr, Height: 512, Box: DefaultBox}
			require.ErrorIs(t, cfg.Validate(), ErrMissingCredentials)
		})
	}
}

func TestValidateInvalidArguments(t *testing.T) {
	setCredentials(t, "id", "secret")

	cases := map[string][]string{
		"malformed box": {"--box", "1,2,three,4"},
		"short box":     {"--box", "1,2,3"},
		"reversed box":  {"--box", "15.2252,50.3378,15.0617,50.2856"},
		"out of range":  {"--box", "-190,0,10,10"},
		"zero height":   {"--height", "0"},
		"quality":       {"--quality", "101"},
		"brightness":    {"--brightness", "-1"},
		"blank file":    {"--file", " "},
		"blank format":  {"--format", ""},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load("snapshot", args, io.Discard)
			require.NoError(t, err)
			require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidArgument)
		})
	}
}

func TestImageRequestFallsBackToDefaultScript(t *testing.T) {
	cfg := &Config{
		Filename:       "out.jpg",
		Height:         512,
		Box:            DefaultBox,
		Format:         domain.FormatJPEG,
		Quality:        90,
		EvalscriptPath: filepath.Join(t.TempDir(), "does-not-exist.js"),
		Brightness:     3,
	}

	req, err := cfg.ImageRequest(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	require.Equal(t, evalscript.Default(3), req.Evalscript)
	require.Equal(t, 15.0617, req.Box.BBox()[0])
	require.NoError(t, req.Validate())
}
