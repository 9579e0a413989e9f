package evalscript

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultInjectsBrightness(t *testing.T) {
	cases := []struct {
		brightness float64
		want       string
	}{
		{2, "let exposure = 2;"},
		{3.5, "let exposure = 3.5;"},
		{0, "let exposure = 0;"},
	}

	for _, tc := range cases {
		s := Default(tc.brightness)
		require.Contains(t, s, tc.want)
		require.Equal(t, 1, strings.Count(s, "let exposure"), "brightness %v", tc.brightness)
	}
}

func TestResolveMissingFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.js")

	require.Equal(t, Default(4), Resolve(path, 4, discardLogger()))
}

func TestResolveReadsCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.js")
	custom := "//VERSION=3\nfunction evaluatePixel(s) { return [s.B08]; }\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o600))

	require.Equal(t, custom, Resolve(path, 4, discardLogger()))
}

func TestResolveAcceptsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.js")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	require.Empty(t, Resolve(path, 4, discardLogger()))
}

func TestResolveShortPathMeansDefault(t *testing.T) {
	for _, p := range []string{"", "x"} {
		require.Equal(t, Default(1.5), Resolve(p, 1.5, discardLogger()), "path %q", p)
	}
}
