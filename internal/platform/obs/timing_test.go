package obs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeLogsOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	func() (err error) {
		defer Time(context.Background(), logger, "copernicus.Token")(&err)
		return nil
	}()

	out := buf.String()
	require.Contains(t, out, "op=copernicus.Token")
	require.Contains(t, out, "dur_ms=")
	require.NotContains(t, out, "err=")
}

func TestTimeLogsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	func() (err error) {
		defer Time(context.Background(), logger, "copernicus.FetchImage")(&err)
		return errors.New("boom")
	}()

	require.Contains(t, buf.String(), "err=boom")
}
