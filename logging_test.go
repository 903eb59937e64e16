package queryops

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return buf
}

func TestUnknownLookupLogged(t *testing.T) {
	buf := captureLogs(t)

	_, ok := Lookup("Equal")
	require.True(t, ok)
	require.Empty(t, buf.String())

	_, ok = Lookup("Equals")
	require.False(t, ok)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), `msg="Unknown operator name" name=Equals`)

	buf.Reset()
	_, ok = LookupTextOption("Stemming")
	require.False(t, ok)
	require.Contains(t, buf.String(), `msg="Unknown text option name" name=Stemming`)
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	require.Same(t, slog.Default(), logger)
}
