package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/queryops/queryops-golang"
)

func TestDefaultNames(t *testing.T) {
	require.Equal(t, []string{"json", "text", "yaml"}, Default().Names())
}

func TestRegisterDuplicate(t *testing.T) {
	f := New()
	f.Register("json", JSON())
	require.Panics(t, func() { f.Register("json", YAML()) })
}

func TestUnknownFormat(t *testing.T) {
	err := Default().Output(io.Discard, "xml", queryops.Table())
	require.True(t, errors.Is(err, ErrUnknownFormat))
	require.Contains(t, err.Error(), `"xml"`)
	require.Contains(t, err.Error(), "[json text yaml]")
}

func TestJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Default().Output(buf, "json", queryops.Table()))

	want, err := json.MarshalIndent(queryops.Table(), "", "  ")
	require.NoError(t, err)
	require.Equal(t, string(want)+"\n", buf.String())

	parsed, err := queryops.ParseQueryOperators(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, queryops.Table(), parsed)
}

func TestYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Default().Output(buf, "yaml", queryops.Table()))
	require.True(t, strings.HasPrefix(buf.String(), "All: $all\nAnd: $and\n"))
	require.Contains(t, buf.String(), "TextOperators:\n  CaseSensitive: $caseSensitive\n")

	var parsed queryops.QueryOperators
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed))
	require.Equal(t, queryops.Table(), parsed)
}

func TestText(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Default().Output(buf, "text", queryops.Table()))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 35)

	tests := []struct {
		line  int
		name  string
		token string
	}{
		{0, "All", "$all"},
		{6, "Equal", "$eq"},
		{28, "TextOperators.CaseSensitive", "$caseSensitive"},
		{31, "TextOperators.Search", "$search"},
		{34, "Where", "$where"},
	}
	for _, tt := range tests {
		re := regexp.MustCompile(`^` + regexp.QuoteMeta(tt.name) + ` {2,}` + regexp.QuoteMeta(tt.token) + `$`)
		require.Regexp(t, re, lines[tt.line])
	}

	col := strings.Index(lines[0], "$")
	for _, line := range lines {
		require.Equal(t, col, strings.Index(line, "$"), line)
	}
}
