package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetTextWithDefault(rdr("\n"), "Start", "09:00", &out)
	require.NoError(t, err)
	assert.Equal(t, "09:00", got)
	assert.Contains(t, out.String(), "Start [09:00]")

	got, err = GetTextWithDefault(rdr("10:30\n"), "Start", "09:00", &out)
	require.NoError(t, err)
	assert.Equal(t, "10:30", got)

	out.Reset()
	_, err = GetTextWithDefault(rdr("x\n"), "Title", "", &out)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "[")
}

func TestGetOptionalText(t *testing.T) {
	current := "old notes"

	tests := []struct {
		name    string
		input   string
		current *string
		want    *string
	}{
		{name: "skip without current", input: "\n", current: nil, want: nil},
		{name: "keep current", input: "\n", current: &current, want: &current},
		{name: "clear current", input: "-\n", current: &current, want: nil},
		{name: "new value", input: "bring slides\n", current: &current, want: strPtr("bring slides")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetOptionalText(rdr(tt.input), "Description", tt.current, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func strPtr(s string) *string { return &s }
