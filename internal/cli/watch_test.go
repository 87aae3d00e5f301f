package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradbar/gradbar/internal/theme"
	"github.com/gradbar/gradbar/internal/ui"
)

func monoTheme(t *testing.T) theme.Theme {
	t.Helper()
	th, err := theme.NewRegistry().Get("mono")
	require.NoError(t, err)
	return th
}

func TestRunWatchRedrawsInPlace(t *testing.T) {
	in := strings.NewReader("0\n50\n100\n")
	var out bytes.Buffer
	cfg := ui.BarConfig{Width: 4, Brackets: true, ShowPercent: true, NoColor: true}

	require.NoError(t, runWatch(in, &out, monoTheme(t), cfg))

	got := out.String()
	assert.Equal(t, 3, strings.Count(got, "\r"), "one redraw per value")
	assert.Contains(t, got, "[████] 100%")
	assert.True(t, strings.HasSuffix(got, "\n"), "final newline after EOF")
}

func TestRunWatchSkipsJunkLines(t *testing.T) {
	in := strings.NewReader("\n\nnot-a-number\n75\n")
	var out bytes.Buffer
	cfg := ui.BarConfig{Width: 4, Brackets: true, ShowPercent: true, NoColor: true}

	require.NoError(t, runWatch(in, &out, monoTheme(t), cfg))

	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "\r"), "junk lines render nothing")
	assert.Contains(t, got, "75%")
}

func TestRunWatchClampsInput(t *testing.T) {
	in := strings.NewReader("9000\n-12\n")
	var out bytes.Buffer
	cfg := ui.BarConfig{Width: 4, NoColor: true}

	require.NoError(t, runWatch(in, &out, monoTheme(t), cfg))

	got := out.String()
	assert.Contains(t, got, "████")
	assert.Contains(t, got, "░░░░")
}

func TestRunWatchEmptyInput(t *testing.T) {
	var out bytes.Buffer
	cfg := ui.BarConfig{Width: 4, NoColor: true}

	require.NoError(t, runWatch(strings.NewReader(""), &out, monoTheme(t), cfg))
	assert.Empty(t, out.String(), "no values means no output, not a blank line")
}
