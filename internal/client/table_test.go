package client

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-finder/models"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	table := RenderTable(sampleMovies())
	lines := strings.Split(table, "\n")

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, lines[0], "Rating")
	assert.Contains(t, lines[1], "─┼─")

	width := lipgloss.Width(lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, width, lipgloss.Width(line), "line %q", line)
	}
	assert.Contains(t, lines[2], "8.3")
	assert.Contains(t, lines[2], "880000")
}

func TestRenderTable_Empty(t *testing.T) {
	lines := strings.Split(RenderTable(nil), "\n")
	assert.Len(t, lines, 2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, 5, lipgloss.Width(truncate("abcdefgh", 5)))

	long := RenderTable([]models.Movie{{FilmTitle: strings.Repeat("x", 100)}})
	assert.NotContains(t, long, strings.Repeat("x", 41))
}
