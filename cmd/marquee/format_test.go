package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/marquee/internal/library"
)

func TestSuggestSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"titel", "title"},
		{"Rating", "rating"},
		{"yearold", "yearOld"},
		{"added", "addedDate"},
		{"zzz", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, suggestSortKey(tt.in), "suggestSortKey(%q)", tt.in)
	}
}

func TestValidateSortKey(t *testing.T) {
	assert.NoError(t, validateSortKey(""))
	for _, k := range library.SortKeys() {
		assert.NoError(t, validateSortKey(string(k)))
	}
	assert.Error(t, validateSortKey("titel"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Crouching Ti...", truncate("Crouching Tiger, Hidden Dragon", 15))
	assert.Equal(t, "Amé...", truncate("Amélie Poulain", 6))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "-", relativeTime(time.Time{}, now))
	assert.Equal(t, "3 days ago", relativeTime(now.Add(-72*time.Hour), now))
}

func TestPrintEntry_Series(t *testing.T) {
	e := sampleEntry()
	e.Kind = library.KindSeries
	e.TotalSeasons = ptr(2)
	e.WatchedEpisodes = []string{"S01E01"}
	e.UserRating = ptr(8.5)

	var buf bytes.Buffer
	printEntry(&buf, e, e.CreatedAt.Add(time.Hour))
	out := buf.String()
	assert.Contains(t, out, "Heat (1995)")
	assert.Contains(t, out, "Rating:   8.5")
	assert.Contains(t, out, "Seasons:  2   Episodes: -   Seen: 1")
	assert.Contains(t, out, "Added:    1 hour ago")
}
