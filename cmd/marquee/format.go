package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hbollon/go-edlib"

	"github.com/vmunix/marquee/internal/library"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

func yearString(y *int) string {
	if y == nil {
		return "-"
	}
	return fmt.Sprint(*y)
}

func checkMark(b bool) string {
	if b {
		return "✓"
	}
	return " "
}

// relativeTime renders t relative to now; the zero time prints as "-".
func relativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func printEntries(w io.Writer, entries []*library.Entry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No movies or series found")
		return
	}

	fmt.Fprintf(w, "%-36s │ %-32s │ %-6s │ %-4s │ %s │ %s\n", "ID", "TITLE", "TYPE", "YEAR", "W", "ADDED")
	fmt.Fprintln(w, strings.Repeat("─", 37)+"┼"+strings.Repeat("─", 34)+"┼"+strings.Repeat("─", 8)+"┼"+strings.Repeat("─", 6)+"┼───┼"+strings.Repeat("─", 16))
	for _, e := range entries {
		fmt.Fprintf(w, "%-36s │ %-32s │ %-6s │ %-4s │ %s │ %s\n",
			e.ID, truncate(e.Title, 32), e.Kind, yearString(e.Year), checkMark(e.Watched), relativeTime(e.CreatedAt, now))
	}
}

func printEntry(w io.Writer, e *library.Entry, now time.Time) {
	fmt.Fprintf(w, "%s (%s)\n", e.Title, yearString(e.Year))
	fmt.Fprintf(w, "  ID:       %s\n", e.ID)
	fmt.Fprintf(w, "  Type:     %s\n", e.Kind)
	if e.ExternalRef != nil {
		fmt.Fprintf(w, "  TMDB:     %s\n", string(*e.ExternalRef))
	}
	if len(e.Genres) > 0 {
		fmt.Fprintf(w, "  Genres:   %s\n", strings.Join(e.Genres, ", "))
	}
	fmt.Fprintf(w, "  Watched:  %t\n", e.Watched)
	if e.UserRating != nil {
		fmt.Fprintf(w, "  Rating:   %s\n", humanize.Ftoa(*e.UserRating))
	}
	if e.UserReview != nil && *e.UserReview != "" {
		fmt.Fprintf(w, "  Review:   %s\n", *e.UserReview)
	}
	if e.Kind == library.KindSeries {
		seasons, episodes := "-", "-"
		if e.TotalSeasons != nil {
			seasons = fmt.Sprint(*e.TotalSeasons)
		}
		if e.TotalEpisodes != nil {
			episodes = fmt.Sprint(*e.TotalEpisodes)
		}
		fmt.Fprintf(w, "  Seasons:  %s   Episodes: %s   Seen: %d\n", seasons, episodes, len(e.WatchedEpisodes))
	}
	fmt.Fprintf(w, "  Added:    %s\n", relativeTime(e.CreatedAt, now))
	fmt.Fprintf(w, "  Updated:  %s\n", relativeTime(e.UpdatedAt, now))
}

func printStats(w io.Writer, s *library.Stats) {
	fmt.Fprintf(w, "Total:    %s\n", humanize.Comma(int64(s.Total)))
	fmt.Fprintf(w, "Movies:   %s\n", humanize.Comma(int64(s.Movies)))
	fmt.Fprintf(w, "Series:   %s\n", humanize.Comma(int64(s.Series)))
	fmt.Fprintf(w, "Watched:  %s\n", humanize.Comma(int64(s.Watched)))
}

// minSortSimilarity is the Jaro-Winkler score above which a misspelled sort
// key gets a suggestion.
const minSortSimilarity = 0.7

// suggestSortKey returns the recognized sort key closest to s, or "" when
// none is close enough.
func suggestSortKey(s string) string {
	var best string
	var bestScore float32
	for _, k := range library.SortKeys() {
		score := edlib.JaroWinklerSimilarity(strings.ToLower(s), strings.ToLower(string(k)))
		if score > bestScore {
			best, bestScore = string(k), score
		}
	}
	if bestScore < minSortSimilarity {
		return ""
	}
	return best
}

func validateSortKey(s string) error {
	if s == "" || library.SortKey(s).Known() {
		return nil
	}
	keys := make([]string, 0, len(library.SortKeys()))
	for _, k := range library.SortKeys() {
		keys = append(keys, string(k))
	}
	if guess := suggestSortKey(s); guess != "" {
		return fmt.Errorf("unknown sort key %q (did you mean %q?)", s, guess)
	}
	return fmt.Errorf("unknown sort key %q (valid: %s)", s, strings.Join(keys, ", "))
}
