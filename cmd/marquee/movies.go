package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newListCmd(c *cli) *cobra.Command {
	var opts ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies and series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateSortKey(opts.Sort); err != nil {
				return err
			}
			resp, err := c.client().ListMovies(opts)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printEntries(cmd.OutOrStdout(), resp.Movies, time.Now())
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Filter by type (movie, series, all)")
	cmd.Flags().StringVarP(&opts.Watched, "watched", "w", "", "Filter by watched status (true, false, all)")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Filter by title substring")
	cmd.Flags().StringVarP(&opts.Genre, "genre", "g", "", "Filter by genre")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort by addedDate, title, titleDesc, year, yearOld or rating")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 0, "Maximum number of items to return")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Number of items to skip")
	return cmd
}

func newGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one movie or series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.client().GetMovie(args[0])
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), e)
			}
			printEntry(cmd.OutOrStdout(), e, time.Now())
			return nil
		},
	}
}

func newAddCmd(c *cli) *cobra.Command {
	var (
		title, kind, tmdbID, review string
		year, seasons, episodes     int
		rating                      float64
		genres                      []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie or series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields := map[string]any{"title": title, "type": kind}
			flags := cmd.Flags()
			if flags.Changed("year") {
				fields["year"] = year
			}
			if flags.Changed("tmdb-id") {
				fields["tmdb_id"] = tmdbID
			}
			if flags.Changed("genre") {
				fields["genres"] = genres
			}
			if flags.Changed("rating") {
				fields["user_rating"] = rating
			}
			if flags.Changed("review") {
				fields["user_review"] = review
			}
			if flags.Changed("seasons") {
				fields["total_seasons"] = seasons
			}
			if flags.Changed("episodes") {
				fields["total_episodes"] = episodes
			}

			e, err := c.client().CreateMovie(fields)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), e)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) %s\n", e.Title, yearString(e.Year), e.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&kind, "type", "movie", "Type: movie or series")
	cmd.Flags().IntVar(&year, "year", 0, "Release year")
	cmd.Flags().StringVar(&tmdbID, "tmdb-id", "", "The Movie Database ID")
	cmd.Flags().StringSliceVar(&genres, "genre", nil, "Genre (repeatable)")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Your rating")
	cmd.Flags().StringVar(&review, "review", "", "Your review")
	cmd.Flags().IntVar(&seasons, "seasons", 0, "Total seasons (series)")
	cmd.Flags().IntVar(&episodes, "episodes", 0, "Total episodes (series)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

// parseAssignments turns key=value pairs into an update body. Values that
// are valid JSON are sent as-is; anything else is sent as a string.
func parseAssignments(pairs []string) (map[string]json.RawMessage, error) {
	fields := make(map[string]json.RawMessage, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q, want key=value", pair)
		}
		if json.Valid([]byte(value)) {
			fields[key] = json.RawMessage(value)
			continue
		}
		quoted, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		fields[key] = quoted
	}
	return fields, nil
}

func newUpdateCmd(c *cli) *cobra.Command {
	var assignments []string
	cmd := &cobra.Command{
		Use:   "update <id> --set key=value...",
		Short: "Update fields of a movie or series",
		Long: `Update fields of a movie or series.

Values that parse as JSON are sent unchanged, so numbers, booleans, arrays
and null work as expected:

  marquee update <id> --set year=1999 --set 'genres=["Drama"]' --set user_review=null`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseAssignments(assignments)
			if err != nil {
				return err
			}
			e, err := c.client().UpdateMovie(args[0], fields)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), e)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", e.Title, yearString(e.Year))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "Field assignment key=value (repeatable)")
	_ = cmd.MarkFlagRequired("set")
	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movie or series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client().DeleteMovie(args[0])
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			if resp.Movie != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", resp.Movie.Title)
			}
			return nil
		},
	}
}

func newToggleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip the watched status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.client().ToggleWatched(args[0])
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), e)
			}
			state := "unwatched"
			if e.Watched {
				state = "watched"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", e.Title, state)
			return nil
		},
	}
}

func newEpisodesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "episodes <id> [episode...]",
		Short: "Replace the list of watched episodes",
		Long: `Replace the list of watched episodes of a series.

Episodes are opaque labels such as S01E03. Passing none clears the list.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.client().SetEpisodes(args[0], args[1:])
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), e)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d episodes watched\n", e.Title, len(e.WatchedEpisodes))
			return nil
		},
	}
}

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.client().Stats()
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), s)
			}
			printStats(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.client().Search(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			printEntries(cmd.OutOrStdout(), entries, time.Now())
			return nil
		},
	}
}
