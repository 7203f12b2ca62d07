package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"moviedb/internal/model"
)

const (
	rule      = 60
	entryRule = 40
)

func avg(r model.Rating) string {
	if !r.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", r.Average)
}

// WriteText renders the report. Detailed reports list every actor before the
// summary.
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	line := func(format string, args ...any) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	line("%s", strings.Repeat("=", rule))
	line("ACTOR RATING ANALYSIS REPORT")
	line("%s", strings.Repeat("=", rule))
	line("Generated at: %s", r.GeneratedAt.Format(time.RFC3339))

	if r.Detailed {
		line("")
		for _, e := range r.Actors {
			writeEntry(line, e)
		}
	}

	line("")
	line("SUMMARY:")
	line("Total Actors Analyzed: %d", len(r.Actors))
	line("Total Movies: %d", r.TotalMovies)
	line("Total Episodes: %d", r.TotalEpisodes)

	line("")
	line("TOP %d MOVIE ACTORS BY RATING:", TopN)
	for i, e := range r.TopMovie {
		line("%2d. %s: %.2f (%d movies)", i+1, e.Name, e.MovieRating.Average, e.TotalMovies)
	}

	line("")
	line("TOP %d TV ACTORS BY RATING:", TopN)
	for i, e := range r.TopTV {
		line("%2d. %s: %.2f (%d episodes)", i+1, e.Name, e.EpisodeRating.Average, e.TotalEpisodes)
	}

	line("")
	line("Analysis completed in %.2f seconds", r.Elapsed.Seconds())
	return bw.Flush()
}

func writeEntry(line func(string, ...any), e ActorAnalysis) {
	line("Actor: %s", e.Name)
	line("  Total Movies: %d", e.TotalMovies)
	line("  Total TV Episodes: %d", e.TotalEpisodes)
	line("  Average Movie Rating: %s", avg(e.MovieRating))
	line("  Average TV Rating: %s", avg(e.EpisodeRating))
	line("  Overall Average Rating: %s", avg(e.Overall))

	dist := make([]string, len(e.Distribution))
	for i, n := range e.Distribution {
		dist[i] = fmt.Sprintf("%d:%d", i+1, n)
	}
	line("  Rating Distribution: %s", strings.Join(dist, " "))

	if c := e.Career; c.First != nil {
		line("  Career: %s to %s (%d days, %.2f years)",
			c.First.Format(time.DateOnly), c.Last.Format(time.DateOnly), c.SpanDays, c.SpanYears)
	} else {
		line("  Career: n/a")
	}

	line("  Genre Diversity: %d genres", len(e.Genres))
	for _, g := range e.Genres {
		line("    %s: %d movies, %d episodes, avg %s", g.Genre.Label(), g.Movies, g.Episodes, avg(g.Rating))
	}
	if len(e.Collaborators) > 0 {
		names := make([]string, len(e.Collaborators))
		for i, c := range e.Collaborators {
			name := c.Name
			if c.Director {
				name = "Director: " + name
			}
			names[i] = fmt.Sprintf("%s (%d)", name, c.Count)
		}
		line("  Top Collaborators: %s", strings.Join(names, ", "))
	}
	line("%s", strings.Repeat("-", entryRule))
}
