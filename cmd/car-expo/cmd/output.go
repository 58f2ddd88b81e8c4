package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/carexpo/car-expo/internal/recommend"
	"github.com/carexpo/car-expo/pkg/rating"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printScoredTable(scored []recommend.Scored) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tYEAR\tMAKE\tMODEL\tTYPE\tPRICE\tSCORE\tGRADE\n")
	for i := range scored {
		s := &scored[i]
		grade := rating.GradeFor(float64(s.Rating.OverallScore))
		tw.writef("%s\t%d\t%s\t%s\t%s\t$%.0f\t%d\t%s\n",
			s.Listing.ID,
			s.Listing.Year,
			s.Listing.Make,
			s.Listing.Model,
			s.Listing.Type,
			s.Listing.Price,
			s.Rating.OverallScore,
			grade.Grade,
		)
	}
	return tw.finish()
}

func printScoredDetail(s *recommend.Scored) error {
	tw := newTabWriter(os.Stdout)
	grade := rating.GradeFor(float64(s.Rating.OverallScore))
	tw.writef("ID:\t%s\n", s.Listing.ID)
	tw.writef("Vehicle:\t%d %s %s\n", s.Listing.Year, s.Listing.Make, s.Listing.Model)
	tw.writef("Type:\t%s\n", s.Listing.Type)
	tw.writef("Price:\t$%.0f\n", s.Listing.Price)
	tw.writef("Overall:\t%d/100 (%s, %s)\n", s.Rating.OverallScore, grade.Grade, grade.Description)
	tw.writef("Value:\t%.1f\n", s.Rating.Breakdown.Value)
	tw.writef("Reliability:\t%.1f\n", s.Rating.Breakdown.Reliability)
	tw.writef("Features:\t%.1f\n", s.Rating.Breakdown.Features)
	tw.writef("Condition:\t%.1f\n", s.Rating.Breakdown.Condition)
	tw.writef("Performance:\t%.1f\n", s.Rating.Breakdown.Performance)
	tw.writef("Efficiency:\t%.1f\n", s.Rating.Breakdown.Efficiency)
	tw.writef("Style:\t%.1f\n", s.Rating.Breakdown.Style)
	for _, str := range s.Rating.Strengths {
		tw.writef("Strength:\t%s\n", str)
	}
	for _, w := range s.Rating.Weaknesses {
		tw.writef("Weakness:\t%s\n", w)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
