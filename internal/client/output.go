package client

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/trade-journal/models"
)

// labelSeparator joins the labels of one cell on a single line.
const labelSeparator = " | "

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// printPresets prints a numbered list per kind; the numbers are the ones
// "presets copy" accepts.
func printPresets(w io.Writer, resp models.PresetsResponse, kinds []models.Kind) {
	fmt.Fprintf(w, "origin: %s\n", resp.Origin)

	for _, kind := range kinds {
		header := kind.Column()
		if slices.Contains(resp.Defaulted, kind) {
			header += " (default)"
		}
		fmt.Fprintf(w, "\n%s\n", header)

		for i, label := range resp.Labels(kind) {
			fmt.Fprintf(w, "%3d  %s\n", i+1, label)
		}
	}
}

func printResolution(w io.Writer, report models.ResolutionResponse) {
	fmt.Fprintf(w, "origin: %s\n", report.Origin)
	if len(report.Candidates) == 0 {
		fmt.Fprintln(w, "no candidate locations")
		return
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "#\tSOURCE\tOUTCOME\tPATH")
	for i, c := range report.Candidates {
		outcome := c.Outcome
		if outcome == "" {
			outcome = "not tried"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, c.Source, outcome, c.Path)
	}
	_ = tw.Flush()

	for _, c := range report.Candidates {
		if c.Error != "" {
			fmt.Fprintf(w, "  %s: %s\n", c.Path, c.Error)
		}
	}
}

func printLayout(w io.Writer, layout models.Layout) {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "COLUMN\tKIND\tWIDTH")
	for _, col := range layout.Columns {
		kind := string(col.Kind)
		if kind == "" {
			kind = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", col.Name, kind, col.Width)
	}
	_ = tw.Flush()

	if len(layout.Bars) == 0 {
		return
	}
	fmt.Fprintf(w, "\nbars: %s .. %s (%d rows)\n", layout.Bars[0], layout.Bars[len(layout.Bars)-1], len(layout.Bars))
}

// printDay prints one line per bar. Bars without labels are skipped unless
// all is set.
func printDay(w io.Writer, day models.Day, all bool) {
	fmt.Fprintf(w, "%s\n", day.Date)

	tw := newTabWriter(w)
	header := []string{models.ColumnBar}
	for _, kind := range models.Kinds {
		header = append(header, kind.Column())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	printed := 0
	for _, row := range day.Rows {
		if !all && rowIsEmpty(row) {
			continue
		}

		cols := []string{row.Bar}
		for _, kind := range models.Kinds {
			cols = append(cols, strings.Join(row.Get(kind), labelSeparator))
		}
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
		printed++
	}
	_ = tw.Flush()

	if printed == 0 {
		fmt.Fprintln(w, "no labels")
	}
}

func printCell(w io.Writer, cell models.Cell) {
	labels := strings.Join(cell.Labels, labelSeparator)
	if labels == "" {
		labels = "(empty)"
	}
	fmt.Fprintf(w, "%s %s %s: %s\n", cell.Date, cell.Bar, cell.Kind.Column(), labels)
}

func rowIsEmpty(row models.Row) bool {
	for _, kind := range models.Kinds {
		if len(row.Get(kind)) > 0 {
			return false
		}
	}
	return true
}
