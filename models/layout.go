package models

import "strconv"

// Grid column names, left to right.
const (
	ColumnBar  = "Bar"
	ColumnBull = "Bull"
	ColumnBear = "Bear"
	ColumnTR   = "TR"
	ColumnBias = "Bias"
)

// Session rows that precede the numbered bars.
const (
	BarRTH = "RTH"
	BarETH = "ETH"
)

// BarsPerSession is the number of numbered 5-minute bars in a regular session.
const BarsPerSession = 81

// Column describes one column of the journal grid.
type Column struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
	// Kind is empty for the Bar column.
	Kind Kind `json:"kind,omitempty"`
}

// Layout is the static shape of a journal day: its columns and row order.
type Layout struct {
	Columns []Column `json:"columns"`
	Bars    []string `json:"bars"`
}

var barOrder = buildBarOrder()

func buildBarOrder() []string {
	bars := make([]string, 0, BarsPerSession+2)
	bars = append(bars, BarRTH, BarETH)
	for i := 1; i <= BarsPerSession; i++ {
		bars = append(bars, strconv.Itoa(i))
	}
	return bars
}

// Columns returns the grid columns in display order.
func Columns() []Column {
	return []Column{
		{Name: ColumnBar, Width: 60},
		{Name: ColumnBull, Width: 250, Kind: KindBull},
		{Name: ColumnBear, Width: 250, Kind: KindBear},
		{Name: ColumnTR, Width: 250, Kind: KindTR},
		{Name: ColumnBias, Width: 200, Kind: KindBias},
	}
}

// BarOrder returns a copy of the row order: RTH, ETH, then 1..81.
func BarOrder() []string {
	out := make([]string, len(barOrder))
	copy(out, barOrder)
	return out
}

// BarIndex returns the row position of bar, or -1 if bar is not a journal row.
func BarIndex(bar string) int {
	for i, b := range barOrder {
		if b == bar {
			return i
		}
	}
	return -1
}

// IsValidBar reports whether bar names a journal row.
func IsValidBar(bar string) bool {
	return BarIndex(bar) >= 0
}

// DefaultLayout returns the journal layout used by every day.
func DefaultLayout() Layout {
	return Layout{Columns: Columns(), Bars: BarOrder()}
}
