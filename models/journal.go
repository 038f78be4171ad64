package models

import (
	"errors"
	"fmt"
	"time"
)

// TradeDateLayout is the wire and storage format of a journal date.
const TradeDateLayout = "2006-01-02"

// ErrInvalidTradeDate is returned by [ParseTradeDate].
var ErrInvalidTradeDate = errors.New("invalid trade date")

// ParseTradeDate parses a YYYY-MM-DD date and returns it in canonical form.
func ParseTradeDate(s string) (string, error) {
	t, err := time.Parse(TradeDateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTradeDate, s)
	}
	return t.Format(TradeDateLayout), nil
}

// CellKey addresses one cell of the journal: a kind column of a bar row on a
// given trading day.
type CellKey struct {
	Date string `json:"date"`
	Bar  string `json:"bar"`
	Kind Kind   `json:"kind"`
}

// Cell is a stored journal cell with its labels in insertion order.
type Cell struct {
	CellKey
	Labels    []string  `json:"labels"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Row is one bar of a journal day with the labels of every kind.
type Row struct {
	Bar  string   `json:"bar"`
	Bull []string `json:"bull"`
	Bear []string `json:"bear"`
	TR   []string `json:"tr"`
	Bias []string `json:"bias"`
}

// Set replaces the labels of kind k.
func (r *Row) Set(k Kind, labels []string) {
	switch k {
	case KindBull:
		r.Bull = labels
	case KindBear:
		r.Bear = labels
	case KindTR:
		r.TR = labels
	case KindBias:
		r.Bias = labels
	}
}

// Get returns the labels of kind k.
func (r Row) Get(k Kind) []string {
	switch k {
	case KindBull:
		return r.Bull
	case KindBear:
		return r.Bear
	case KindTR:
		return r.TR
	case KindBias:
		return r.Bias
	}
	return nil
}

// Day is the full grid of a trading day, one Row per bar in [BarOrder].
type Day struct {
	Date string `json:"date"`
	Rows []Row  `json:"rows"`
}

// NewDay builds the grid for date from stored cells. Every bar gets a row and
// every kind an empty (non-nil) list. Cells for unknown bars are ignored.
func NewDay(date string, cells []Cell) Day {
	bars := BarOrder()
	rows := make([]Row, len(bars))
	for i, bar := range bars {
		rows[i] = Row{Bar: bar, Bull: []string{}, Bear: []string{}, TR: []string{}, Bias: []string{}}
	}

	for _, c := range cells {
		idx := BarIndex(c.Bar)
		if idx < 0 {
			continue
		}
		rows[idx].Set(c.Kind, cloneStrings(c.Labels))
	}

	return Day{Date: date, Rows: rows}
}
