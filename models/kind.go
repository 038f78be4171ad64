package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by [ParseKind] for anything that is not one of
// the four bucket kinds.
var ErrUnknownKind = errors.New("unknown label kind")

// Kind names one of the four label buckets of the journal grid.
type Kind string

const (
	KindBull Kind = "bull"
	KindBear Kind = "bear"
	KindTR   Kind = "tr"
	KindBias Kind = "bias"
)

// Kinds lists the bucket kinds in column order.
var Kinds = []Kind{KindBull, KindBear, KindTR, KindBias}

// ParseKind accepts a kind name in any letter case ("Bull", "TR", "bias").
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Column returns the grid column holding labels of this kind.
func (k Kind) Column() string {
	switch k {
	case KindBull:
		return ColumnBull
	case KindBear:
		return ColumnBear
	case KindTR:
		return ColumnTR
	case KindBias:
		return ColumnBias
	}
	return ""
}

// PresetKey is the top-level key of presets.json that holds this kind's labels.
func (k Kind) PresetKey() string {
	return string(k) + "_points"
}

func (k Kind) String() string {
	return string(k)
}
