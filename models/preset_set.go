package models

// PresetSet holds the quick-pick labels offered for each bucket kind.
//
// A resolved PresetSet never has an empty list. Values handed out by the
// presets package are copies, so callers may not mutate shared state through
// them.
type PresetSet struct {
	Bull []string `json:"bull"`
	Bear []string `json:"bear"`
	TR   []string `json:"tr"`
	Bias []string `json:"bias"`
}

// Labels returns the labels of kind k, or nil for an unknown kind.
func (p PresetSet) Labels(k Kind) []string {
	switch k {
	case KindBull:
		return p.Bull
	case KindBear:
		return p.Bear
	case KindTR:
		return p.TR
	case KindBias:
		return p.Bias
	}
	return nil
}

// With returns a copy of p whose kind k list is replaced by labels.
func (p PresetSet) With(k Kind, labels []string) PresetSet {
	out := p.Clone()
	switch k {
	case KindBull:
		out.Bull = cloneStrings(labels)
	case KindBear:
		out.Bear = cloneStrings(labels)
	case KindTR:
		out.TR = cloneStrings(labels)
	case KindBias:
		out.Bias = cloneStrings(labels)
	}
	return out
}

// Clone returns a deep copy of p.
func (p PresetSet) Clone() PresetSet {
	return PresetSet{
		Bull: cloneStrings(p.Bull),
		Bear: cloneStrings(p.Bear),
		TR:   cloneStrings(p.TR),
		Bias: cloneStrings(p.Bias),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
