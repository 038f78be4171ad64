package presets

import "github.com/MKhiriev/trade-journal/models"

var (
	defaultBull = []string{
		"Strong bull close",
		"Two-legged pullback bull (H2)",
		"Decent bull bar()",
		"Bull BO + follow-through",
		"Micro DB -> bull scalp",
		"Bull TTR -> upside BO test",
		"Test of MA holding as support",
		"Buy the close context",
	}

	defaultBear = []string{
		"Strong bear close",
		"Two-legged pullback bear (L2)",
		"Decent bear bar()",
		"Bear BO + follow-through",
		"Micro DT -> bear scalp",
		"Bear TTR -> downside BO test",
		"Test of MA holding as resistance",
		"Sell the close context",
	}

	defaultTR = []string{
		"Trading range day",
		"Range high test / sellers above",
		"Range low test / buyers below",
		"TTR developing",
		"Failed BO -> reversal risk",
		"Mid-range magnet",
		"Wait for a strong BO",
	}

	defaultBias = []string{
		"Bull bias",
		"Bear bias",
		"Sideways / TR bias",
		"Buy climax risk",
		"Sell climax risk",
		"Opening reversal risk",
	}
)

// Defaults returns a fresh copy of the built-in preset set.
func Defaults() models.PresetSet {
	return models.PresetSet{
		Bull: defaultBull,
		Bear: defaultBear,
		TR:   defaultTR,
		Bias: defaultBias,
	}.Clone()
}

// DefaultLabels returns a copy of the built-in labels of kind k.
func DefaultLabels(k models.Kind) []string {
	return Defaults().Labels(k)
}
