// Package correction combines a base loss coefficient with auxiliary
// corrections (obstruction screens, perforated plates) under a
// case-selected combination rule. The composer is rule-agnostic; pipelines
// pick the rule and threshold per case from obstruction type and geometry.
package correction

// Rule selects how an auxiliary coefficient combines with the base.
type Rule int

const (
	// Additive adds the auxiliary coefficient: total = base + aux.
	Additive Rule = iota
	// AdditiveScaled adds the auxiliary coefficient scaled by the square
	// of an area ratio: total = base + aux/ratio².
	AdditiveScaled
	// ThresholdSwitch replaces the base term in the thin-geometry limit:
	// when the geometry ratio <= threshold, total = 1 + aux; otherwise
	// total = base + aux.
	ThresholdSwitch
)

// Correction carries one auxiliary coefficient and its combination rule.
type Correction struct {
	Aux  float64
	Rule Rule

	// AreaRatio is the AdditiveScaled divisor base. Zero is treated as 1,
	// matching the degenerate-geometry guard in the reference data.
	AreaRatio float64

	// Ratio and Threshold drive the ThresholdSwitch rule.
	Ratio     float64
	Threshold float64
}

// Compose applies corrections to the base coefficient in order.
func Compose(base float64, corrs ...Correction) float64 {
	total := base
	for _, c := range corrs {
		switch c.Rule {
		case AdditiveScaled:
			ratio := c.AreaRatio
			if ratio == 0 {
				ratio = 1
			}
			total += c.Aux / (ratio * ratio)
		case ThresholdSwitch:
			if c.Ratio <= c.Threshold {
				total = 1 + c.Aux
			} else {
				total += c.Aux
			}
		default:
			total += c.Aux
		}
	}
	return total
}
