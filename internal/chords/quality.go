package chords

import "strings"

// classifyQuality maps parsed components to a single coarse label. It is
// total over any successfully parsed chord; the fallthrough is major, which
// also covers bare roots and major-family extensions like Cmaj7.
func classifyQuality(c *ChordComponents) string {
	if c.Suspension != "" {
		return QualitySuspended
	}

	quality := strings.ToLower(c.Quality)
	switch {
	case strings.HasPrefix(quality, "dim"):
		return QualityDiminished
	case strings.HasPrefix(quality, "aug"):
		return QualityAugmented
	case quality == "m" || quality == "min":
		return QualityMinor
	default:
		return QualityMajor
	}
}
