package roamterrain

import "math"

// buildHypoLenTable precomputes hypo_len[level], the grid-unit length of
// a level-`level` triangle's hypotenuse, for level in [0, maxLevel]. Level
// 0 is a root spanning the full domain diagonal; a child's hypotenuse is
// its parent's leg, so every length shrinks by a factor of sqrt(2)/2 per
// level. This table is immutable after init and safely shared read-only.
func buildHypoLenTable(size int, maxLevel int) []float64 {
	table := make([]float64, maxLevel+1)
	rootHypo := float64(size) * math.Sqrt2
	for level := 0; level <= maxLevel; level++ {
		table[level] = rootHypo / math.Pow(math.Sqrt2, float64(level))
	}
	return table
}
