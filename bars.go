package storeshots

import "math/rand"

// BreakdownRanges are the value ranges of the stacked segments of each
// weekly bar, bottom to top.
var BreakdownRanges = [][2]float64{
	{80, 160},
	{25, 70},
	{12, 45},
	{8, 30},
}

// WeeklyBreakdown returns days rows of stacked bar segment heights, one
// value per BreakdownRanges entry. Values come from a PRNG seeded with
// DefaultSeed and drawn day by day, segment by segment.
func WeeklyBreakdown(days int) [][]float64 {
	if days <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(DefaultSeed))
	out := make([][]float64, days)
	for d := range out {
		row := make([]float64, len(BreakdownRanges))
		for i, r := range BreakdownRanges {
			row[i] = randFloat(rng, r[0], r[1])
		}
		out[d] = row
	}
	return out
}
