package hex

import "math"

// Entropy swing scoring constants.
const (
	EntropyOffset    = 0.21
	EntropySteepness = 3.0
)

// patternOffsets is the neighborhood read by Entropy, most significant bit
// first. The cell itself sits in the middle.
var patternOffsets = [7][2]int{
	{-1, -1},
	{0, -1},
	{-1, 0},
	{0, 0},
	{1, 0},
	{0, 1},
	{1, 1},
}

// Logistic returns 1 / (1 + e^(-k*x)).
func Logistic(x, k float64) float64 {
	return 1 / (1 + math.Exp(-k*x))
}

// DensityIndex rates how snugly s would sit at origin: the share of the
// shape's open sides that would touch an occupied cell or the board edge.
// An invalid placement rates 0.
func (b *Board) DensityIndex(origin Coord, s Grid) float64 {
	possible, populated := 0, 0
	for _, cell := range gridCells(s) {
		if !cell.occupied {
			continue
		}
		target := cell.Add(origin).Pos()
		if i := b.index(target); i < 0 || b.cells[i].occupied {
			return 0
		}
		possible += 6 - CountNeighbors(s, cell.coord, false)
		populated += CountNeighbors(b, target, true)
	}
	if possible == 0 {
		return 0
	}
	return float64(populated) / float64(possible)
}

// Entropy returns the Shannon entropy, in bits, of the 7-cell occupancy
// patterns around every interior cell. The outer ring is not sampled.
func (b *Board) Entropy() float64 {
	var counts [128]int
	total := 0
	for _, cell := range b.cells {
		i, k := cell.LineI(), cell.LineK()
		if !At(i-1, k-1).InRange(b.radius - 1) {
			continue
		}
		counts[b.pattern(i, k)]++
		total++
	}
	if total == 0 {
		return 0
	}

	h := 0.0
	for _, n := range counts {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// pattern packs the occupancy around (i, k) into seven bits.
func (b *Board) pattern(i, k int) int {
	p := 0
	for _, off := range patternOffsets {
		p <<= 1
		if b.Occupied(At(i+off[0], k+off[1])) {
			p |= 1
		}
	}
	return p
}

// WeightedIndex places s at origin on a copy, eliminates, and squashes the
// entropy change against baseline through Logistic.
func (b *Board) WeightedIndex(origin Coord, s Grid, baseline float64) (float64, error) {
	trial, _, err := b.Trial(origin, s)
	if err != nil {
		return 0, err
	}
	return Logistic(trial.Entropy()-baseline-EntropyOffset, EntropySteepness), nil
}

// EntropyIndex is WeightedIndex measured against the board's own entropy.
func (b *Board) EntropyIndex(origin Coord, s Grid) (float64, error) {
	return b.WeightedIndex(origin, s, b.Entropy())
}
