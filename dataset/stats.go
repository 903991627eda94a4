package dataset

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Moments summarizes one scalar variable over the corpus.
type Moments struct {
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
}

//Summary describes a corpus before generation, which is useful to spot
//skewed property distributions or oversized cells before paying for the
//simulations.
type Summary struct {
	Count    int
	Volume   Moments
	Sites    Moments
	Property Moments
	Elements map[string]int //how many entries contain each element
}

func moments(xs []float64) Moments {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	std := 0.0
	if len(xs) > 1 {
		std = stat.StdDev(xs, nil)
	}
	return Moments{
		Mean:   stat.Mean(xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Std:    std,
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
	}
}

//Stats computes the corpus summary. Entries with nil crystals are
//rejected.
func Stats(entries []Entry) (*Summary, error) {
	if len(entries) == 0 {
		return nil, Error{EmptyCorpus, "", "", []string{"Stats"}, true}
	}
	vols := make([]float64, len(entries))
	nsites := make([]float64, len(entries))
	props := make([]float64, len(entries))
	elements := make(map[string]int)
	for i, e := range entries {
		if e.Crystal == nil {
			return nil, Error{NilEntry, e.ID, "", []string{"Stats"}, true}
		}
		vols[i] = e.Crystal.Lattice().Volume()
		nsites[i] = float64(e.Crystal.Len())
		props[i] = e.Property
		inEntry := make(map[string]bool)
		for _, s := range e.Crystal.Sites() {
			inEntry[s.Symbol] = true
		}
		for sym := range inEntry {
			elements[sym]++
		}
	}
	return &Summary{
		Count:    len(entries),
		Volume:   moments(vols),
		Sites:    moments(nsites),
		Property: moments(props),
		Elements: elements,
	}, nil
}
