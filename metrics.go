package wikilens

import "math"

// ChangeMetrics holds quantitative change statistics for one snapshot pair.
type ChangeMetrics struct {
	LinesAdded     int     `json:"lines_added"`
	LinesRemoved   int     `json:"lines_removed"`
	PercentChanged float64 `json:"percent_changed"`
	BlocksChanged  int     `json:"blocks_changed"`
}

// ComputeMetrics derives change statistics from an edit script and the two
// snapshots it was computed from. Pure and total: no I/O, no failure modes.
//
// BlocksChanged is a coarse structural proxy, the absolute difference of the
// two line counts divided by five. It is not a semantic block detector and is
// kept as a documented heuristic.
func ComputeMetrics(old, new Snapshot, script EditScript) ChangeMetrics {
	added, removed := script.Counts()

	// Floor the denominator at 1 so an empty old snapshot yields a
	// percentage instead of a division by zero.
	total := len(old.Lines)
	if total == 0 {
		total = 1
	}
	percent := math.Round(float64(added+removed)/float64(total)*100*100) / 100

	blocks := len(old.Lines)/5 - len(new.Lines)/5
	if blocks < 0 {
		blocks = -blocks
	}

	return ChangeMetrics{
		LinesAdded:     added,
		LinesRemoved:   removed,
		PercentChanged: percent,
		BlocksChanged:  blocks,
	}
}
