package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"
)

// HallEntry is one of the best genomes seen during a run.
type HallEntry struct {
	Generation int       `json:"generation"`
	Fitness    float32   `json:"fitness"`
	Genes      []float32 `json:"genes"` // canonical flat network weights
}

// HallOfFame keeps the top genomes by fitness across all generations,
// sorted descending.
type HallOfFame struct {
	entries []HallEntry
	maxSize int
}

// NewHallOfFame creates a hall with the given capacity. A non-positive
// capacity returns nil, which every method treats as disabled.
func NewHallOfFame(maxSize int) *HallOfFame {
	if maxSize <= 0 {
		return nil
	}
	return &HallOfFame{
		entries: make([]HallEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Consider offers a genome for entry. Genes are copied. Returns true if the
// genome made it in.
func (hof *HallOfFame) Consider(generation int, fitness float32, genes []float32) bool {
	if hof == nil || fitness <= 0 {
		return false
	}

	// Ties keep the earlier entry first.
	idx := sort.Search(len(hof.entries), func(i int) bool {
		return hof.entries[i].Fitness < fitness
	})
	if idx >= hof.maxSize {
		return false
	}

	entry := HallEntry{Generation: generation, Fitness: fitness, Genes: slices.Clone(genes)}
	hof.entries = slices.Insert(hof.entries, idx, entry)
	if len(hof.entries) > hof.maxSize {
		hof.entries = hof.entries[:hof.maxSize]
	}
	return true
}

// Len returns the number of entries.
func (hof *HallOfFame) Len() int {
	if hof == nil {
		return 0
	}
	return len(hof.entries)
}

// Best returns the fittest entry, or false if the hall is empty.
func (hof *HallOfFame) Best() (HallEntry, bool) {
	if hof.Len() == 0 {
		return HallEntry{}, false
	}
	return hof.entries[0], true
}

// TopFitness returns the highest fitness in the hall, 0 if empty.
func (hof *HallOfFame) TopFitness() float32 {
	best, _ := hof.Best()
	return best.Fitness
}

// Entries returns the entries, fittest first.
func (hof *HallOfFame) Entries() []HallEntry {
	if hof == nil {
		return nil
	}
	return slices.Clone(hof.entries)
}

// MarshalJSON serializes the hall as a JSON array, fittest first.
func (hof *HallOfFame) MarshalJSON() ([]byte, error) {
	entries := hof.Entries()
	if entries == nil {
		entries = []HallEntry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// LoadHallOfFameFromFile reads a hall written by OutputManager.WriteHallOfFame.
func LoadHallOfFameFromFile(path string, maxSize int) (*HallOfFame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hall of fame: %w", err)
	}

	var entries []HallEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing hall of fame JSON: %w", err)
	}

	hof := NewHallOfFame(max(maxSize, len(entries)))
	for _, e := range entries {
		hof.Consider(e.Generation, e.Fitness, e.Genes)
	}
	return hof, nil
}
