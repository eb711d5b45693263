package search

import (
	"sort"

	"github.com/jengzang/trails-backend-go/internal/models"
)

// Resolve filters trails by the conjunction of every populated field of f,
// orders the survivors and caps the result at maxResults (<= 0 means no cap).
// f is expected to be sanitized. The input slice is not modified.
func Resolve(f models.Filters, trails []models.Trail, maxResults int) []models.Trail {
	preds := buildPredicates(f)

	matched := make([]models.Trail, 0, len(trails))
	for i := range trails {
		if matchesAll(&trails[i], preds) {
			matched = append(matched, trails[i])
		}
	}

	sortTrails(matched, difficultyRanks(f.Difficulty))

	if maxResults > 0 && len(matched) > maxResults {
		matched = matched[:maxResults]
	}
	return matched
}

// difficultyRanks returns the sort rank per difficulty. A requested extreme
// moves to the front; otherwise easy, moderate, hard.
func difficultyRanks(preferred models.Difficulty) map[models.Difficulty]int {
	if preferred == models.DifficultyHard {
		return map[models.Difficulty]int{
			models.DifficultyHard:     1,
			models.DifficultyModerate: 2,
			models.DifficultyEasy:     3,
		}
	}
	return map[models.Difficulty]int{
		models.DifficultyEasy:     1,
		models.DifficultyModerate: 2,
		models.DifficultyHard:     3,
	}
}

// rank returns 4 for unknown difficulties so they sort last
func rank(ranks map[models.Difficulty]int, d models.Difficulty) int {
	if r, ok := ranks[d]; ok {
		return r
	}
	return 4
}

// sortTrails orders by difficulty rank, distance, elevation, then id
func sortTrails(trails []models.Trail, ranks map[models.Difficulty]int) {
	sort.SliceStable(trails, func(i, j int) bool {
		a, b := &trails[i], &trails[j]
		if ra, rb := rank(ranks, a.Difficulty), rank(ranks, b.Difficulty); ra != rb {
			return ra < rb
		}
		if a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		if a.ElevationGainM != b.ElevationGainM {
			return a.ElevationGainM < b.ElevationGainM
		}
		return a.ID < b.ID
	})
}
