package service

import (
	"fmt"
	"strings"

	"github.com/jengzang/trails-backend-go/internal/models"
)

// summarize writes the chat reply that accompanies the result list
func summarize(resp *models.SearchResponse) string {
	if resp.Count > 0 {
		noun := "trails"
		if resp.Count == 1 {
			noun = "trail"
		}
		return fmt.Sprintf("Found %d %s matching your criteria.", resp.Count, noun)
	}
	return noResultsMessage(resp.Filters)
}

// noResultsMessage names the criteria that were applied and suggests how to
// loosen them, at most three suggestions.
func noResultsMessage(f models.Filters) string {
	var criteria, suggestions []string

	if f.Difficulty != "" {
		criteria = append(criteria, fmt.Sprintf("%s difficulty", f.Difficulty))
		if f.Difficulty == models.DifficultyHard {
			suggestions = append(suggestions, "Try searching for moderate difficulty trails instead")
		}
	}

	location := f.City
	if location == "" {
		location = f.State
	}
	switch {
	case location != "":
		criteria = append(criteria, "in "+location)
		suggestions = append(suggestions, fmt.Sprintf("Try searching nearby states or cities around %s", location))
	case f.HasRadius():
		criteria = append(criteria, fmt.Sprintf("within %.0f miles", *f.RadiusMiles))
		suggestions = append(suggestions, "Try a larger search radius")
	}

	if f.DistanceCapMiles != nil {
		criteria = append(criteria, fmt.Sprintf("under %g miles long", *f.DistanceCapMiles))
		suggestions = append(suggestions, fmt.Sprintf("Try increasing the distance limit to %g miles", *f.DistanceCapMiles+2))
	}
	if f.DistanceMinMiles != nil {
		criteria = append(criteria, fmt.Sprintf("over %g miles long", *f.DistanceMinMiles))
		suggestions = append(suggestions, fmt.Sprintf("Try reducing the minimum distance to %g miles", max(1, *f.DistanceMinMiles-1)))
	}
	if len(f.Features) > 0 {
		criteria = append(criteria, "with features: "+strings.Join(f.Features, ", "))
		suggestions = append(suggestions, "Try different features or remove some feature requirements")
	}
	if f.DogsAllowed != nil {
		status := "no-dogs-allowed"
		if *f.DogsAllowed {
			status = "dog-friendly"
		}
		criteria = append(criteria, "that are "+status)
		suggestions = append(suggestions, "Try removing the dog policy requirement to see more options")
	}

	var b strings.Builder
	if len(criteria) > 0 {
		fmt.Fprintf(&b, "No trails found matching your search for trails %s.", strings.Join(criteria, ", "))
	} else {
		b.WriteString("No trails found matching your search criteria.")
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	for i, s := range suggestions {
		fmt.Fprintf(&b, "\n%d. %s", i+1, s)
	}
	return b.String()
}
