package extract

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jengzang/trails-backend-go/internal/models"
)

var (
	distanceCapPattern = regexp.MustCompile(`\b(?:under|less than|shorter than|below|no more than|at most|max(?:imum)?(?: of)?)\s+(\d+(?:\.\d+)?)\s*(?:mi\b|miles?\b)`)
	distanceMinPattern = regexp.MustCompile(`\b(?:over|more than|at least|longer than|greater than|above)\s+(\d+(?:\.\d+)?)\s*(?:mi\b|miles?\b)`)
	outAndBackPattern  = regexp.MustCompile(`\bout[ -]and[ -]back\b`)

	// "no dogs", "without my dog", "don't want dogs", "dogs are not allowed"
	noDogsPattern = regexp.MustCompile(`\b(?:no|without|not|never|avoid|don'?t)\b(?:\s+[a-z']+){0,2}?\s+dogs?\b|\bdogs?\s+(?:are\s+not|is\s+not|aren'?t|isn'?t|not)\s+allowed\b`)
)

// featureWords are the tags the keyword parser recognizes, singular form
var featureWords = []string{
	"waterfall", "lake", "river", "creek", "forest", "prairie", "beach", "canyon",
	"bluff", "view", "overlook", "scenic", "historic", "wildlife", "dune", "boardwalk",
	"marsh", "wetland", "gorge", "cave", "garden",
}

// KeywordParser extracts filters from plain phrases without a model.
// It is the fallback when no LLM is configured or the LLM fails.
type KeywordParser struct{}

// NewKeywordParser creates a keyword parser
func NewKeywordParser() *KeywordParser {
	return &KeywordParser{}
}

// Extract implements Extractor. It never fails.
func (p *KeywordParser) Extract(_ context.Context, message string) (*Result, error) {
	text := strings.ToLower(message)
	words := tokenize(text)
	res := &Result{Source: SourceKeyword}
	f := &res.Filters

	if strings.Contains(text, "chicago") && !mentionsAny(text, otherCities) {
		res.Steps = append(res.Steps, applyLocation(f, "chicago", KeywordRadiusMiles))
	}

	for _, d := range []models.Difficulty{models.DifficultyEasy, models.DifficultyModerate, models.DifficultyHard} {
		if words[string(d)] {
			f.Difficulty = d
			break
		}
	}

	switch {
	case outAndBackPattern.MatchString(text):
		f.RouteType = models.RouteOutAndBack
	case words["loop"] || words["loops"]:
		f.RouteType = models.RouteLoop
	}

	if words["dog"] || words["dogs"] {
		allowed := !noDogsPattern.MatchString(text)
		f.DogsAllowed = &allowed
	}

	if v, ok := matchNumber(distanceCapPattern, text); ok {
		f.DistanceCapMiles = &v
	}
	// "no more than" must not also read as a floor
	rest := distanceCapPattern.ReplaceAllString(text, " ")
	if v, ok := matchNumber(distanceMinPattern, rest); ok {
		f.DistanceMinMiles = &v
	}

	for _, state := range midwestStates {
		if words[state] {
			f.State = strings.ToUpper(state[:1]) + state[1:]
			break
		}
	}

	for _, w := range featureWords {
		switch {
		case words[w]:
			f.Features = append(f.Features, w)
		case words[w+"s"]:
			f.Features = append(f.Features, w+"s")
		}
	}

	res.Steps = append(res.Steps, fmt.Sprintf("keyword parser matched %d fields", countFields(f)))
	return res, nil
}

func tokenize(text string) map[string]bool {
	fields := strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
	out := make(map[string]bool, len(fields))
	for _, w := range fields {
		out[w] = true
	}
	return out
}

func mentionsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func matchNumber(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// countFields counts populated fields for the processing trace
func countFields(f *models.Filters) int {
	n := 0
	for _, set := range []bool{
		f.DistanceCapMiles != nil, f.DistanceMinMiles != nil, f.ElevationCapM != nil,
		f.Difficulty != "", f.RouteType != "", len(f.Features) > 0, f.DogsAllowed != nil,
		f.RadiusMiles != nil, f.CenterLat != nil, f.CenterLng != nil,
		f.City != "", f.County != "", f.State != "", f.Region != "", f.ManagingAgency != "",
		f.ParkingAvailable != nil, f.ParkingType != "", f.Restrooms != nil, f.WaterAvailable != nil,
		f.PicnicAreas != nil, f.CampingAvailable != nil, f.EntryFee != nil, f.PermitRequired != nil,
		f.SeasonalAccess != "", f.Accessibility != "", f.SurfaceType != "", f.TrailMarkers != nil,
		f.LoopTrail != nil,
	} {
		if set {
			n++
		}
	}
	return n
}
