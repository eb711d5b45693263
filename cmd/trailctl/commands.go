package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jengzang/trails-backend-go/internal/models"
	"github.com/jengzang/trails-backend-go/internal/service"
)

const (
	flagDifficulty   = "difficulty"
	flagMaxMiles     = "max-miles"
	flagMinMiles     = "min-miles"
	flagMaxElevation = "max-elevation"
	flagRoute        = "route"
	flagFeature      = "feature"
	flagDogs         = "dogs"
	flagRadius       = "radius"
	flagLat          = "lat"
	flagLng          = "lng"
	flagState        = "state"
	flagCity         = "city"
	flagArea         = "area"
	flagLimit        = "limit"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog with the bundled trails",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := open(c, false)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.Service.Seed(c.Context())
			if err != nil {
				return err
			}
			return printJSON(c, resp)
		},
	}
}

func newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search [message]",
		Short: "Search trails",
		Long: `Search trails with structured flags, or pass a message to run the
conversational path (model extraction when configured, keywords otherwise).`,
		Example: `  trailctl search --difficulty easy --dogs --max-miles 5
  trailctl search "hard out and back hikes in Wisconsin"`,
		RunE: runSearch,
	}
	c.Flags().String(flagDifficulty, "", "easy, moderate or hard")
	c.Flags().Float64(flagMaxMiles, 0, "Maximum length in miles")
	c.Flags().Float64(flagMinMiles, 0, "Minimum length in miles")
	c.Flags().Int(flagMaxElevation, 0, "Maximum elevation gain in meters")
	c.Flags().String(flagRoute, "", "loop or out_and_back")
	c.Flags().StringSlice(flagFeature, nil, "Required feature (repeatable)")
	c.Flags().Bool(flagDogs, false, "Require dogs allowed (--dogs=false for no dogs)")
	c.Flags().Float64(flagRadius, 0, "Radius in miles around --lat/--lng")
	c.Flags().Float64(flagLat, 0, "Center latitude")
	c.Flags().Float64(flagLng, 0, "Center longitude")
	c.Flags().String(flagState, "", "State name")
	c.Flags().String(flagCity, "", "City name")
	return c
}

func runSearch(c *cobra.Command, args []string) error {
	a, err := open(c, true)
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) > 0 {
		resp, err := a.Service.Chat(c.Context(), strings.Join(args, " "), "")
		if err != nil {
			return err
		}
		return printJSON(c, resp)
	}

	resp, err := a.Service.Search(c.Context(), filtersFromFlags(c))
	if err != nil {
		return err
	}
	return printJSON(c, resp)
}

// filtersFromFlags sets only the flags the user passed
func filtersFromFlags(c *cobra.Command) models.Filters {
	var f models.Filters
	flags := c.Flags()

	difficulty, _ := flags.GetString(flagDifficulty)
	f.Difficulty = parseDifficulty(difficulty)
	route, _ := flags.GetString(flagRoute)
	f.RouteType = parseRoute(route)
	f.Features, _ = flags.GetStringSlice(flagFeature)
	f.State, _ = flags.GetString(flagState)
	f.City, _ = flags.GetString(flagCity)

	if flags.Changed(flagMaxMiles) {
		v, _ := flags.GetFloat64(flagMaxMiles)
		f.DistanceCapMiles = &v
	}
	if flags.Changed(flagMinMiles) {
		v, _ := flags.GetFloat64(flagMinMiles)
		f.DistanceMinMiles = &v
	}
	if flags.Changed(flagMaxElevation) {
		v, _ := flags.GetInt(flagMaxElevation)
		f.ElevationCapM = &v
	}
	if flags.Changed(flagDogs) {
		v, _ := flags.GetBool(flagDogs)
		f.DogsAllowed = &v
	}
	if flags.Changed(flagRadius) {
		v, _ := flags.GetFloat64(flagRadius)
		f.RadiusMiles = &v
	}
	if flags.Changed(flagLat) {
		v, _ := flags.GetFloat64(flagLat)
		f.CenterLat = &v
	}
	if flags.Changed(flagLng) {
		v, _ := flags.GetFloat64(flagLng)
		f.CenterLng = &v
	}
	return f
}

// parseDifficulty and parseRoute keep unknown values so sanitization can
// report them
func parseDifficulty(s string) models.Difficulty {
	if d, ok := models.ParseDifficulty(s); ok {
		return d
	}
	return models.Difficulty(s)
}

func parseRoute(s string) models.RouteType {
	if r, ok := models.ParseRouteType(s); ok {
		return r
	}
	return models.RouteType(s)
}

func newBrowseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "browse",
		Short: "List trails easy to hard, optionally within an area",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := open(c, true)
			if err != nil {
				return err
			}
			defer a.Close()

			area, _ := c.Flags().GetString(flagArea)
			limit, _ := c.Flags().GetInt(flagLimit)
			resp, err := a.Service.Browse(c.Context(), models.BrowseFilter{Area: area, Limit: limit})
			if err != nil {
				return err
			}
			return printJSON(c, resp)
		},
	}
	c.Flags().String(flagArea, "", "Name, place or feature to match")
	c.Flags().Int(flagLimit, service.DefaultBrowseLimit, "Maximum trails to list")
	return c
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one trail",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trail id %q", args[0])
			}

			a, err := open(c, true)
			if err != nil {
				return err
			}
			defer a.Close()

			trail, err := a.Service.GetTrail(c.Context(), id)
			if err != nil {
				return fmt.Errorf("show %d: %w", id, err)
			}
			return printJSON(c, trail)
		},
	}
}
