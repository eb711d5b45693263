package search

import "github.com/jengzang/trails-backend-go/internal/models"

func ptr[T any](v T) *T { return &v }

// fixtureTrails is a small catalog spanning every difficulty and route type
func fixtureTrails() []models.Trail {
	return []models.Trail{
		{
			ID: 1, Name: "Lakefront Trail Loop", DistanceKm: 3.2, ElevationGainM: 5,
			Difficulty: models.DifficultyEasy, DogsAllowed: true, RouteType: models.RouteLoop,
			Features: []string{"lake", "boardwalk", "urban"}, Latitude: 41.8819, Longitude: -87.6278,
			Description: "Scenic loop along Lake Michigan with stunning skyline views and boardwalk sections.",
			City:        ptr("Chicago"), County: ptr("Cook County"), State: ptr("Illinois"), Region: ptr("Great Lakes"),
			Amenities: models.Amenities{
				ParkingAvailable: ptr(true), ParkingType: ptr("free"), Restrooms: ptr(true),
				EntryFee: ptr(false), SurfaceType: ptr("paved"), Accessibility: ptr("wheelchair"),
				ManagingAgency: ptr("Chicago Park District"),
			},
		},
		{
			ID: 2, Name: "Starved Rock Waterfall Trail", DistanceKm: 4.8, ElevationGainM: 120,
			Difficulty: models.DifficultyModerate, DogsAllowed: true, RouteType: models.RouteOutAndBack,
			Features: []string{"falls", "canyon", "forest"}, Latitude: 41.3186, Longitude: -88.9951,
			Description: "Beautiful trail leading to cascading waterfalls through wooded canyons.",
			City:        ptr("Oglesby"), County: ptr("LaSalle County"), State: ptr("Illinois"),
			Amenities: models.Amenities{
				ParkingAvailable: ptr(true), ParkingType: ptr("paid"), Restrooms: ptr(true),
				EntryFee: ptr(true), SurfaceType: ptr("dirt"),
				ManagingAgency: ptr("Illinois Department of Natural Resources"),
			},
		},
		{
			ID: 3, Name: "Devil's Lake State Park", DistanceKm: 12.4, ElevationGainM: 380,
			Difficulty: models.DifficultyHard, DogsAllowed: true, RouteType: models.RouteLoop,
			Features: []string{"lake", "bluff", "quartzite"}, Latitude: 43.4221, Longitude: -89.7251,
			Description: "Challenging loop around pristine lake with dramatic quartzite bluffs.",
			City:        ptr("Baraboo"), County: ptr("Sauk County"), State: ptr("Wisconsin"),
			Amenities: models.Amenities{
				ParkingAvailable: ptr(true), ParkingType: ptr("paid"), CampingAvailable: ptr(true),
				EntryFee: ptr(true), SurfaceType: ptr("dirt"), ManagingAgency: ptr("Wisconsin State Parks"),
			},
		},
		{
			ID: 4, Name: "Chicago Riverwalk", DistanceKm: 2.4, ElevationGainM: 0,
			Difficulty: models.DifficultyEasy, DogsAllowed: false, RouteType: models.RouteOutAndBack,
			Features: []string{"urban", "river", "boardwalk"}, Latitude: 41.8887, Longitude: -87.6233,
			Description: "Urban boardwalk along the Chicago River through downtown architecture.",
			City:        ptr("Chicago"), County: ptr("Cook County"), State: ptr("Illinois"), Region: ptr("Great Lakes"),
			Amenities: models.Amenities{
				ParkingType: ptr("paid"), Restrooms: ptr(true), SurfaceType: ptr("boardwalk"),
				ManagingAgency: ptr("City of Chicago"),
			},
		},
		{
			ID: 5, Name: "Palos Forest Preserve", DistanceKm: 8.2, ElevationGainM: 65,
			Difficulty: models.DifficultyModerate, DogsAllowed: true, RouteType: models.RouteLoop,
			Features: []string{"forest", "creek", "hills"}, Latitude: 41.6611, Longitude: -87.8167,
			Description: "Peaceful forest trail with creek crossings and gentle elevation changes.",
			City:        ptr("Palos Hills"), County: ptr("Cook County"), State: ptr("Illinois"), Region: ptr("Chicago Metropolitan"),
			Amenities: models.Amenities{
				ParkingAvailable: ptr(true), ParkingType: ptr("free"), SurfaceType: ptr("dirt"),
				ManagingAgency: ptr("Forest Preserve District of Cook County"),
			},
		},
		{
			ID: 6, Name: "Starved Rock Eagle Cliff", DistanceKm: 11.8, ElevationGainM: 320,
			Difficulty: models.DifficultyHard, DogsAllowed: true, RouteType: models.RouteOutAndBack,
			Features: []string{"bluffs", "forest", "overlook"}, Latitude: 41.3186, Longitude: -88.9951,
			Description: "Extended challenging hike to highest overlook in park.",
			City:        ptr("Oglesby"), County: ptr("LaSalle County"), State: ptr("Illinois"),
		},
		{
			ID: 7, Name: "Morton Arboretum", DistanceKm: 3.8, ElevationGainM: 35,
			Difficulty: models.DifficultyEasy, DogsAllowed: false, RouteType: models.RouteLoop,
			Features: []string{"garden", "forest", "lake"}, Latitude: 41.8167, Longitude: -88.0667,
			Description: "Beautiful arboretum with themed tree collections and lake views.",
			City:        ptr("Lisle"), County: ptr("DuPage County"), State: ptr("Illinois"), Region: ptr("Chicago Metropolitan"),
		},
	}
}

func ids(trails []models.Trail) []int64 {
	out := make([]int64, len(trails))
	for i, t := range trails {
		out[i] = t.ID
	}
	return out
}

func resultIDs(results []models.TrailResult) []int64 {
	out := make([]int64, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}
