package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jengzang/trails-backend-go/internal/database"
	"github.com/jengzang/trails-backend-go/internal/models"
)

// ErrTrailNotFound is returned when no trail has the requested id
var ErrTrailNotFound = errors.New("trail not found")

const trailColumns = `id, name, distance_km, elevation_gain_m, difficulty, dogs_allowed, route_type,
	features, latitude, longitude, description, city, county, state, region, country,
	parking_available, parking_type, restrooms, water_available, picnic_areas, camping_available,
	entry_fee, permit_required, seasonal_access, accessibility, surface_type, trail_markers,
	loop_trail, managing_agency, website_url, phone_number`

// TrailRepository handles database operations for trails
type TrailRepository struct {
	db *sql.DB
}

// NewTrailRepository creates a new trail repository
func NewTrailRepository(db *sql.DB) *TrailRepository {
	return &TrailRepository{db: db}
}

// ListTrails returns every trail ordered by id
func (r *TrailRepository) ListTrails(ctx context.Context) ([]models.Trail, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+trailColumns+" FROM trails ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query trails: %w", err)
	}
	defer rows.Close()

	var trails []models.Trail
	for rows.Next() {
		t, err := scanTrail(rows)
		if err != nil {
			return nil, err
		}
		trails = append(trails, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trails: %w", err)
	}

	return trails, nil
}

// GetTrailByID retrieves a single trail
func (r *TrailRepository) GetTrailByID(ctx context.Context, id int64) (*models.Trail, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+trailColumns+" FROM trails WHERE id = ?", id)
	t, err := scanTrail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrailNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Count returns the number of stored trails
func (r *TrailRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trails").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count trails: %w", err)
	}
	return n, nil
}

// ReplaceAll swaps the stored catalog for trails in one transaction
func (r *TrailRepository) ReplaceAll(ctx context.Context, trails []models.Trail) error {
	return database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM trails"); err != nil {
			return fmt.Errorf("failed to clear trails: %w", err)
		}

		placeholders := strings.TrimSuffix(strings.Repeat("?, ", 32), ", ")
		stmt, err := tx.PrepareContext(ctx, "INSERT INTO trails ("+trailColumns+") VALUES ("+placeholders+")")
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i := range trails {
			t := &trails[i]
			_, err := stmt.ExecContext(ctx,
				t.ID, t.Name, t.DistanceKm, t.ElevationGainM, string(t.Difficulty), t.DogsAllowed, string(t.RouteType),
				t.FeatureText(), t.Latitude, t.Longitude, t.Description,
				t.City, t.County, t.State, t.Region, t.Country,
				t.ParkingAvailable, t.ParkingType, t.Restrooms, t.WaterAvailable, t.PicnicAreas, t.CampingAvailable,
				t.EntryFee, t.PermitRequired, t.SeasonalAccess, t.Accessibility, t.SurfaceType, t.TrailMarkers,
				t.LoopTrail, t.ManagingAgency, t.WebsiteURL, t.PhoneNumber,
			)
			if err != nil {
				return fmt.Errorf("failed to insert trail %d: %w", t.ID, err)
			}
		}
		return nil
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrail(s scanner) (*models.Trail, error) {
	var (
		t                                      models.Trail
		difficulty, routeType, features        string
		city, county, state, region, country   sql.NullString
		parkingType, seasonal, access, surface sql.NullString
		agency, website, phone                 sql.NullString
		parking, restrooms, water, picnic      sql.NullBool
		camping, fee, permit, markers, loop    sql.NullBool
	)

	err := s.Scan(
		&t.ID, &t.Name, &t.DistanceKm, &t.ElevationGainM, &difficulty, &t.DogsAllowed, &routeType,
		&features, &t.Latitude, &t.Longitude, &t.Description,
		&city, &county, &state, &region, &country,
		&parking, &parkingType, &restrooms, &water, &picnic, &camping,
		&fee, &permit, &seasonal, &access, &surface, &markers,
		&loop, &agency, &website, &phone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan trail: %w", err)
	}

	t.Difficulty = models.Difficulty(difficulty)
	t.RouteType = models.RouteType(routeType)
	t.Features = splitFeatures(features)

	t.City, t.County, t.State, t.Region, t.Country = str(city), str(county), str(state), str(region), str(country)

	t.ParkingAvailable = boolean(parking)
	t.ParkingType = str(parkingType)
	t.Restrooms = boolean(restrooms)
	t.WaterAvailable = boolean(water)
	t.PicnicAreas = boolean(picnic)
	t.CampingAvailable = boolean(camping)
	t.EntryFee = boolean(fee)
	t.PermitRequired = boolean(permit)
	t.SeasonalAccess = str(seasonal)
	t.Accessibility = str(access)
	t.SurfaceType = str(surface)
	t.TrailMarkers = boolean(markers)
	t.LoopTrail = boolean(loop)
	t.ManagingAgency = str(agency)
	t.WebsiteURL = str(website)
	t.PhoneNumber = str(phone)

	return &t, nil
}

// splitFeatures parses the stored comma-separated tag list
func splitFeatures(csv string) []string {
	var out []string
	for _, f := range strings.Split(csv, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func str(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func boolean(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	return &v.Bool
}
