// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package series

import (
	"math"
	"math/rand"

	"github.com/plotwise/plotwise/internal/models"
	"github.com/plotwise/plotwise/internal/registry"
)

// Config controls series generation.
type Config struct {
	// Seed drives the pseudorandom stream. The same seed reproduces a
	// bit-identical observation table across runs.
	Seed int64

	// StartYear and EndYear bound the generated range, inclusive.
	StartYear int
	EndYear   int
}

// DefaultConfig returns the production generation parameters.
func DefaultConfig() Config {
	return Config{Seed: 42, StartYear: 2018, EndYear: 2026}
}

// Dataset is the in-memory observation table, generated once at startup.
// Rows are ordered by construction: location in registry table order, year
// ascending within a location. Read-only after Generate.
type Dataset struct {
	observations []models.Observation
	byLocation   map[string][]models.Observation
}

// Generate synthesizes the full observation table from the registry's
// location profiles. Generation is pure computation and cannot fail.
//
// Per location and year: the rate compounds the nominal growth from the
// base rate with Gaussian noise (sigma = 2% of base), floored at 80% of the
// base rate. Derived scores jitter around the profile's infrastructure
// score.
func Generate(reg *registry.Registry, cfg Config) *Dataset {
	rng := rand.New(rand.NewSource(cfg.Seed))
	locs := reg.Locations()
	years := cfg.EndYear - cfg.StartYear + 1

	d := &Dataset{
		observations: make([]models.Observation, 0, len(locs)*years),
		byLocation:   make(map[string][]models.Observation, len(locs)),
	}

	for _, loc := range locs {
		for year := cfg.StartYear; year <= cfg.EndYear; year++ {
			elapsed := float64(year - cfg.StartYear)
			noise := rng.NormFloat64() * loc.BaseRate * 0.02
			rate := loc.BaseRate*math.Pow(1+loc.GrowthPct/100, elapsed) + noise
			rate = math.Max(rate, loc.BaseRate*0.8)

			amenities := clampInt(loc.InfraScore+intn(rng, -5, 10), 0, 100)
			transport := clampInt(loc.InfraScore+intn(rng, -8, 8), 0, 100)
			devPotential := clampInt(
				100-loc.InfraScore+int(loc.GrowthPct*3)+intn(rng, -5, 5), 10, 100)

			obs := models.Observation{
				Location:             loc.Name,
				City:                 loc.City,
				State:                loc.State,
				Year:                 year,
				RatePerSqft:          round2(rate),
				AnnualGrowthPct:      round2(loc.GrowthPct + rng.NormFloat64()*0.5),
				Latitude:             loc.Latitude,
				Longitude:            loc.Longitude,
				ZoneType:             loc.ZoneType,
				InfraScore:           loc.InfraScore,
				AmenitiesScore:       amenities,
				TransportScore:       transport,
				DevelopmentPotential: devPotential,
				PopulationGrowthPct:  round2(uniform(rng, 0.5, 3.5)),
				EmploymentIndex:      round1(uniform(rng, 60, 98)),
			}
			d.observations = append(d.observations, obs)
			d.byLocation[loc.Name] = append(d.byLocation[loc.Name], obs)
		}
	}
	return d
}

// All returns every observation in generation order.
func (d *Dataset) All() []models.Observation {
	return d.observations
}

// ForLocation returns a location's observations sorted ascending by year,
// nil for unknown locations.
func (d *Dataset) ForLocation(name string) []models.Observation {
	return d.byLocation[name]
}

// Latest returns a location's most recent observation.
func (d *Dataset) Latest(name string) (models.Observation, bool) {
	obs := d.byLocation[name]
	if len(obs) == 0 {
		return models.Observation{}, false
	}
	return obs[len(obs)-1], true
}

// Earliest returns a location's first observation.
func (d *Dataset) Earliest(name string) (models.Observation, bool) {
	obs := d.byLocation[name]
	if len(obs) == 0 {
		return models.Observation{}, false
	}
	return obs[0], true
}

// intn draws a uniform integer in [lo, hi).
func intn(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

// uniform draws a uniform float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
