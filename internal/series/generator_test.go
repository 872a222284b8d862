// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package series

import (
	"reflect"
	"testing"

	"github.com/plotwise/plotwise/internal/registry"
)

func fixtureRegistry() *registry.Registry {
	return registry.FromTables(registry.Tables{
		Locations: []registry.LocationProfile{
			{Name: "Alpha, Stateville", City: "Alpha", State: "Stateville", BaseRate: 2000, GrowthPct: 8, Latitude: 12.9, Longitude: 77.6, ZoneType: "Tier-2 City", InfraScore: 60},
			{Name: "Beta, Stateville", City: "Beta", State: "Stateville", BaseRate: 5000, GrowthPct: 12, Latitude: 19.1, Longitude: 72.8, ZoneType: "Financial Capital", InfraScore: 90},
		},
	})
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	reg := fixtureRegistry()
	cfg := Config{Seed: 42, StartYear: 2018, EndYear: 2026}

	first := Generate(reg, cfg)
	second := Generate(reg, cfg)

	if !reflect.DeepEqual(first.All(), second.All()) {
		t.Fatal("Expected identical output for identical seed and span")
	}

	// A different seed must produce a different stream
	third := Generate(reg, Config{Seed: 43, StartYear: 2018, EndYear: 2026})
	if reflect.DeepEqual(first.All(), third.All()) {
		t.Fatal("Expected different output for a different seed")
	}
}

func TestGenerate_ShapeAndOrdering(t *testing.T) {
	t.Parallel()
	reg := fixtureRegistry()
	cfg := Config{Seed: 42, StartYear: 2018, EndYear: 2026}

	d := Generate(reg, cfg)

	wantRows := 2 * 9
	if got := len(d.All()); got != wantRows {
		t.Fatalf("len(All()) = %d, want %d", got, wantRows)
	}

	// Location in registry order, year ascending within a location
	all := d.All()
	if all[0].Location != "Alpha, Stateville" || all[9].Location != "Beta, Stateville" {
		t.Errorf("rows not in registry order: got %q then %q", all[0].Location, all[9].Location)
	}
	for i := 0; i < 9; i++ {
		if all[i].Year != 2018+i {
			t.Errorf("row %d year = %d, want %d", i, all[i].Year, 2018+i)
		}
	}
}

func TestGenerate_Bounds(t *testing.T) {
	t.Parallel()
	reg := fixtureRegistry()
	d := Generate(reg, Config{Seed: 42, StartYear: 2018, EndYear: 2026})

	for _, obs := range d.All() {
		profile, ok := reg.Location(obs.Location)
		if !ok {
			t.Fatalf("observation for unknown location %q", obs.Location)
		}

		if obs.RatePerSqft < profile.BaseRate*0.8 {
			t.Errorf("%s %d: rate %v below floor %v", obs.Location, obs.Year, obs.RatePerSqft, profile.BaseRate*0.8)
		}
		if obs.AmenitiesScore < 0 || obs.AmenitiesScore > 100 {
			t.Errorf("%s %d: amenities score %d out of range", obs.Location, obs.Year, obs.AmenitiesScore)
		}
		if obs.TransportScore < 0 || obs.TransportScore > 100 {
			t.Errorf("%s %d: transport score %d out of range", obs.Location, obs.Year, obs.TransportScore)
		}
		if obs.DevelopmentPotential < 10 || obs.DevelopmentPotential > 100 {
			t.Errorf("%s %d: development potential %d out of range", obs.Location, obs.Year, obs.DevelopmentPotential)
		}
		if obs.PopulationGrowthPct < 0.5 || obs.PopulationGrowthPct > 3.5 {
			t.Errorf("%s %d: population growth %v out of range", obs.Location, obs.Year, obs.PopulationGrowthPct)
		}
		if obs.EmploymentIndex < 60 || obs.EmploymentIndex > 98 {
			t.Errorf("%s %d: employment index %v out of range", obs.Location, obs.Year, obs.EmploymentIndex)
		}
	}
}

func TestDataset_Accessors(t *testing.T) {
	t.Parallel()
	reg := fixtureRegistry()
	d := Generate(reg, Config{Seed: 42, StartYear: 2018, EndYear: 2026})

	history := d.ForLocation("Alpha, Stateville")
	if len(history) != 9 {
		t.Fatalf("ForLocation returned %d rows, want 9", len(history))
	}

	earliest, ok := d.Earliest("Alpha, Stateville")
	if !ok || earliest.Year != 2018 {
		t.Errorf("Earliest = year %d ok=%v, want 2018 true", earliest.Year, ok)
	}
	latest, ok := d.Latest("Alpha, Stateville")
	if !ok || latest.Year != 2026 {
		t.Errorf("Latest = year %d ok=%v, want 2026 true", latest.Year, ok)
	}

	if got := d.ForLocation("Missing, Nowhere"); got != nil {
		t.Errorf("ForLocation(unknown) = %v, want nil", got)
	}
	if _, ok := d.Latest("Missing, Nowhere"); ok {
		t.Error("Latest(unknown) should report false")
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	if cfg.Seed != 42 || cfg.StartYear != 2018 || cfg.EndYear != 2026 {
		t.Errorf("DefaultConfig() = %+v, want seed 42, span 2018-2026", cfg)
	}
}
