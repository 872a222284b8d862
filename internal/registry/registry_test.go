// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package registry

import (
	"reflect"
	"testing"
)

func fixtureRegistry() *Registry {
	return FromTables(Tables{
		Locations: []LocationProfile{
			{Name: "Alpha, Stateville", City: "Alpha", State: "Stateville", BaseRate: 2000, GrowthPct: 8, ZoneType: "Tier-2 City", InfraScore: 60},
			{Name: "Beta, Stateville", City: "Beta", State: "Stateville", BaseRate: 3000, GrowthPct: 10, ZoneType: "Port City", InfraScore: 70},
			{Name: "Gamma, Otherland", City: "Gamma", State: "Otherland", BaseRate: 1500, GrowthPct: 6, ZoneType: "Tier-3 Town", InfraScore: 50},
		},
		Zones: map[string]ZoneFactor{
			"Tier-2 City": {GrowthMultiplier: 1.0, RiskLevel: "Medium"},
			"Port City":   {GrowthMultiplier: 1.2, RiskLevel: "Medium"},
		},
		StateLaws: map[string]StateLawProfile{
			"Delhi":      {RERAActive: true, NRIAllowed: true, StampDutyPct: 6, RegistrationPct: 1},
			"Stateville": {RERAActive: true, NRIAllowed: true, CoastalZone: true, StampDutyPct: 5, RegistrationPct: 1},
		},
		CoastalOverride: map[string]bool{"Alpha, Stateville": false},
		TribalOverride:  map[string]bool{"Gamma, Otherland": true},
		FloodByState:    map[string]int{"Stateville": 70},
		WaterByState:    map[string]int{"Stateville": 55},
		FloodByCity:     map[string]int{"Beta, Stateville": 90},
		WaterByCity:     map[string]int{},
		IllegalLayouts:  map[string]LayoutRisk{"Alpha, Stateville": {Score: 65, ReportedCases: "1000+"}},
		Disputes:        map[string]DisputeRisk{},
		ZoneDevDistance: map[string]int{"Port City": 20},
	})
}

func TestRegistry_StatesAndCities(t *testing.T) {
	t.Parallel()
	r := fixtureRegistry()

	if got := r.States(); !reflect.DeepEqual(got, []string{"Otherland", "Stateville"}) {
		t.Errorf("States() = %v, want sorted [Otherland Stateville]", got)
	}
	if got := r.CitiesInState("Stateville"); !reflect.DeepEqual(got, []string{"Alpha", "Beta"}) {
		t.Errorf("CitiesInState(Stateville) = %v, want [Alpha Beta]", got)
	}
	if got := r.CitiesInState("Nowhere"); got != nil {
		t.Errorf("CitiesInState(Nowhere) = %v, want nil", got)
	}
}

func TestRegistry_LocationLookup(t *testing.T) {
	t.Parallel()
	r := fixtureRegistry()

	if _, ok := r.Location("Alpha, Stateville"); !ok {
		t.Error("Expected to find Alpha, Stateville")
	}
	if _, ok := r.Location("Missing, Nowhere"); ok {
		t.Error("Expected lookup of unknown location to fail")
	}
}

func TestRegistry_ZoneFallback(t *testing.T) {
	t.Parallel()
	r := fixtureRegistry()

	if got := r.Zone("Port City").GrowthMultiplier; got != 1.2 {
		t.Errorf("Zone(Port City).GrowthMultiplier = %v, want 1.2", got)
	}

	// Unknown zones resolve to the Tier-2 City archetype
	if got := r.Zone("Unmapped Zone").GrowthMultiplier; got != 1.0 {
		t.Errorf("Zone(unknown).GrowthMultiplier = %v, want fallback 1.0", got)
	}
	if r.ZoneExists("Unmapped Zone") {
		t.Error("ZoneExists should be false for unknown zone")
	}
}

func TestRegistry_StateLawFallback(t *testing.T) {
	t.Parallel()
	r := fixtureRegistry()

	if got := r.StateLaw("Stateville").StampDutyPct; got != 5 {
		t.Errorf("StateLaw(Stateville).StampDutyPct = %v, want 5", got)
	}

	// Unknown states resolve to the Delhi profile
	if got := r.StateLaw("Atlantis").StampDutyPct; got != 6 {
		t.Errorf("StateLaw(unknown).StampDutyPct = %v, want Delhi's 6", got)
	}
}

func TestRegistry_TwoTierResolution(t *testing.T) {
	t.Parallel()
	r := fixtureRegistry()

	tests := []struct {
		name     string
		got      int
		want     int
	}{
		{"city override wins", r.FloodRisk("Beta, Stateville", "Stateville"), 90},
		{"state default when no city entry", r.FloodRisk("Alpha, Stateville", "Stateville"), 70},
		{"constant when neither", r.FloodRisk("Gamma, Otherland", "Otherland"), DefaultFloodRisk},
		{"water state default", r.WaterScarcity("Alpha, Stateville", "Stateville"), 55},
		{"water constant", r.WaterScarcity("Gamma, Otherland", "Otherland"), DefaultWaterScarcity},
		{"dev distance from table", r.DevDistance("Port City"), 20},
		{"dev distance default", r.DevDistance("Unmapped Zone"), DefaultDevDistance},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestRegistry_BoolOverrides(t *testing.T) {
	t.Parallel()
	r := fixtureRegistry()

	// Stateville is a coastal state, but Alpha carries an inland override
	if r.CoastalZone("Alpha, Stateville", "Stateville") {
		t.Error("Expected Alpha's city override to beat the coastal state default")
	}
	// Beta has no override: state default applies
	if !r.CoastalZone("Beta, Stateville", "Stateville") {
		t.Error("Expected Beta to inherit the coastal state default")
	}
	if !r.TribalRestriction("Gamma, Otherland", "Otherland") {
		t.Error("Expected Gamma's tribal override to apply")
	}
}

func TestRegistry_ProductionTables(t *testing.T) {
	t.Parallel()
	r := New()

	if got := len(r.Locations()); got != 243 {
		t.Errorf("len(Locations()) = %d, want 243", got)
	}
	if got := len(r.States()); got == 0 {
		t.Error("Expected production registry to have states")
	}

	// Every location's zone type must exist in the zone table so scoring
	// never silently falls back for shipped data.
	for _, loc := range r.Locations() {
		if !r.ZoneExists(loc.ZoneType) {
			t.Errorf("location %q references unknown zone type %q", loc.Name, loc.ZoneType)
		}
		if loc.BaseRate <= 0 {
			t.Errorf("location %q has non-positive base rate %v", loc.Name, loc.BaseRate)
		}
	}

	// The fallback profiles themselves must exist.
	if !r.ZoneExists("Tier-2 City") {
		t.Error("Tier-2 City fallback zone missing from production tables")
	}
	if _, ok := r.tables.StateLaws["Delhi"]; !ok {
		t.Error("Delhi fallback law profile missing from production tables")
	}
}
