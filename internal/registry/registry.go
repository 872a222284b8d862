// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package registry

import (
	"sort"

	"github.com/plotwise/plotwise/internal/logging"
)

// LocationProfile is the immutable generative record for one location.
// Observations are synthesized from these parameters; nothing mutates a
// profile after process start.
type LocationProfile struct {
	Name       string  `json:"name"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	BaseRate   float64 `json:"base_rate"`
	GrowthPct  float64 `json:"growth_pct"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	ZoneType   string  `json:"zone_type"`
	InfraScore int     `json:"infra_score"`
}

// ZoneFactor describes the economic character of a zone archetype.
type ZoneFactor struct {
	Description      string   `json:"description"`
	GrowthMultiplier float64  `json:"growth_multiplier"`
	RiskLevel        string   `json:"risk_level"`
	KeyDrivers       []string `json:"key_drivers"`
	Forecast         string   `json:"forecast"`
}

// StateLawProfile captures land-law attributes for one state or UT.
type StateLawProfile struct {
	RERAActive         bool    `json:"rera_active"`
	LandCeilingAct     bool    `json:"land_ceiling_act"`
	AgriConversionEase string  `json:"agri_conversion_ease"`
	StampDutyPct       float64 `json:"stamp_duty_pct"`
	RegistrationPct    float64 `json:"registration_pct"`
	NRIAllowed         bool    `json:"nri_allowed"`
	TribalRestriction  bool    `json:"tribal_restriction"`
	CoastalZone        bool    `json:"coastal_zone"`
	SpecialNotes       string  `json:"special_notes"`
}

// LayoutRisk records documented unauthorized-layout activity for a city.
type LayoutRisk struct {
	Score         int    `json:"score"`
	Details       string `json:"details"`
	ReportedCases string `json:"reported_cases"`
}

// DisputeRisk records documented land-dispute history for a city.
type DisputeRisk struct {
	Score       int    `json:"score"`
	Details     string `json:"details"`
	DisputeType string `json:"dispute_type"`
}

// LegalRiskItem is one entry in the common due-diligence catalogue.
type LegalRiskItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// RiskCategory groups related LegalRiskItems.
type RiskCategory struct {
	Category string          `json:"category"`
	Risks    []LegalRiskItem `json:"risks"`
}

// Numeric fallbacks used when neither a city nor a state entry exists.
const (
	DefaultFloodRisk     = 30
	DefaultWaterScarcity = 40
	DefaultDevDistance   = 30
)

// fallbackState is the law profile used for unrecognized states. The lookup
// deliberately never fails; the substitution is logged so misconfigured
// callers are visible.
const fallbackState = "Delhi"

// fallbackZone backs development-outlook scoring for unknown zone types.
const fallbackZone = "Tier-2 City"

// Tables bundles every static lookup the registry serves. Production code
// uses the embedded tables via New; tests may construct small fixtures.
type Tables struct {
	Locations       []LocationProfile
	Zones           map[string]ZoneFactor
	StateLaws       map[string]StateLawProfile
	CoastalOverride map[string]bool
	TribalOverride  map[string]bool
	FloodByState    map[string]int
	WaterByState    map[string]int
	FloodByCity     map[string]int
	WaterByCity     map[string]int
	IllegalLayouts  map[string]LayoutRisk
	Disputes        map[string]DisputeRisk
	ZoneDevDistance map[string]int
	Checklist       []RiskCategory
}

// Registry is the read-only view over the static reference tables. It is
// loaded once at startup and safe for concurrent reads without locking.
type Registry struct {
	tables  Tables
	byName  map[string]LocationProfile
	states  []string
	byState map[string][]string
}

// New builds a Registry from the embedded production tables.
func New() *Registry {
	return FromTables(Tables{
		Locations:       locationProfiles,
		Zones:           zoneFactors,
		StateLaws:       stateLandLaws,
		CoastalOverride: cityCoastalOverride,
		TribalOverride:  cityTribalOverride,
		FloodByState:    floodRiskByState,
		WaterByState:    waterScarcityByState,
		FloodByCity:     floodRiskCityOverride,
		WaterByCity:     waterScarcityCityOverride,
		IllegalLayouts:  illegalLayoutRisk,
		Disputes:        landDisputeHistory,
		ZoneDevDistance: zoneDevDistance,
		Checklist:       commonLegalRisks,
	})
}

// FromTables builds a Registry from caller-supplied tables. Intended for
// tests that need small fixture data.
func FromTables(t Tables) *Registry {
	r := &Registry{
		tables:  t,
		byName:  make(map[string]LocationProfile, len(t.Locations)),
		byState: make(map[string][]string),
	}
	for _, loc := range t.Locations {
		r.byName[loc.Name] = loc
		r.byState[loc.State] = append(r.byState[loc.State], loc.City)
	}
	for state, cities := range r.byState {
		sort.Strings(cities)
		r.states = append(r.states, state)
	}
	sort.Strings(r.states)
	return r
}

// Locations returns all location profiles in table order.
func (r *Registry) Locations() []LocationProfile {
	return r.tables.Locations
}

// Location looks up a profile by its full "City, State" name.
func (r *Registry) Location(name string) (LocationProfile, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// States returns the sorted list of states and UTs with at least one location.
func (r *Registry) States() []string {
	return r.states
}

// CitiesInState returns the sorted city names for a state, nil if unknown.
func (r *Registry) CitiesInState(state string) []string {
	return r.byState[state]
}

// Zone returns the factor for a zone type, falling back to the Tier-2 City
// archetype for unknown types.
func (r *Registry) Zone(zoneType string) ZoneFactor {
	if f, ok := r.tables.Zones[zoneType]; ok {
		return f
	}
	logging.Warn().Str("zone_type", zoneType).Str("fallback", fallbackZone).
		Msg("Unknown zone type, using fallback factor")
	return r.tables.Zones[fallbackZone]
}

// ZoneExists reports whether a zone type is in the table.
func (r *Registry) ZoneExists(zoneType string) bool {
	_, ok := r.tables.Zones[zoneType]
	return ok
}

// StateLaw returns the law profile for a state. Unrecognized states resolve
// to the Delhi profile rather than failing; the substitution is logged.
func (r *Registry) StateLaw(state string) StateLawProfile {
	if law, ok := r.tables.StateLaws[state]; ok {
		return law
	}
	logging.Warn().Str("state", state).Str("fallback", fallbackState).
		Msg("Unknown state, using fallback law profile")
	return r.tables.StateLaws[fallbackState]
}

// CoastalZone resolves the coastal-zone flag for a location: the city
// override wins over the state default.
func (r *Registry) CoastalZone(location, state string) bool {
	return resolveBool(location, r.tables.CoastalOverride, r.StateLaw(state).CoastalZone)
}

// TribalRestriction resolves the tribal-restriction flag for a location.
func (r *Registry) TribalRestriction(location, state string) bool {
	return resolveBool(location, r.tables.TribalOverride, r.StateLaw(state).TribalRestriction)
}

// FloodRisk resolves the flood risk score: city override, then state
// default, then DefaultFloodRisk.
func (r *Registry) FloodRisk(location, state string) int {
	return resolveScore(location, state, r.tables.FloodByCity, r.tables.FloodByState, DefaultFloodRisk)
}

// WaterScarcity resolves the water-scarcity score: city override, then
// state default, then DefaultWaterScarcity.
func (r *Registry) WaterScarcity(location, state string) int {
	return resolveScore(location, state, r.tables.WaterByCity, r.tables.WaterByState, DefaultWaterScarcity)
}

// IllegalLayout returns the documented layout risk for a city, if any.
// City-keyed only: there is no state-level default for this table.
func (r *Registry) IllegalLayout(location string) (LayoutRisk, bool) {
	lr, ok := r.tables.IllegalLayouts[location]
	return lr, ok
}

// Dispute returns the documented land-dispute history for a city, if any.
func (r *Registry) Dispute(location string) (DisputeRisk, bool) {
	d, ok := r.tables.Disputes[location]
	return d, ok
}

// DevDistance returns the development-distance score for a zone type,
// DefaultDevDistance if the zone is unlisted.
func (r *Registry) DevDistance(zoneType string) int {
	if d, ok := r.tables.ZoneDevDistance[zoneType]; ok {
		return d
	}
	return DefaultDevDistance
}

// Checklist returns the common legal-risk catalogue.
func (r *Registry) Checklist() []RiskCategory {
	return r.tables.Checklist
}

// resolveScore is the uniform two-tier numeric lookup: location override,
// then state default, then constant. Every area-risk sub-score that has a
// state tier goes through here so the precedence chain exists once.
func resolveScore(location, state string, byCity, byState map[string]int, def int) int {
	if v, ok := byCity[location]; ok {
		return v
	}
	if v, ok := byState[state]; ok {
		return v
	}
	return def
}

// resolveBool is the boolean counterpart of resolveScore for the two legal
// override fields (coastal zone, tribal restriction).
func resolveBool(location string, byCity map[string]bool, stateDefault bool) bool {
	if v, ok := byCity[location]; ok {
		return v
	}
	return stateDefault
}
