// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package scoring

import (
	"fmt"

	"github.com/plotwise/plotwise/internal/models"
	"github.com/plotwise/plotwise/internal/registry"
)

// Legal risk scoring constants. The score starts from a base and
// accumulates additive adjustments, clamped to [10, 95].
const (
	legalBaseScore = 30
	legalMinScore  = 10
	legalMaxScore  = 95
)

// Zone-type buckets for the legal score adjustment. Speculative and
// frontier archetypes add risk; established, well-regulated ones reduce it.
var (
	highRiskZones = []string{
		"New Capital", "Emerging Market", "Expressway Corridor", "Airport Zone",
		"Religious/Emerging", "Border Town", "Growth Corridor",
	}
	mediumRiskZones = []string{
		"Tier-3 Town", "Mining City", "Industrial Town", "Tourism Island",
		"Beach Town", "Coastal Town", "Satellite Town",
	}
	lowRiskZones = []string{
		"Planned City", "Smart City/SEZ", "Financial Capital", "National Capital",
		"IT Capital", "Premium Residential", "State Capital",
	}
)

// ScoreLegalRisk builds the legal risk profile for a state and zone type.
// When location is non-empty, city-level coastal-zone and tribal-restriction
// overrides are resolved before scoring; state defaults alone would
// misclassify many cities (inland cities of coastal states, non-tribal
// metros of states with tribal belts). Unknown states resolve to the
// registry's fallback profile.
func ScoreLegalRisk(reg *registry.Registry, state, zoneType, location string) models.LegalRiskProfile {
	law := reg.StateLaw(state)

	// Overrides first: the rest of the scoring reads the resolved copy.
	law.CoastalZone = reg.CoastalZone(location, state)
	law.TribalRestriction = reg.TribalRestriction(location, state)

	score := legalBaseScore
	if !law.RERAActive {
		score += 12
	}
	if !law.NRIAllowed {
		score += 8
	}
	if law.TribalRestriction {
		score += 10
	}
	if law.CoastalZone {
		score += 5
	}
	switch law.AgriConversionEase {
	case "Difficult":
		score += 12
	case "Moderate":
		score += 6
	}
	if law.StampDutyPct >= 7 {
		score += 5
	}
	if !law.LandCeilingAct {
		score += 3 // less regulation means less certainty, not less risk
	}

	switch {
	case contains(highRiskZones, zoneType):
		score += 10
	case contains(mediumRiskZones, zoneType):
		score += 5
	case contains(lowRiskZones, zoneType):
		score -= 8
	}

	if score < legalMinScore {
		score = legalMinScore
	}
	if score > legalMaxScore {
		score = legalMaxScore
	}

	var level, color string
	switch {
	case score >= 70:
		level, color = "High Risk", "red"
	case score >= 50:
		level, color = "Medium-High Risk", "orange"
	case score >= 35:
		level, color = "Moderate Risk", "yellow"
	default:
		level, color = "Low Risk", "green"
	}

	return models.LegalRiskProfile{
		RiskScore:       score,
		RiskLevel:       level,
		RiskColor:       color,
		StateLaw:        law,
		Warnings:        legalWarnings(law),
		Recommendations: legalRecommendations(law),
		Documents:       requiredDocuments,
		CommonRisks:     reg.Checklist(),
		TotalDutyPct:    round2(law.StampDutyPct + law.RegistrationPct),
	}
}

func legalWarnings(law registry.StateLawProfile) []string {
	var warnings []string
	if law.TribalRestriction {
		warnings = append(warnings, "Tribal land transfer restrictions apply in scheduled/tribal areas of this state.")
	}
	if !law.NRIAllowed {
		warnings = append(warnings, "Non-residents / outsiders cannot purchase land in this state/UT.")
	}
	if law.CoastalZone {
		warnings = append(warnings, "CRZ (Coastal Regulation Zone) norms may restrict construction near the coast.")
	}
	if law.AgriConversionEase == "Difficult" {
		warnings = append(warnings, "Agricultural land conversion is difficult; ensure NA conversion before purchase.")
	}
	if !law.RERAActive {
		warnings = append(warnings, "RERA may not be fully active in this state/UT; extra buyer caution needed.")
	}
	return warnings
}

func legalRecommendations(law registry.StateLawProfile) []string {
	recs := []string{
		"Get title verified by a property lawyer (minimum 30-year chain)",
		"Obtain latest Encumbrance Certificate (EC) from the Sub-Registrar's office",
		fmt.Sprintf("Pay correct stamp duty (%.1f%%) + registration (%.1f%%) charges", law.StampDutyPct, law.RegistrationPct),
		"Verify mutation / khata records match the seller's name",
		"Check RERA registration for under-construction projects",
		"Physically inspect the land and verify boundary measurements",
		"Search for pending litigation on the property in local courts",
		"Confirm the property is bank-loan approved (major banks)",
	}
	if law.TribalRestriction {
		recs = append(recs, "Verify the land is not in a Scheduled/Tribal area before purchase")
	}
	if law.CoastalZone {
		recs = append(recs, "Check the CRZ classification of the plot with the local authority")
	}
	return recs
}

// requiredDocuments is the standard document checklist returned with every
// legal risk profile.
var requiredDocuments = []string{
	"Sale Deed / Title Deed",
	"Encumbrance Certificate (last 30 years)",
	"Property Tax Receipts (current)",
	"Khata / Mutation Extract",
	"Sanctioned Building Plan (if applicable)",
	"Occupancy Certificate / Completion Certificate",
	"RERA Registration Certificate (new projects)",
	"NOC from Land Revenue / Tehsildar",
	"Land Use / Zoning Certificate",
	"Conversion Order (NA) - if agricultural origin",
	"Survey / Measurement Map from licensed surveyor",
	"Identity proof & PAN of seller",
	"Society NOC (for resale flats)",
	"Electricity & Water Bill (possession proof)",
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
