// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package scoring

import (
	"fmt"
	"math"

	"github.com/plotwise/plotwise/internal/models"
	"github.com/plotwise/plotwise/internal/registry"
)

// Sub-risk weights for the overall area risk score.
const (
	weightFlood       = 0.25
	weightWater       = 0.20
	weightIllegal     = 0.25
	weightDispute     = 0.20
	weightDevDistance = 0.10
)

// coastalBoostZones get a flood-risk boost on top of the table lookup.
var coastalBoostZones = []string{
	"Port City", "Coastal Town", "Beach Town", "Tourism Island", "Premium Tourism",
}

// aridBoostStates get a water-scarcity boost regardless of zone type.
var aridBoostStates = []string{"Rajasthan", "Ladakh"}

// ScoreAreaRisk evaluates the five area sub-risks for a location and
// combines them into a weighted overall score. Each sub-risk resolves
// city override first, then state default, then a constant; the two
// city-keyed tables (illegal layouts, disputes) synthesize a fallback from
// the infrastructure score instead. Coordinates are accepted for interface
// completeness; the current tables are name-keyed.
func ScoreAreaRisk(reg *registry.Registry, location, state, zoneType string, infraScore int, lat, lon float64) models.AreaRiskReport {
	_ = lat
	_ = lon

	alerts := make([]models.RiskAlert, 0, 5)

	flood := reg.FloodRisk(location, state)
	if contains(coastalBoostZones, zoneType) {
		flood = capScore(flood + 12)
	}
	alerts = append(alerts, floodAlert(flood))

	water := reg.WaterScarcity(location, state)
	if zoneType == "Border Town" || contains(aridBoostStates, state) {
		water = capScore(water + 8)
	}
	alerts = append(alerts, waterAlert(water))

	var illegal int
	if lr, ok := reg.IllegalLayout(location); ok {
		illegal = lr.Score
		alerts = append(alerts, knownLayoutAlert(lr))
	} else {
		illegal = maxInt(15, 50-infraScore/2)
		alerts = append(alerts, unknownLayoutAlert(illegal))
	}

	var dispute int
	if d, ok := reg.Dispute(location); ok {
		dispute = d.Score
		alerts = append(alerts, knownDisputeAlert(d))
	} else {
		dispute = maxInt(10, 40-infraScore/3)
		alerts = append(alerts, unknownDisputeAlert(dispute))
	}

	devDistance := reg.DevDistance(zoneType)
	alerts = append(alerts, devDistanceAlert(devDistance, zoneType))

	overall := float64(flood)*weightFlood +
		float64(water)*weightWater +
		float64(illegal)*weightIllegal +
		float64(dispute)*weightDispute +
		float64(devDistance)*weightDevDistance

	var label string
	switch {
	case overall >= 65:
		label = "High Area Risk"
	case overall >= 45:
		label = "Moderate Area Risk"
	case overall >= 30:
		label = "Low-Moderate Risk"
	default:
		label = "Low Area Risk"
	}

	return models.AreaRiskReport{
		Alerts: alerts,
		Scores: models.AreaRiskScores{
			Flood:         flood,
			WaterScarcity: water,
			IllegalLayout: illegal,
			LandDispute:   dispute,
			DevDistance:   devDistance,
		},
		OverallScore: math.Round(overall*10) / 10,
		OverallLabel: label,
	}
}

func floodAlert(score int) models.RiskAlert {
	switch {
	case score >= 70:
		return models.RiskAlert{
			Type: "flood", Severity: "High", Color: "red",
			Title:          "High Flood Risk Zone",
			Detail:         fmt.Sprintf("This area has a flood risk score of %d/100. Historical flooding reported. Verify if the property is above the flood line and check NDMA flood zone maps and local drainage infrastructure.", score),
			Recommendation: "Obtain a flood-zone clearance certificate. Consider elevated construction. Check insurance availability.",
		}
	case score >= 45:
		return models.RiskAlert{
			Type: "flood", Severity: "Moderate", Color: "orange",
			Title:          "Moderate Flood / Waterlogging Risk",
			Detail:         fmt.Sprintf("Flood risk score: %d/100. Seasonal waterlogging possible during monsoons. Drainage may be inadequate in some pockets.", score),
			Recommendation: "Inspect drainage infrastructure. Check historical monsoon records for the specific locality.",
		}
	default:
		return models.RiskAlert{
			Type: "flood", Severity: "Low", Color: "green",
			Title:          "Low Flood Risk",
			Detail:         fmt.Sprintf("Flood risk score: %d/100. Area has relatively low flood history.", score),
			Recommendation: "Standard precautions sufficient. Verify local nala/drain proximity.",
		}
	}
}

func waterAlert(score int) models.RiskAlert {
	switch {
	case score >= 70:
		return models.RiskAlert{
			Type: "water_scarcity", Severity: "High", Color: "red",
			Title:          "Severe Water Scarcity Zone",
			Detail:         fmt.Sprintf("Water scarcity score: %d/100. Groundwater depletion and irregular municipal supply reported. May need tanker water or a borewell.", score),
			Recommendation: "Check CGWB groundwater level data. Verify municipal water connection. Budget for water storage and an RO system.",
		}
	case score >= 45:
		return models.RiskAlert{
			Type: "water_scarcity", Severity: "Moderate", Color: "orange",
			Title:          "Moderate Water Stress",
			Detail:         fmt.Sprintf("Water scarcity score: %d/100. Seasonal water shortages possible, especially in summer. Groundwater levels declining.", score),
			Recommendation: "Verify water supply hours. Check borewell yield in the area. Rainwater harvesting recommended.",
		}
	default:
		return models.RiskAlert{
			Type: "water_scarcity", Severity: "Low", Color: "green",
			Title:          "Adequate Water Supply",
			Detail:         fmt.Sprintf("Water scarcity score: %d/100. Area generally has adequate water resources.", score),
			Recommendation: "Standard checks sufficient. Verify municipal water connection availability.",
		}
	}
}

func knownLayoutAlert(lr registry.LayoutRisk) models.RiskAlert {
	severity, color := "Moderate", "orange"
	if lr.Score >= 60 {
		severity, color = "High", "red"
	}
	return models.RiskAlert{
		Type: "illegal_layout", Severity: severity, Color: color,
		Title:          fmt.Sprintf("Illegal Layout Risk - %s Reports", lr.ReportedCases),
		Detail:         fmt.Sprintf("Illegal layout risk score: %d/100. %s", lr.Score, lr.Details),
		Recommendation: "Always verify layout approval from the local planning authority (DTCP/DA/HMDA etc.) before purchase. Check RERA registration.",
	}
}

func unknownLayoutAlert(score int) models.RiskAlert {
	return models.RiskAlert{
		Type: "illegal_layout", Severity: "Low", Color: "green",
		Title:          "No Major Illegal Layout Reports",
		Detail:         fmt.Sprintf("No widespread illegal layout issues reported for this specific city (score: %d/100). However, always verify layout approval.", score),
		Recommendation: "Still verify layout/plot approval from the local development authority as standard practice.",
	}
}

func knownDisputeAlert(d registry.DisputeRisk) models.RiskAlert {
	severity := "Moderate"
	color := "orange"
	if d.Score >= 60 {
		severity, color = "High", "red"
	}
	return models.RiskAlert{
		Type: "land_dispute", Severity: severity, Color: color,
		Title:          fmt.Sprintf("Land Dispute History - %s", d.DisputeType),
		Detail:         fmt.Sprintf("Dispute risk score: %d/100. %s", d.Score, d.Details),
		Recommendation: "Conduct a thorough title search (30+ years). Check local court records. Hire a local property lawyer.",
	}
}

func unknownDisputeAlert(score int) models.RiskAlert {
	return models.RiskAlert{
		Type: "land_dispute", Severity: "Low", Color: "green",
		Title:          "No Major Dispute History on Record",
		Detail:         fmt.Sprintf("No widespread land disputes documented for this city (score: %d/100).", score),
		Recommendation: "Standard title verification and EC check is still recommended.",
	}
}

func devDistanceAlert(score int, zoneType string) models.RiskAlert {
	switch {
	case score <= 10:
		return models.RiskAlert{
			Type: "dev_distance", Severity: "Low", Color: "green",
			Title:          "Within or Adjacent to Development Zone",
			Detail:         fmt.Sprintf("Development distance score: %d/100 (lower = closer). This is a core development zone (%s). Major infrastructure, commercial hubs, and employment centres are nearby.", score, zoneType),
			Recommendation: "Prime location. Focus on micro-locality checks (traffic, noise, specific neighbourhood).",
		}
	case score <= 20:
		return models.RiskAlert{
			Type: "dev_distance", Severity: "Low-Moderate", Color: "blue",
			Title:          "Near Development Zone - Growth Corridor",
			Detail:         fmt.Sprintf("Development distance score: %d/100. Located in an expanding development belt (%s). Infrastructure improving.", score, zoneType),
			Recommendation: "Good growth potential. Verify upcoming infrastructure projects (metro, highway, SEZ) in the master plan.",
		}
	case score <= 30:
		return models.RiskAlert{
			Type: "dev_distance", Severity: "Moderate", Color: "orange",
			Title:          "Moderate Distance from Major Development",
			Detail:         fmt.Sprintf("Development distance score: %d/100. Zone type: %s. Not in an immediate development corridor but may benefit from planned expansion.", score, zoneType),
			Recommendation: "Check the city master plan for future zoning. Verify road connectivity and upcoming projects.",
		}
	default:
		return models.RiskAlert{
			Type: "dev_distance", Severity: "High", Color: "red",
			Title:          "Far from Major Development Zones",
			Detail:         fmt.Sprintf("Development distance score: %d/100. Zone type: %s. Area is relatively remote from IT/industrial/commercial hubs. Appreciation may be slower.", score, zoneType),
			Recommendation: "Suitable for specific purposes (tourism, retirement, agriculture). Not ideal for quick investment returns. Verify basic amenities access.",
		}
	}
}

func capScore(v int) int {
	if v > 100 {
		return 100
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
