// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package models

import "github.com/plotwise/plotwise/internal/registry"

// Observation is one synthesized row: a location's land rate and derived
// scores for a single year. Rates are INR per square foot.
type Observation struct {
	Location             string  `json:"location"`
	City                 string  `json:"city"`
	State                string  `json:"state"`
	Year                 int     `json:"year"`
	RatePerSqft          float64 `json:"rate_per_sqft"`
	AnnualGrowthPct      float64 `json:"annual_growth_pct"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	ZoneType             string  `json:"zone_type"`
	InfraScore           int     `json:"infrastructure_score"`
	AmenitiesScore       int     `json:"amenities_score"`
	TransportScore       int     `json:"transport_score"`
	DevelopmentPotential int     `json:"development_potential"`
	PopulationGrowthPct  float64 `json:"population_growth_pct"`
	EmploymentIndex      float64 `json:"employment_index"`
}

// RatePoint is a (year, rate) sample from the historical series.
type RatePoint struct {
	Year int     `json:"year"`
	Rate float64 `json:"rate"`
}

// ForecastStep is one extrapolated year with its confidence band.
type ForecastStep struct {
	Year          int     `json:"year"`
	PredictedRate float64 `json:"predicted_rate"`
	LowerBound    float64 `json:"lower_bound"`
	UpperBound    float64 `json:"upper_bound"`
	Confidence    float64 `json:"confidence"`
}

// Forecast is the result of fitting and extrapolating one location's series.
// ModelR2 is the in-sample fit quality; it is a confidence baseline, not a
// validated measure of predictive accuracy.
type Forecast struct {
	Location    string         `json:"location"`
	ModelR2     float64        `json:"model_r2"`
	CurrentRate float64        `json:"current_rate"`
	Steps       []ForecastStep `json:"predictions"`
	Historical  []RatePoint    `json:"historical"`
}

// ROIYear is one projected year of an investment.
type ROIYear struct {
	Year             int     `json:"year"`
	ProjectedValue   float64 `json:"projected_value"`
	Profit           float64 `json:"profit"`
	ROIPct           float64 `json:"roi_pct"`
	AnnualizedROIPct float64 `json:"annualized_roi_pct"`
	RatePerSqft      float64 `json:"rate_per_sqft"`
}

// ROIProjection models a lump investment as a proportional stake: AreaSqft
// may be fractional.
type ROIProjection struct {
	Location    string    `json:"location"`
	Investment  float64   `json:"investment"`
	AreaSqft    float64   `json:"area_sqft"`
	CurrentRate float64   `json:"current_rate"`
	Years       []ROIYear `json:"projections"`
}

// DevelopmentScore is the development-outlook result for a location.
type DevelopmentScore struct {
	Location             string   `json:"location"`
	ZoneType             string   `json:"zone_type"`
	Description          string   `json:"description"`
	GrowthMultiplier     float64  `json:"growth_multiplier"`
	RiskLevel            string   `json:"risk_level"`
	KeyDrivers           []string `json:"key_drivers"`
	Forecast             string   `json:"forecast"`
	InfraScore           int      `json:"infrastructure_score"`
	DevelopmentPotential int      `json:"development_potential"`
	OverallScore         float64  `json:"overall_score"`
	Outlook              string   `json:"outlook"`
	CurrentRate          float64  `json:"current_rate"`
	GrowthRate           float64  `json:"growth_rate"`
}

// LegalRiskProfile is the full legal-risk result: the score plus the
// resolved state law (city overrides applied), warnings, recommendations,
// document checklist and the common risk catalogue.
type LegalRiskProfile struct {
	RiskScore       int                     `json:"risk_score"`
	RiskLevel       string                  `json:"risk_level"`
	RiskColor       string                  `json:"risk_color"`
	StateLaw        registry.StateLawProfile `json:"state_law"`
	Warnings        []string                `json:"warnings"`
	Recommendations []string                `json:"recommendations"`
	Documents       []string                `json:"documents"`
	CommonRisks     []registry.RiskCategory `json:"common_risks"`
	TotalDutyPct    float64                 `json:"total_duty_pct"`
}

// RiskAlert is one human-readable area-risk finding. Detail and
// Recommendation embed the numeric score and zone type.
type RiskAlert struct {
	Type           string `json:"type"`
	Severity       string `json:"severity"`
	Color          string `json:"color"`
	Title          string `json:"title"`
	Detail         string `json:"detail"`
	Recommendation string `json:"recommendation"`
}

// AreaRiskScores holds the five sub-risk scores, each 0-100.
type AreaRiskScores struct {
	Flood         int `json:"flood"`
	WaterScarcity int `json:"water_scarcity"`
	IllegalLayout int `json:"illegal_layout"`
	LandDispute   int `json:"land_dispute"`
	DevDistance   int `json:"dev_distance"`
}

// AreaRiskReport is the combined environmental/legal-adjacent risk result.
type AreaRiskReport struct {
	Alerts       []RiskAlert    `json:"alerts"`
	Scores       AreaRiskScores `json:"risk_scores"`
	OverallScore float64        `json:"overall_score"`
	OverallLabel string         `json:"overall_label"`
}

// ComparisonRow is one location's summary in a side-by-side comparison.
// Predicted5YrRate is nil when the location has too little history to
// forecast.
type ComparisonRow struct {
	Location         string   `json:"location"`
	CurrentRate      float64  `json:"current_rate"`
	CAGRPct          float64  `json:"cagr_pct"`
	TotalGrowthPct   float64  `json:"total_growth_pct"`
	ZoneType         string   `json:"zone_type"`
	InfraScore       int      `json:"infra_score"`
	DevPotential     int      `json:"dev_potential"`
	Risk             string   `json:"risk"`
	Predicted5YrRate *float64 `json:"predicted_5yr_rate,omitempty"`
	GrowthMultiplier float64  `json:"growth_multiplier"`
}

// LocationInsights summarizes one location's historical series.
type LocationInsights struct {
	CurrentRate          float64 `json:"current_rate"`
	InitialRate          float64 `json:"initial_rate"`
	TotalGrowthPct       float64 `json:"total_growth_pct"`
	AvgAnnualGrowth      float64 `json:"avg_annual_growth"`
	ZoneType             string  `json:"zone_type"`
	InfraScore           int     `json:"infrastructure_score"`
	DevelopmentPotential int     `json:"development_potential"`
	AmenitiesScore       int     `json:"amenities_score"`
	TransportScore       int     `json:"transport_score"`
	CAGRPct              float64 `json:"cagr_pct"`
}
