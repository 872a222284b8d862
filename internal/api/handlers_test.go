// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/plotwise/plotwise/internal/config"
	"github.com/plotwise/plotwise/internal/models"
	"github.com/plotwise/plotwise/internal/registry"
	"github.com/plotwise/plotwise/internal/series"
)

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 8080, Timeout: 30 * time.Second},
		Series:   config.SeriesConfig{Seed: 42, StartYear: 2018, EndYear: 2026},
		Forecast: config.ForecastConfig{DefaultHorizon: 5, MaxHorizon: 30},
		Cache:    config.CacheConfig{Capacity: 128, TTL: time.Minute},
		API: config.APIConfig{
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
			MaxCompare:      3,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
	}
}

func testRegistry() *registry.Registry {
	return registry.FromTables(registry.Tables{
		Locations: []registry.LocationProfile{
			{Name: "Alpha, Stateville", City: "Alpha", State: "Stateville", BaseRate: 1000, GrowthPct: 8, ZoneType: "Tier-2 City", InfraScore: 60},
			{Name: "Beta, Otherland", City: "Beta", State: "Otherland", BaseRate: 2500, GrowthPct: 12, ZoneType: "Tier-2 City", InfraScore: 75},
		},
		Zones: map[string]registry.ZoneFactor{
			"Tier-2 City": {Description: "Established mid-size city", GrowthMultiplier: 1.0, RiskLevel: "Medium"},
		},
		StateLaws: map[string]registry.StateLawProfile{
			"Delhi": {RERAActive: true, NRIAllowed: true, AgriConversionEase: "Moderate", StampDutyPct: 6, RegistrationPct: 1, LandCeilingAct: true},
			"Stateville": {RERAActive: true, NRIAllowed: true, AgriConversionEase: "Easy", StampDutyPct: 5, RegistrationPct: 1, LandCeilingAct: true},
		},
	})
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := testConfig()
	reg := testRegistry()
	data := series.Generate(reg, series.Config{
		Seed:      cfg.Series.Seed,
		StartYear: cfg.Series.StartYear,
		EndYear:   cfg.Series.EndYear,
	})

	router := NewRouter(NewHandler(cfg, reg, data), nil)
	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (int, envelope) {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	code, env := get(t, srv, "/api/v1/health")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q", env.Status)
	}

	var health models.HealthStatus
	if err := json.Unmarshal(env.Data, &health); err != nil {
		t.Fatal(err)
	}
	if health.Status != "healthy" {
		t.Errorf("health status = %q", health.Status)
	}
	if health.Locations != 2 || health.States != 2 {
		t.Errorf("locations/states = %d/%d, want 2/2", health.Locations, health.States)
	}
	if health.Observations != 18 {
		t.Errorf("observations = %d, want 18 (2 locations x 9 years)", health.Observations)
	}
	if health.SeriesSpan != "2018-2026" {
		t.Errorf("series span = %q", health.SeriesSpan)
	}

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		code, env := get(t, srv, path)
		if code != http.StatusOK || env.Status != "success" {
			t.Errorf("%s: status = %d / %q", path, code, env.Status)
		}
	}
}

func TestLocations(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	code, env := get(t, srv, "/api/v1/locations")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var locs []registry.LocationProfile
	if err := json.Unmarshal(env.Data, &locs); err != nil {
		t.Fatal(err)
	}
	if len(locs) != 2 {
		t.Errorf("len = %d, want 2", len(locs))
	}

	code, env = get(t, srv, "/api/v1/locations?state=Stateville")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if err := json.Unmarshal(env.Data, &locs); err != nil {
		t.Fatal(err)
	}
	if len(locs) != 1 || locs[0].Name != "Alpha, Stateville" {
		t.Errorf("filtered = %+v", locs)
	}
}

func TestStatesAndCities(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	code, env := get(t, srv, "/api/v1/states")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var states []string
	if err := json.Unmarshal(env.Data, &states); err != nil {
		t.Fatal(err)
	}
	if len(states) != 2 || states[0] != "Otherland" || states[1] != "Stateville" {
		t.Errorf("states = %v, want sorted [Otherland Stateville]", states)
	}

	code, env = get(t, srv, "/api/v1/states/Stateville/cities")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var cities []string
	if err := json.Unmarshal(env.Data, &cities); err != nil {
		t.Fatal(err)
	}
	if len(cities) != 1 || cities[0] != "Alpha" {
		t.Errorf("cities = %v", cities)
	}

	code, env = get(t, srv, "/api/v1/states/Atlantis/cities")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestSeries(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	// Without a location the whole table comes back.
	code, env := get(t, srv, "/api/v1/series")
	if code != http.StatusOK {
		t.Fatalf("no location: status = %d", code)
	}
	var all []models.Observation
	if err := json.Unmarshal(env.Data, &all); err != nil {
		t.Fatal(err)
	}
	if len(all) != 18 {
		t.Errorf("full table len = %d, want 18", len(all))
	}

	code, _ = get(t, srv, "/api/v1/series?location="+url.QueryEscape("Nowhere, Atlantis"))
	if code != http.StatusNotFound {
		t.Fatalf("unknown location: status = %d, want 404", code)
	}

	code, env = get(t, srv, "/api/v1/series?location="+url.QueryEscape("Alpha, Stateville"))
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var obs []models.Observation
	if err := json.Unmarshal(env.Data, &obs); err != nil {
		t.Fatal(err)
	}
	if len(obs) != 9 {
		t.Errorf("len = %d, want 9", len(obs))
	}
	if obs[0].Year != 2018 || obs[8].Year != 2026 {
		t.Errorf("year range = %d-%d", obs[0].Year, obs[8].Year)
	}
}

func TestInsightsEndpoint(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	code, env := get(t, srv, "/api/v1/locations/"+url.PathEscape("Alpha, Stateville")+"/insights")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var ins models.LocationInsights
	if err := json.Unmarshal(env.Data, &ins); err != nil {
		t.Fatal(err)
	}
	if ins.CurrentRate <= 0 || ins.ZoneType != "Tier-2 City" {
		t.Errorf("insights = %+v", ins)
	}

	code, _ = get(t, srv, "/api/v1/locations/"+url.PathEscape("Nowhere, Atlantis")+"/insights")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}

func TestForecastEndpoint(t *testing.T) {
	t.Parallel()
	srv := testServer(t)
	loc := url.QueryEscape("Alpha, Stateville")

	code, env := get(t, srv, "/api/v1/forecast?location="+loc)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if env.Metadata.Cached {
		t.Error("first call should not be cached")
	}
	var fc models.Forecast
	if err := json.Unmarshal(env.Data, &fc); err != nil {
		t.Fatal(err)
	}
	if len(fc.Steps) != 5 {
		t.Errorf("default horizon steps = %d, want 5", len(fc.Steps))
	}
	if fc.Steps[0].Year != 2027 {
		t.Errorf("first step year = %d, want 2027", fc.Steps[0].Year)
	}

	// Identical query is served from the memoization cache.
	code, env = get(t, srv, "/api/v1/forecast?location="+loc)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if !env.Metadata.Cached {
		t.Error("second call should be cached")
	}

	// Explicit horizon parameter.
	code, env = get(t, srv, "/api/v1/forecast?location="+loc+"&horizon=2")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if err := json.Unmarshal(env.Data, &fc); err != nil {
		t.Fatal(err)
	}
	if len(fc.Steps) != 2 {
		t.Errorf("horizon=2 steps = %d", len(fc.Steps))
	}

	code, env = get(t, srv, "/api/v1/forecast?location="+loc+"&years=31")
	if code != http.StatusBadRequest {
		t.Fatalf("over max horizon: status = %d, want 400", code)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v", env.Error)
	}

	code, _ = get(t, srv, "/api/v1/forecast?location="+loc+"&years=0")
	if code != http.StatusBadRequest {
		t.Fatalf("zero horizon: status = %d, want 400", code)
	}

	code, env = get(t, srv, "/api/v1/forecast?location="+url.QueryEscape("Nowhere, Atlantis"))
	if code != http.StatusNotFound {
		t.Fatalf("unknown location: status = %d, want 404", code)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestROIEndpoint(t *testing.T) {
	t.Parallel()
	srv := testServer(t)
	loc := url.QueryEscape("Alpha, Stateville")

	code, env := get(t, srv, "/api/v1/roi?location="+loc+"&amount=1000000&years=3")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var proj models.ROIProjection
	if err := json.Unmarshal(env.Data, &proj); err != nil {
		t.Fatal(err)
	}
	if proj.Investment != 1000000 || len(proj.Years) != 3 {
		t.Errorf("projection = %+v", proj)
	}
	if proj.AreaSqft <= 0 {
		t.Errorf("AreaSqft = %v", proj.AreaSqft)
	}

	code, env = get(t, srv, "/api/v1/roi?location="+loc)
	if code != http.StatusBadRequest {
		t.Fatalf("missing amount: status = %d, want 400", code)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestCompareEndpoint(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	q := url.QueryEscape("Alpha, Stateville;Beta, Otherland;Nowhere, Atlantis")
	code, env := get(t, srv, "/api/v1/compare?locations="+q)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var rows []models.ComparisonRow
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatal(err)
	}
	// The unknown location is skipped, not an error.
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Location != "Alpha, Stateville" || rows[1].Location != "Beta, Otherland" {
		t.Errorf("rows = %+v", rows)
	}

	// Repeated parameters are equivalent to the semicolon form.
	code, env = get(t, srv, "/api/v1/compare?locations="+
		url.QueryEscape("Alpha, Stateville")+"&locations="+url.QueryEscape("Beta, Otherland"))
	if code != http.StatusOK {
		t.Fatalf("repeated params: status = %d", code)
	}
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("repeated params rows = %d, want 2", len(rows))
	}

	code, _ = get(t, srv, "/api/v1/compare?locations="+url.QueryEscape("Alpha, Stateville"))
	if code != http.StatusBadRequest {
		t.Fatalf("single location: status = %d, want 400", code)
	}

	q = url.QueryEscape("A, B;C, D;E, F;G, H")
	code, _ = get(t, srv, "/api/v1/compare?locations="+q)
	if code != http.StatusBadRequest {
		t.Fatalf("over max compare: status = %d, want 400", code)
	}
}

func TestScoringEndpoints(t *testing.T) {
	t.Parallel()
	srv := testServer(t)
	loc := url.QueryEscape("Alpha, Stateville")

	code, env := get(t, srv, "/api/v1/development?location="+loc)
	if code != http.StatusOK {
		t.Fatalf("development: status = %d", code)
	}
	var dev models.DevelopmentScore
	if err := json.Unmarshal(env.Data, &dev); err != nil {
		t.Fatal(err)
	}
	if dev.OverallScore <= 0 || dev.Outlook == "" {
		t.Errorf("development = %+v", dev)
	}

	code, env = get(t, srv, "/api/v1/legal-risk?location="+loc)
	if code != http.StatusOK {
		t.Fatalf("legal-risk: status = %d", code)
	}
	var legal models.LegalRiskProfile
	if err := json.Unmarshal(env.Data, &legal); err != nil {
		t.Fatal(err)
	}
	if legal.RiskScore < 10 || legal.RiskScore > 95 {
		t.Errorf("RiskScore = %d outside [10, 95]", legal.RiskScore)
	}
	if len(legal.Documents) == 0 {
		t.Error("Documents should not be empty")
	}

	// What-if query by state and zone, no location.
	code, env = get(t, srv, "/api/v1/legal-risk?state=Stateville&zone="+url.QueryEscape("Tier-2 City"))
	if code != http.StatusOK {
		t.Fatalf("legal-risk by state: status = %d", code)
	}
	if err := json.Unmarshal(env.Data, &legal); err != nil {
		t.Fatal(err)
	}
	if legal.RiskScore < 10 || legal.RiskScore > 95 {
		t.Errorf("what-if RiskScore = %d outside [10, 95]", legal.RiskScore)
	}

	code, env = get(t, srv, "/api/v1/area-risk?location="+loc)
	if code != http.StatusOK {
		t.Fatalf("area-risk: status = %d", code)
	}
	var area models.AreaRiskReport
	if err := json.Unmarshal(env.Data, &area); err != nil {
		t.Fatal(err)
	}
	if len(area.Alerts) != 5 {
		t.Errorf("len(Alerts) = %d, want 5", len(area.Alerts))
	}
	if area.OverallLabel == "" {
		t.Error("OverallLabel should be set")
	}

	for _, path := range []string{"/api/v1/development", "/api/v1/legal-risk", "/api/v1/area-risk"} {
		code, _ = get(t, srv, path)
		if code != http.StatusBadRequest {
			t.Errorf("%s without location: status = %d, want 400", path, code)
		}
	}
}

func TestResponseHeaders(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/states")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if resp.Header.Get("ETag") == "" {
		t.Error("ETag header missing")
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header missing")
	}
}
