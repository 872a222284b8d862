// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

/*
Package metrics provides Prometheus metrics collection and export.

Collectors are registered via promauto at package init and exposed at the
/metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

The package instruments:
  - HTTP request latency, throughput, and in-flight counts
  - Forecast model fit duration and outcomes
  - Scoring computations by kind (development, legal, area)
  - Result cache hit/miss rates and size
  - Generated dataset dimensions
*/
package metrics
