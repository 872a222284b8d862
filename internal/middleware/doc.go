// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

/*
Package middleware provides HTTP middleware shared by all API routes.

Middleware here wraps http.HandlerFunc directly so it composes with both
chi route groups and individually registered handlers:

  - RequestID: assigns or propagates X-Request-ID and threads it through
    the logging context
  - PrometheusMetrics: request counts, latency histograms, and an
    in-flight gauge
  - Compression: gzip response compression for clients that accept it

Cross-cutting concerns that chi already ships (CORS, rate limiting,
panic recovery) are applied from the chi ecosystem in the api package
rather than reimplemented here.
*/
package middleware
