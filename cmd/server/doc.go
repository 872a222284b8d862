// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

/*
Command server runs the PlotWise HTTP API.

On startup it loads configuration, materializes the location registry,
generates the deterministic historical rate series, and serves the
read-only analytics API until SIGINT or SIGTERM.

Run with defaults:

	go run ./cmd/server

Override via environment:

	HTTP_PORT=9090 LOG_FORMAT=console SERIES_SEED=42 go run ./cmd/server

Or via a YAML file (config.yaml next to the binary, or CONFIG_PATH):

	server:
	  port: 9090
	logging:
	  format: console
*/
package main
