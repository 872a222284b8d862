// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

/*
Package config provides layered application configuration via Koanf v2.

Configuration is assembled from three sources, later layers overriding
earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (config.yaml, or CONFIG_PATH)
 3. Environment variables (HTTP_PORT, SERIES_SEED, LOG_LEVEL, ...)

Load returns a validated, immutable *Config. All environment variable
names and their config paths are listed in envTransformFunc; variables
outside that list are ignored so the process environment cannot inject
unexpected keys.

The series settings deserve care in deployment: the dataset is generated
deterministically from series.seed and the year span, so changing them
changes every historical series and forecast the service reports.
*/
package config
