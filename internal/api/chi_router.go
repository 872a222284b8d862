// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plotwise/plotwise/internal/middleware"
)

// Router wires handlers and middleware into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router from a handler and middleware factory.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so the middleware package composes
// with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup configures all HTTP routes using the chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// Health endpoints: permissive rate limiting for monitoring
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Data and analytics endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/locations", router.handler.Locations)
		r.Get("/locations/{location}/insights", chiPathValue(http.HandlerFunc(router.handler.Insights)).ServeHTTP)
		r.Get("/states", router.handler.States)
		r.Get("/states/{state}/cities", chiPathValue(http.HandlerFunc(router.handler.StateCities)).ServeHTTP)
		r.Get("/series", router.handler.Series)

		r.Get("/forecast", router.handler.Forecast)
		r.Get("/roi", router.handler.ROI)
		r.Get("/compare", router.handler.Compare)

		r.Get("/development", router.handler.Development)
		r.Get("/legal-risk", router.handler.LegalRisk)
		r.Get("/area-risk", router.handler.AreaRisk)
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// chiPathValue middleware injects Chi URL params into the request so
// handlers can read them via r.PathValue().
func chiPathValue(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		if rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					// Chi keeps params percent-encoded when routing on
					// URL.RawPath; decode to match net/http PathValue
					// semantics.
					val := rctx.URLParams.Values[i]
					if dec, err := url.PathUnescape(val); err == nil {
						val = dec
					}
					r.SetPathValue(key, val)
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
