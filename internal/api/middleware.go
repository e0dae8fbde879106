// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pmarkee/ecosphere/internal/logging"
	"github.com/pmarkee/ecosphere/internal/metrics"
)

// requestIDHeader is the response header carrying the request ID.
const requestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to the context and response headers.
// An inbound X-Request-ID is honored so upstream proxies can correlate;
// otherwise a new UUID is generated.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = logging.GenerateRequestID()
			}

			ctx := logging.ContextWithRequestID(r.Context(), id)
			w.Header().Set(requestIDHeader, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Instrument records Prometheus metrics and an access log line per
// request. The chi route pattern is used as the endpoint label so path
// parameters do not explode label cardinality.
func Instrument() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			endpoint := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					endpoint = pattern
				}
			}

			elapsed := time.Since(start)
			metrics.RecordAPIRequest(r.Method, endpoint, ww.Status(), elapsed)

			logging.Ctx(r.Context()).Debug().
				Str("method", r.Method).
				Str("endpoint", endpoint).
				Int("status", ww.Status()).
				Dur("elapsed", elapsed).
				Msg("request handled")
		})
	}
}
