package handlers

import (
	"errors"
	"net/http"

	"github.com/diwise/api-features/internal/pkg/application/services/catalog"
	"github.com/diwise/api-features/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func NewRetrieveLandingHandler(logger zerolog.Logger, cat catalog.Catalog) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-landing")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		err = writeJSON(log, w, domain.MediaTypeJSON, "3600", cat.Landing())
	})
}

func NewRetrieveConformanceHandler(logger zerolog.Logger, cat catalog.Catalog) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-conformance")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		err = writeJSON(log, w, domain.MediaTypeJSON, "3600", cat.Conformance())
	})
}

func NewRetrieveCollectionsHandler(logger zerolog.Logger, cat catalog.Catalog) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-collections")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		err = writeJSON(log, w, domain.MediaTypeJSON, "600", cat.Collections())
	})
}

func NewRetrieveCollectionHandler(logger zerolog.Logger, cat catalog.Catalog) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-collection")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		name := chi.URLParam(r, "name")

		collection, err := cat.Collection(name)
		if err != nil {
			if errors.Is(err, catalog.ErrNoSuchCollection) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Error().Err(err).Msg("failed to retrieve collection")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = writeJSON(log, w, domain.MediaTypeJSON, "600", collection)
	})
}
