package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/diwise/api-features/internal/pkg/application/services/catalog"
	"github.com/diwise/api-features/internal/pkg/application/services/features"
	"github.com/diwise/api-features/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func NewRetrieveItemsHandler(logger zerolog.Logger, itemsSvc features.ItemsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-items")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		name := chi.URLParam(r, "name")

		fc, err := itemsSvc.GetItems(ctx, name)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrNoSuchCollection):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, features.ErrItemsUnavailable):
				log.Error().Err(err).Str("collection", name).Msg("items unavailable")
				w.WriteHeader(http.StatusBadGateway)
			default:
				log.Error().Err(err).Str("collection", name).Msg("failed to retrieve items")
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		var body []byte

		acceptedContentType := r.Header.Get("Accept")
		if strings.Contains(acceptedContentType, domain.MediaTypeFlatGeobuf) && len(fc.Features) > 0 {
			body, err = convertFeaturesToFlatGeobuf(name, fc)
			if err != nil {
				log.Error().Err(err).Msg("failed to encode items as flatgeobuf")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			w.Header().Add("Content-Type", domain.MediaTypeFlatGeobuf)
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}

		body, err = json.Marshal(fc)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal items to geojson")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", domain.MediaTypeGeoJSON)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}
