package presentation

import (
	"bytes"
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/api-features/internal/pkg/application/services/catalog"
	"github.com/diwise/api-features/internal/pkg/application/services/features"
	"github.com/diwise/api-features/internal/pkg/domain"
	"github.com/diwise/api-features/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type featuresAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(r chi.Router, ctx context.Context, cat catalog.Catalog, itemsSvc features.ItemsService, openapiResponse *bytes.Buffer) API {
	return newFeaturesAPI(r, ctx, cat, itemsSvc, openapiResponse)
}

func newFeaturesAPI(r chi.Router, ctx context.Context, cat catalog.Catalog, itemsSvc features.ItemsService, openapiResponse *bytes.Buffer) *featuresAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		domain.MediaTypeJSON, domain.MediaTypeGeoJSON, "application/vnd.oai.openapi+json",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-features", otelchi.WithChiRoutes(r)))

	a := &featuresAPI{
		router: r,
		log:    log,
	}

	a.addFeaturesHandlers(r, log, cat, itemsSvc)
	a.addProbeHandlers(r)

	r.Get("/api", a.newRetrieveOpenAPIHandler(log, openapiResponse))
	r.Handle("/metrics", promhttp.Handler())

	return a
}

func (a *featuresAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-features on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *featuresAPI) addFeaturesHandlers(r chi.Router, log zerolog.Logger, cat catalog.Catalog, itemsSvc features.ItemsService) {
	r.Get("/", handlers.NewRetrieveLandingHandler(log, cat))
	r.Get("/conformance", handlers.NewRetrieveConformanceHandler(log, cat))

	r.Route("/collections", func(r chi.Router) {
		r.Get("/", handlers.NewRetrieveCollectionsHandler(log, cat))
		r.Get("/{name}", handlers.NewRetrieveCollectionHandler(log, cat))
		r.Get("/{name}/items", handlers.NewRetrieveItemsHandler(log, itemsSvc))
	})
}

func (a *featuresAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func (a *featuresAPI) newRetrieveOpenAPIHandler(log zerolog.Logger, openapiResponse *bytes.Buffer) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if openapiResponse == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Add("Content-Type", domain.MediaTypeOpenAPI)
		w.Header().Add("Cache-Control", "max-age=3600")
		w.WriteHeader(http.StatusOK)
		w.Write(openapiResponse.Bytes())
	})
}
