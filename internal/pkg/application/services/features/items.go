package features

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/api-features/internal/pkg/application/services/catalog"
	"github.com/diwise/api-features/internal/pkg/application/services/measurements"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("api-features/svcs/features")

var ErrItemsUnavailable = errors.New("items unavailable")

type FailurePolicy string

const (
	FailurePolicyAbort FailurePolicy = "abort"
	FailurePolicySkip  FailurePolicy = "skip"
)

// FailedMember is the name of the foreign member that lists the datastreams that
// could not be resolved when failures are skipped
const FailedMember string = "failed"

const (
	DefaultConcurrency  int           = 4
	DefaultFetchTimeout time.Duration = 10 * time.Second
)

type Settings struct {
	Profile       Profile
	FailurePolicy FailurePolicy
	Concurrency   int
	FetchTimeout  time.Duration
}

//go:generate moq -rm -out itemsservice_mock.go . ItemsService
type ItemsService interface {
	GetItems(ctx context.Context, collectionName string) (*geojson.FeatureCollection, error)
}

// NewItemsService returns a service that materializes the items of a collection from the
// latest measurements of the datastreams bound to it. Bindings map collection names to an
// ordered list of datastream identifiers.
func NewItemsService(logger zerolog.Logger, cat catalog.Catalog, client measurements.Client, bindings map[string][]string, settings Settings) ItemsService {
	if settings.FailurePolicy == "" {
		settings.FailurePolicy = FailurePolicyAbort
	}

	if settings.Concurrency < 1 {
		settings.Concurrency = DefaultConcurrency
	}

	if settings.FetchTimeout <= 0 {
		settings.FetchTimeout = DefaultFetchTimeout
	}

	b := make(map[string][]string, len(bindings))
	for name, ids := range bindings {
		b[name] = append([]string{}, ids...)
	}

	return &itemsSvc{
		log:        logger,
		catalog:    cat,
		client:     client,
		translator: NewTranslator(settings.Profile),
		bindings:   b,
		settings:   settings,
	}
}

type itemsSvc struct {
	log zerolog.Logger

	catalog    catalog.Catalog
	client     measurements.Client
	translator Translator

	bindings map[string][]string
	settings Settings
}

func (svc *itemsSvc) GetItems(ctx context.Context, collectionName string) (*geojson.FeatureCollection, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-items")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	_, err = svc.catalog.Collection(collectionName)
	if err != nil {
		return nil, err
	}

	ids := svc.bindings[collectionName]

	features := make([]*geojson.Feature, len(ids))
	failures := make([]error, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(svc.settings.Concurrency)

	for idx, datastreamID := range ids {
		g.Go(func() error {
			f, err := svc.feature(gctx, datastreamID)
			if err != nil {
				if svc.settings.FailurePolicy == FailurePolicyAbort {
					return fmt.Errorf("%w: datastream %s: %w", ErrItemsUnavailable, datastreamID, err)
				}

				failures[idx] = err
				return nil
			}

			features[idx] = f
			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		log.Error().Err(err).Str("collection", collectionName).Msg("failed to assemble items")
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	failed := []string{}

	for idx := range ids {
		if failures[idx] != nil {
			log.Warn().Err(failures[idx]).Str("datastream", ids[idx]).Msg("skipping datastream that could not be resolved")
			failed = append(failed, ids[idx])
			continue
		}

		fc.Append(features[idx])
	}

	if len(failed) > 0 {
		fc.ExtraMembers = geojson.Properties{FailedMember: failed}
	}

	return fc, nil
}

func (svc *itemsSvc) feature(ctx context.Context, datastreamID string) (*geojson.Feature, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.settings.FetchTimeout)
	defer cancel()

	ds, err := svc.client.FetchDatastream(ctx, datastreamID)
	if err != nil {
		return nil, err
	}

	return svc.translator.Translate(ds)
}
