package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/diwise/api-features/internal/pkg/application/services/catalog"
	"github.com/diwise/api-features/internal/pkg/application/services/features"
	"github.com/diwise/api-features/internal/pkg/application/services/measurements"
	"github.com/diwise/api-features/internal/pkg/infrastructure/config"
	"github.com/diwise/api-features/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const serviceName string = "api-features"

var configFileName string
var openApiSpecFileName string

func openFile(ctx context.Context, path, description string) *os.File {
	log := logging.GetFromContext(ctx)
	f, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("failed to open the %s file %s.", description, path)
		return nil
	}
	return f
}

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&configFileName, "config", "/opt/diwise/config/features.yaml", "The catalog configuration file")
	flag.StringVar(&openApiSpecFileName, "oas", "/opt/diwise/openapi.json", "An OpenAPI specification to be served on /api")
	flag.Parse()

	configFile := openFile(ctx, configFileName, "configuration")
	if configFile == nil {
		log.Fatal().Msg("unable to open configuration file, exiting.")
	}
	defer configFile.Close()

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	cat := catalog.New(cfg.BaseURL, cfg.Title, cfg.Description)

	bindings, err := registerCollections(cat, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register collections")
	}

	client := newMeasurementClient(ctx, log)

	itemsSvc := features.NewItemsService(log, cat, client, bindings, features.Settings{
		Profile:       features.Profile(cfg.Profile),
		FailurePolicy: features.FailurePolicy(cfg.FailurePolicy),
		Concurrency:   cfg.Concurrency,
		FetchTimeout:  cfg.FetchTimeout,
	})

	var oasResponseBuffer *bytes.Buffer
	if oasfile := openFile(ctx, openApiSpecFileName, "OpenAPI specification"); oasfile != nil {
		defer oasfile.Close()
		oasResponseBuffer = bytes.NewBuffer(nil)
		written, err := io.Copy(oasResponseBuffer, oasfile)
		if err != nil {
			log.Error().Err(err).Msgf("failed to copy OpenAPI specification into response buffer")
			oasResponseBuffer = nil
		} else {
			log.Info().Msgf("copied %d bytes from %s into openapi response buffer.", written, openApiSpecFileName)
		}
	}

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	r := chi.NewRouter()
	api := presentation.NewAPI(r, ctx, cat, itemsSvc, oasResponseBuffer)

	err = api.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}

func registerCollections(cat catalog.Catalog, cfg *config.Config) (map[string][]string, error) {
	bindings := map[string][]string{}

	for _, c := range cfg.Collections {
		col, err := cat.Register(c.Title, c.Description)
		if err != nil {
			return nil, err
		}
		bindings[col.Name] = c.Datastreams
	}

	return bindings, nil
}

func newMeasurementClient(ctx context.Context, log zerolog.Logger) measurements.Client {
	storeURL := env.GetVariableOrDie(log, "MEASUREMENT_STORE_URL", "measurement store URL")
	storeKind := strings.ToLower(env.GetVariableOrDefault(log, "MEASUREMENT_STORE_KIND", measurements.KindSensorBucket))

	var client measurements.Client

	switch storeKind {
	case measurements.KindSensorBucket:
		client = measurements.NewSensorBucketClient(storeURL)
	case measurements.KindContextBroker:
		tenant := env.GetVariableOrDefault(log, "CONTEXT_BROKER_TENANT", measurements.DefaultBrokerTenant)
		valueAttribute := env.GetVariableOrDefault(log, "CONTEXT_BROKER_VALUE_ATTRIBUTE", measurements.DefaultValueAttribute)
		client = measurements.NewContextBrokerClient(storeURL, tenant, valueAttribute)
	default:
		log.Fatal().Msgf("unsupported measurement store kind %s", storeKind)
	}

	return measurements.NewCircuitBreaker(ctx, client, storeKind, measurements.DefaultCircuitBreakerSettings())
}
