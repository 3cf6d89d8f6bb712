package measurements

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/api-features/internal/pkg/domain"
	contextbroker "github.com/diwise/context-broker/pkg/ngsild/client"
	ngsierrors "github.com/diwise/context-broker/pkg/ngsild/errors"
	"github.com/diwise/context-broker/pkg/ngsild/geojson"
	"github.com/diwise/context-broker/pkg/ngsild/types"
	"github.com/diwise/context-broker/pkg/ngsild/types/entities"
	"github.com/diwise/context-broker/pkg/ngsild/types/properties"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

const (
	DefaultBrokerTenant   string = "default"
	DefaultValueAttribute string = "temperature"
)

// NewContextBrokerClient returns a client that treats datastream identifiers as NGSI-LD
// entity ids and reads the latest observation of each entity from a context broker.
func NewContextBrokerClient(brokerURL, tenant, valueAttribute string) Client {
	if tenant == "" {
		tenant = DefaultBrokerTenant
	}

	if valueAttribute == "" {
		valueAttribute = DefaultValueAttribute
	}

	return &contextBrokerClient{
		cbClient:       contextbroker.NewContextBrokerClient(strings.TrimSuffix(brokerURL, "/"), contextbroker.Tenant(tenant)),
		valueAttribute: valueAttribute,
	}
}

type contextBrokerClient struct {
	cbClient       contextbroker.ContextBrokerClient
	valueAttribute string
}

func (c *contextBrokerClient) FetchDatastream(ctx context.Context, id string) (ds *domain.Datastream, err error) {
	start := time.Now()
	defer func() { observeFetch(KindContextBroker, start, err) }()

	ctx, span := tracer.Start(ctx, "fetch-entity")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

	headers := map[string][]string{
		"Accept": {"application/ld+json"},
		"Link":   {entities.LinkHeader},
	}

	entity, err := c.cbClient.RetrieveEntity(ctx, id, headers)
	if err != nil {
		if errors.Is(err, ngsierrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: entity %s: %w", ErrFetchFailed, id, ErrNoSuchDatastream)
		}

		log.Error().Err(err).Msgf("failed to retrieve entity %s", id)
		return nil, fmt.Errorf("%w: entity %s: %w", ErrFetchFailed, id, err)
	}

	return c.entityToDatastream(id, entity), nil
}

func (c *contextBrokerClient) entityToDatastream(id string, e types.Entity) *domain.Datastream {
	ds := &domain.Datastream{
		ID: id,
		Device: &domain.Device{
			Code: e.ID(),
		},
		Sensor: &domain.Sensor{
			Description: strings.TrimSpace(e.Type() + " " + c.valueAttribute),
		},
	}

	e.ForEachAttribute(func(_, attributeName string, contents any) {
		switch attributeName {
		case "description":
			if p, ok := contents.(*properties.TextProperty); ok {
				ds.Device.Description = p.Val
			}
		case "refDevice":
			if r, ok := contents.(interface{ Object() string }); ok {
				ds.Device.Code = deviceCode(r.Object(), e.ID())
			}
		case "dateObserved":
			if p, ok := contents.(*properties.DateTimeProperty); ok {
				if t, err := time.Parse(time.RFC3339, p.Val.Value); err == nil {
					ds.MeasurementTimestamp = &t
				}
			}
		case "location":
			if p, ok := contents.(*geojson.GeoJSONProperty); ok {
				point := p.GetAsPoint()
				lon, lat := point.Longitude(), point.Latitude()
				ds.Device.Longitude = &lon
				ds.Device.Latitude = &lat
			}
		case c.valueAttribute:
			if p, ok := contents.(*properties.NumberProperty); ok {
				value := p.Val
				ds.MeasurementValue = &value
			}
		}
	})

	return ds
}

// deviceCode is the last segment of the referenced device urn, or the entity id
// when the entity does not reference a device
func deviceCode(refDevice, entityID string) string {
	if refDevice == "" {
		return entityID
	}

	return refDevice[strings.LastIndex(refDevice, ":")+1:]
}
