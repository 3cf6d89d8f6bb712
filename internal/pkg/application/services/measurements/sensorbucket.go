package measurements

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diwise/api-features/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/goccy/go-json"
)

// NewSensorBucketClient returns a client that reads the latest measurement of a
// datastream from the measurements api of a SensorBucket instance.
func NewSensorBucketClient(storeURL string) Client {
	return &sensorBucketClient{
		url:        strings.TrimSuffix(storeURL, "/"),
		httpClient: newHTTPClient(),
	}
}

type sensorBucketClient struct {
	url        string
	httpClient http.Client
}

func (c *sensorBucketClient) FetchDatastream(ctx context.Context, id string) (*domain.Datastream, error) {
	var err error
	ctx, span := tracer.Start(ctx, "fetch-datastream")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

	headers := map[string]string{"Accept": "application/json"}

	body, err := get(ctx, c.httpClient, KindSensorBucket, c.url+"/datastreams/"+url.PathEscape(id), headers)
	if err != nil {
		return nil, fmt.Errorf("datastream %s: %w", id, err)
	}

	resp := datastreamResponse{}
	err = json.Unmarshal(body, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal datastream %s: %w", ErrFetchFailed, id, err)
	}

	if resp.Data == nil {
		return nil, fmt.Errorf("%w: response for datastream %s has no data (%s)", ErrFetchFailed, id, resp.Message)
	}

	return resp.Data.toDatastream(id), nil
}

type datastreamResponse struct {
	Message string         `json:"message"`
	Data    *datastreamDTO `json:"data"`
}

type datastreamDTO struct {
	Device *struct {
		Code        string   `json:"code"`
		Description string   `json:"description"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	} `json:"device"`
	Sensor *struct {
		Description string `json:"description"`
	} `json:"sensor"`
	MeasurementTimestamp *time.Time `json:"measurement_timestamp"`
	MeasurementValue     *float64   `json:"measurement_value"`
}

func (dto datastreamDTO) toDatastream(id string) *domain.Datastream {
	ds := &domain.Datastream{
		ID:                   id,
		MeasurementTimestamp: dto.MeasurementTimestamp,
		MeasurementValue:     dto.MeasurementValue,
	}

	if dto.Device != nil {
		ds.Device = &domain.Device{
			Code:        dto.Device.Code,
			Description: dto.Device.Description,
			Latitude:    dto.Device.Latitude,
			Longitude:   dto.Device.Longitude,
		}
	}

	if dto.Sensor != nil {
		ds.Sensor = &domain.Sensor{Description: dto.Sensor.Description}
	}

	return ds
}
