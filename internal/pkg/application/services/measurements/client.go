package measurements

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/diwise/api-features/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-features/svcs/measurements")

var (
	ErrFetchFailed      = errors.New("failed to fetch datastream")
	ErrNoSuchDatastream = errors.New("no such datastream")
)

//go:generate moq -rm -out client_mock.go . Client
type Client interface {
	FetchDatastream(ctx context.Context, id string) (*domain.Datastream, error)
}

const (
	KindSensorBucket  string = "sensorbucket"
	KindContextBroker string = "contextbroker"
)

func newHTTPClient() http.Client {
	return http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func get(ctx context.Context, httpClient http.Client, backend, url string, headers map[string]string) (body []byte, err error) {
	start := time.Now()
	defer func() { observeFetch(backend, start, err) }()

	logger := logging.GetFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrFetchFailed, err)
	}

	for k, v := range headers {
		req.Header.Add(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrFetchFailed, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, ErrNoSuchDatastream)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		logger.Error().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("request failed")
		return nil, fmt.Errorf("%w: request failed with status code %d", ErrFetchFailed, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		contentType := resp.Header.Get("Content-Type")
		return nil, fmt.Errorf("%w: store returned status code %d (content-type: %s)", ErrFetchFailed, resp.StatusCode, contentType)
	}

	return respBody, nil
}
