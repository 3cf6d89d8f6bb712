package measurements

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

func TestFetchEntityFromContextBroker(t *testing.T) {
	is, ms := brokerSetup(t, http.StatusOK, weatherObservedJSON)
	defer ms.Close()

	client := NewContextBrokerClient(ms.URL(), "default", "")

	ds, err := client.FetchDatastream(context.Background(), "urn:ngsi-ld:WeatherObserved:se:servanet:lora:sk-elt-temp-02")
	is.NoErr(err)

	is.Equal(ds.ID, "urn:ngsi-ld:WeatherObserved:se:servanet:lora:sk-elt-temp-02")
	is.Equal(ds.Device.Code, "sk-elt-temp-02") // device code should be taken from refDevice
	is.Equal(ds.Device.Description, "Temperature at the pier")
	is.Equal(*ds.Device.Longitude, 17.3069)
	is.Equal(*ds.Device.Latitude, 62.3908)
	is.Equal(ds.Sensor.Description, "WeatherObserved temperature")
	is.Equal(*ds.MeasurementValue, 11.2)
	is.True(ds.MeasurementTimestamp.Equal(time.Date(2023, 4, 12, 6, 10, 0, 0, time.UTC)))
}

func TestThatOtherValueAttributesCanBeConfigured(t *testing.T) {
	is, ms := brokerSetup(t, http.StatusOK, weatherObservedJSON)
	defer ms.Close()

	ds, err := NewContextBrokerClient(ms.URL(), "default", "relativeHumidity").FetchDatastream(context.Background(), "urn:ngsi-ld:WeatherObserved:se:servanet:lora:sk-elt-temp-02")
	is.NoErr(err)

	is.Equal(*ds.MeasurementValue, 0.81)
	is.Equal(ds.Sensor.Description, "WeatherObserved relativeHumidity")
}

func TestThatEntitiesWithoutValueOrLocationAreLeftIncomplete(t *testing.T) {
	is, ms := brokerSetup(t, http.StatusOK, `{"@context":["https://raw.githubusercontent.com/diwise/context-broker/main/assets/jsonldcontexts/default-context.jsonld"],"id":"urn:ngsi-ld:Device:x","type":"Device"}`)
	defer ms.Close()

	ds, err := NewContextBrokerClient(ms.URL(), "default", "").FetchDatastream(context.Background(), "urn:ngsi-ld:Device:x")
	is.NoErr(err)

	is.Equal(ds.Device.Code, "urn:ngsi-ld:Device:x") // entities without refDevice should use the entity id
	is.True(ds.MeasurementValue == nil)
	is.True(ds.MeasurementTimestamp == nil)
	is.True(ds.Device.Latitude == nil)
}

func TestThatTheEntityIsRequestedFromTheBroker(t *testing.T) {
	is := is.New(t)

	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Add("Content-Type", "application/ld+json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(weatherObservedJSON))
	}))
	defer server.Close()

	_, err := NewContextBrokerClient(server.URL+"/", "sundsvall", "").FetchDatastream(context.Background(), "urn:ngsi-ld:WeatherObserved:se:servanet:lora:sk-elt-temp-02")
	is.NoErr(err)
	is.Equal(path, "/ngsi-ld/v1/entities/urn:ngsi-ld:WeatherObserved:se:servanet:lora:sk-elt-temp-02")
}

func TestThatMissingEntitiesAreReportedAsMissing(t *testing.T) {
	is, ms := brokerSetup(t, http.StatusNotFound, "")
	defer ms.Close()

	_, err := NewContextBrokerClient(ms.URL(), "default", "").FetchDatastream(context.Background(), "urn:ngsi-ld:WeatherObserved:gone")
	is.True(errors.Is(err, ErrFetchFailed))
	is.True(errors.Is(err, ErrNoSuchDatastream))
}

func TestThatBrokerErrorsFailTheFetch(t *testing.T) {
	is, ms := brokerSetup(t, http.StatusInternalServerError, "")
	defer ms.Close()

	_, err := NewContextBrokerClient(ms.URL(), "default", "").FetchDatastream(context.Background(), "urn:ngsi-ld:WeatherObserved:1")
	is.True(errors.Is(err, ErrFetchFailed))
	is.True(!errors.Is(err, ErrNoSuchDatastream))
}

func brokerSetup(t *testing.T, statusCode int, responseBody string) (*is.I, testutils.MockService) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(statusCode),
			response.ContentType("application/ld+json"),
			response.Body([]byte(responseBody)),
		),
	)

	return is, ms
}

const weatherObservedJSON string = `{
	"@context": ["https://raw.githubusercontent.com/diwise/context-broker/main/assets/jsonldcontexts/default-context.jsonld"],
	"id": "urn:ngsi-ld:WeatherObserved:se:servanet:lora:sk-elt-temp-02",
	"type": "WeatherObserved",
	"description": {"type": "Property", "value": "Temperature at the pier"},
	"refDevice": {"type": "Relationship", "object": "urn:ngsi-ld:Device:se:servanet:lora:sk-elt-temp-02"},
	"dateObserved": {"type": "Property", "value": {"@type": "DateTime", "@value": "2023-04-12T06:10:00Z"}},
	"location": {"type": "GeoProperty", "value": {"type": "Point", "coordinates": [17.3069, 62.3908]}},
	"temperature": {"type": "Property", "value": 11.2},
	"relativeHumidity": {"type": "Property", "value": 0.81}
}`
