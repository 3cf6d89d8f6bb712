package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/api-features/internal/pkg/application/services/catalog"
	"github.com/diwise/api-features/internal/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestRetrieveLanding(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	r.Get("/", NewRetrieveLandingHandler(zerolog.Logger{}, newTestCatalog(is)))
	response, body := newGetRequest(is, ts, "application/json", "/", nil)

	is.Equal(response.StatusCode, http.StatusOK)
	is.Equal(response.Header.Get("Content-Type"), domain.MediaTypeJSON)

	landing := domain.Landing{}
	is.NoErr(json.Unmarshal([]byte(body), &landing))
	is.Equal(landing.Title, "SensorBucket WFS")
	is.Equal(len(landing.Links), 4)
	is.Equal(landing.Links[3].Type, domain.MediaTypeOpenAPI)
}

func TestRetrieveCollections(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	r.Get("/collections", NewRetrieveCollectionsHandler(zerolog.Logger{}, newTestCatalog(is)))
	response, body := newGetRequest(is, ts, "application/json", "/collections", nil)

	is.Equal(response.StatusCode, http.StatusOK)
	is.Equal(body, expectedCollectionsJSON)
}

func TestRetrieveCollectionByName(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	r.Get("/collections/{name}", NewRetrieveCollectionHandler(zerolog.Logger{}, newTestCatalog(is)))
	response, body := newGetRequest(is, ts, "application/json", "/collections/weather_stations", nil)

	is.Equal(response.StatusCode, http.StatusOK)

	col := domain.Collection{}
	is.NoErr(json.Unmarshal([]byte(body), &col))
	is.Equal(col.Name, "weather_stations")
	is.Equal(col.Links[0].Href, "http://10.0.0.245:5000/collections/weather_stations/items")
}

func TestThatUnknownCollectionsAreNotFound(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	r.Get("/collections/{name}", NewRetrieveCollectionHandler(zerolog.Logger{}, newTestCatalog(is)))
	response, body := newGetRequest(is, ts, "application/json", "/collections/unknown", nil)

	is.Equal(response.StatusCode, http.StatusNotFound)
	is.Equal(body, "") // unknown collections should not have a body
}

func TestRetrieveConformance(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	r.Get("/conformance", NewRetrieveConformanceHandler(zerolog.Logger{}, newTestCatalog(is)))
	response, body := newGetRequest(is, ts, "application/json", "/conformance", nil)

	is.Equal(response.StatusCode, http.StatusOK)

	conf := domain.Conformance{}
	is.NoErr(json.Unmarshal([]byte(body), &conf))
	is.True(len(conf.ConformsTo) > 0)
}

func newTestCatalog(is *is.I) catalog.Catalog {
	cat := catalog.New("http://10.0.0.245:5000", "SensorBucket WFS", "Simple WFS to expose SensorBucket data")

	_, err := cat.Register("Devices", "SensorBucket Devices")
	is.NoErr(err)
	_, err = cat.Register("Weather Stations", "")
	is.NoErr(err)

	return cat
}

func newGetRequest(is *is.I, ts *httptest.Server, accept, path string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, body)
	is.NoErr(err)

	req.Header.Add("Accept", accept)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *chi.Mux, *httptest.Server) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	return is, r, ts
}

const expectedCollectionsJSON string = `{"links":[{"href":"http://10.0.0.245:5000/collections","rel":"self","type":"application/json","title":"self"},{"href":"http://10.0.0.245:5000/collections/devices","rel":"item","type":"application/json","title":"item"},{"href":"http://10.0.0.245:5000/collections/weather_stations","rel":"item","type":"application/json","title":"item"}],"collections":[{"name":"devices","title":"Devices","description":"SensorBucket Devices","links":[{"href":"http://10.0.0.245:5000/collections/devices/items","rel":"item","type":"application/geo+json","title":"item"}]},{"name":"weather_stations","title":"Weather Stations","description":"","links":[{"href":"http://10.0.0.245:5000/collections/weather_stations/items","rel":"item","type":"application/geo+json","title":"item"}]}]}`
