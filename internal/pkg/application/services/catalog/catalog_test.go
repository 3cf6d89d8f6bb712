package catalog

import (
	"errors"
	"testing"

	"github.com/diwise/api-features/internal/pkg/domain"
	"github.com/matryer/is"
)

const baseURL string = "http://features.diwise.io"

func TestThatRegisteredCollectionsGetNamesDerivedFromTheirTitles(t *testing.T) {
	is, c := testSetup(t)

	_, err := c.Register("Devices", "All the devices")
	is.NoErr(err)
	_, err = c.Register("Weather Stations", "Stations that observe the weather")
	is.NoErr(err)

	cols := c.Collections()

	is.Equal(len(cols.Collections), 2)
	is.Equal(cols.Collections[0].Name, "devices")
	is.Equal(cols.Collections[1].Name, "weather_stations")

	is.Equal(len(cols.Links), 3) // one self link and one item link per collection
	is.Equal(cols.Links[0].Rel, domain.RelSelf)
	is.Equal(cols.Links[0].Href, baseURL+"/collections")
	is.Equal(cols.Links[1].Href, baseURL+"/collections/devices")
	is.Equal(cols.Links[2].Href, baseURL+"/collections/weather_stations")
	is.Equal(cols.Links[2].Rel, domain.RelItem)
}

func TestThatACollectionLinksToItsItems(t *testing.T) {
	is, c := testSetup(t)

	col, err := c.Register("Weather Stations", "")
	is.NoErr(err)

	is.Equal(len(col.Links), 1)
	is.Equal(col.Links[0].Href, baseURL+"/collections/weather_stations/items")
	is.Equal(col.Links[0].Rel, domain.RelItem)
	is.Equal(col.Links[0].Type, domain.MediaTypeGeoJSON)
}

func TestLookupOfCollectionByName(t *testing.T) {
	is, c := testSetup(t)

	_, err := c.Register("Devices", "All the devices")
	is.NoErr(err)

	col, err := c.Collection("devices")
	is.NoErr(err)
	is.Equal(col.Title, "Devices")
	is.Equal(col.Description, "All the devices")

	_, err = c.Collection("Devices")
	is.True(errors.Is(err, ErrNoSuchCollection)) // lookup should be case sensitive

	_, err = c.Collection("unknown")
	is.True(errors.Is(err, ErrNoSuchCollection))
}

func TestThatDuplicateNamesAreRejected(t *testing.T) {
	is, c := testSetup(t)

	_, err := c.Register("Weather Stations", "")
	is.NoErr(err)

	_, err = c.Register("weather stations", "")
	is.True(errors.Is(err, ErrDuplicateCollection)) // titles that map to the same name should be rejected

	cols := c.Collections()
	is.Equal(len(cols.Collections), 1)
	is.Equal(len(cols.Links), 2)
}

func TestThatNamesThatAreNotURLSafeAreRejected(t *testing.T) {
	is, c := testSetup(t)

	for _, title := range []string{"A/B", "C++", "Vattentemperatur °C", "What?", "50%", "", ".."} {
		_, err := c.Register(title, "")
		is.True(errors.Is(err, ErrInvalidName)) // title should not produce a collection
	}

	is.Equal(len(c.Collections().Collections), 0)
}

func TestThatUnreservedCharactersAreAllowedInNames(t *testing.T) {
	is, c := testSetup(t)

	col, err := c.Register("Water-Level v1.2~beta", "")
	is.NoErr(err)
	is.Equal(col.Name, "water-level_v1.2~beta")
	is.Equal(col.Links[0].Href, baseURL+"/collections/water-level_v1.2~beta/items")
}

func TestThatCollectionsReturnsACopy(t *testing.T) {
	is, c := testSetup(t)

	_, err := c.Register("Devices", "")
	is.NoErr(err)

	cols := c.Collections()
	cols.Collections[0].Name = "tampered"
	cols.Links = append(cols.Links, domain.Link{})

	_, err = c.Collection("devices")
	is.NoErr(err) // catalog state should not be changed through a snapshot
	is.Equal(len(c.Collections().Links), 2)
}

func TestLandingLinks(t *testing.T) {
	is, c := testSetup(t)

	l := c.Landing()

	is.Equal(l.Title, "Features")
	is.Equal(len(l.Links), 4)

	expected := []struct{ href, rel, mediaType string }{
		{baseURL + "/", domain.RelSelf, domain.MediaTypeJSON},
		{baseURL + "/collections", domain.RelData, domain.MediaTypeJSON},
		{baseURL + "/conformance", domain.RelConformance, domain.MediaTypeJSON},
		{baseURL + "/api", domain.RelServiceDesc, domain.MediaTypeOpenAPI},
	}

	for i, e := range expected {
		is.Equal(l.Links[i].Href, e.href)
		is.Equal(l.Links[i].Rel, e.rel)
		is.Equal(l.Links[i].Type, e.mediaType)
	}
}

func TestConformance(t *testing.T) {
	is, c := testSetup(t)

	conf := c.Conformance()
	is.Equal(len(conf.ConformsTo), 3)
	is.Equal(conf.ConformsTo[0], "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core")
}

func TestNameFromTitle(t *testing.T) {
	is := is.New(t)

	is.Equal(NameFromTitle("Devices"), "devices")
	is.Equal(NameFromTitle("Air Quality Sensors"), "air_quality_sensors")
}

func testSetup(t *testing.T) (*is.I, Catalog) {
	is := is.New(t)
	return is, New(baseURL, "Features", "Sensor data as OGC API features")
}
