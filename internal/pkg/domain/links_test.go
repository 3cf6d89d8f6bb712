package domain

import (
	"testing"

	"github.com/matryer/is"
)

const baseURL string = "http://features.diwise.io"

func TestThatRelativePathsArePrefixedWithBaseURL(t *testing.T) {
	is := is.New(t)

	link := NewLink(baseURL, "/collections", RelData, MediaTypeJSON)

	is.Equal(link.Href, "http://features.diwise.io/collections")
	is.Equal(link.Rel, RelData)
	is.Equal(link.Type, MediaTypeJSON)
	is.Equal(link.Title, RelData) // title should default to the relation
}

func TestThatAbsoluteURLsAreKeptAsIs(t *testing.T) {
	is := is.New(t)

	for _, u := range []string{"https://example.com/api", "http://10.0.0.245:5000/", "ftp://files.example.com/x"} {
		link := NewLink(baseURL, u, RelServiceDesc, MediaTypeOpenAPI)
		is.Equal(link.Href, u) // absolute urls should pass through unchanged
	}
}

func TestThatPathsWithoutSchemeAreNotTreatedAsAbsolute(t *testing.T) {
	is := is.New(t)

	link := NewLink(baseURL, "/collections/http_devices", RelItem, MediaTypeJSON)
	is.Equal(link.Href, baseURL+"/collections/http_devices")
}
