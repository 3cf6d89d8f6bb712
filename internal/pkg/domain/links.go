package domain

import (
	"net/url"
)

const (
	RelSelf        string = "self"
	RelData        string = "data"
	RelConformance string = "conformance"
	RelServiceDesc string = "service-desc"
	RelItem        string = "item"
)

const (
	MediaTypeJSON       string = "application/json"
	MediaTypeGeoJSON    string = "application/geo+json"
	MediaTypeOpenAPI    string = "application/vnd.oai.openapi+json;version=3.0"
	MediaTypeFlatGeobuf string = "application/flatgeobuf"
)

// Link is a hypermedia reference to another resource
type Link struct {
	Href  string `json:"href"`
	Rel   string `json:"rel"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// NewLink returns a link to path. Paths that already are absolute URLs are kept as is,
// anything else is appended to baseURL. The title of the link is its relation.
func NewLink(baseURL, path, rel, mediaType string) Link {
	href := path
	if !isAbsoluteURL(path) {
		href = baseURL + path
	}

	return Link{
		Href:  href,
		Rel:   rel,
		Type:  mediaType,
		Title: rel,
	}
}

func isAbsoluteURL(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}
	return u.IsAbs()
}
