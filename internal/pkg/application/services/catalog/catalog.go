package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/diwise/api-features/internal/pkg/domain"
	"golang.org/x/exp/slices"
)

var (
	ErrNoSuchCollection    = errors.New("no such collection")
	ErrDuplicateCollection = errors.New("collection already registered")
	ErrInvalidName         = errors.New("collection name is not url safe")
)

var conformanceClasses []string = []string{
	"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
	"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/geojson",
	"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/oas30",
}

//go:generate moq -rm -out catalog_mock.go . Catalog
type Catalog interface {
	Landing() domain.Landing
	Conformance() domain.Conformance

	Collections() domain.Collections
	Collection(name string) (domain.Collection, error)

	Register(title, description string) (domain.Collection, error)
}

func New(baseURL, title, description string) Catalog {
	return &catalog{
		baseURL: baseURL,
		landing: domain.Landing{
			Title:       title,
			Description: description,
			Links: []domain.Link{
				domain.NewLink(baseURL, "/", domain.RelSelf, domain.MediaTypeJSON),
				domain.NewLink(baseURL, "/collections", domain.RelData, domain.MediaTypeJSON),
				domain.NewLink(baseURL, "/conformance", domain.RelConformance, domain.MediaTypeJSON),
				domain.NewLink(baseURL, "/api", domain.RelServiceDesc, domain.MediaTypeOpenAPI),
			},
		},
		collections: []domain.Collection{},
		links: []domain.Link{
			domain.NewLink(baseURL, "/collections", domain.RelSelf, domain.MediaTypeJSON),
		},
	}
}

// NameFromTitle derives the url path segment of a collection from its title
func NameFromTitle(title string) string {
	return strings.ToLower(strings.ReplaceAll(title, " ", "_"))
}

// IsURLSafe reports whether name consists only of unreserved url characters and can
// be used as a single path segment without escaping
func IsURLSafe(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '.' || r == '_' || r == '~':
		default:
			return false
		}
	}

	return true
}

type catalog struct {
	baseURL string
	landing domain.Landing

	mu          sync.RWMutex
	collections []domain.Collection
	links       []domain.Link
}

func (c *catalog) Landing() domain.Landing {
	return c.landing
}

func (c *catalog) Conformance() domain.Conformance {
	return domain.Conformance{ConformsTo: slices.Clone(conformanceClasses)}
}

func (c *catalog) Collections() domain.Collections {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.Collections{
		Links:       slices.Clone(c.links),
		Collections: slices.Clone(c.collections),
	}
}

func (c *catalog) Collection(name string) (domain.Collection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(name)
	if idx < 0 {
		return domain.Collection{}, fmt.Errorf("%w: %s", ErrNoSuchCollection, name)
	}

	return c.collections[idx], nil
}

func (c *catalog) Register(title, description string) (domain.Collection, error) {
	name := NameFromTitle(title)
	if !IsURLSafe(name) {
		return domain.Collection{}, fmt.Errorf("%w: %q (from title %q)", ErrInvalidName, name, title)
	}

	col := domain.Collection{
		Name:        name,
		Title:       title,
		Description: description,
		Links: []domain.Link{
			domain.NewLink(c.baseURL, "/collections/"+name+"/items", domain.RelItem, domain.MediaTypeGeoJSON),
		},
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(name) >= 0 {
		return domain.Collection{}, fmt.Errorf("%w: %s (from title %q)", ErrDuplicateCollection, name, title)
	}

	c.collections = append(c.collections, col)
	c.links = append(c.links, domain.NewLink(c.baseURL, "/collections/"+name, domain.RelItem, domain.MediaTypeJSON))

	return col, nil
}

func (c *catalog) indexOf(name string) int {
	return slices.IndexFunc(c.collections, func(col domain.Collection) bool {
		return col.Name == name
	})
}
