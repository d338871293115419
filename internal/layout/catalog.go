package layout

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/slide-redesigner/internal/schemas"
	"github.com/jonathan/slide-redesigner/internal/types"
	rootschemas "github.com/jonathan/slide-redesigner/schemas"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.json
var templateFiles embed.FS

// Catalog maps layout names to immutable templates.
type Catalog struct {
	templates map[string]*types.LayoutTemplate
}

var (
	defaultCatalog    *Catalog
	defaultCatalogErr error
	defaultOnce       sync.Once
)

// LoadDefaultCatalog returns the built-in catalog. It is parsed once and shared.
func LoadDefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = loadEmbedded()
	})
	return defaultCatalog, defaultCatalogErr
}

// LoadCatalog returns the built-in catalog overlaid with every .json, .yaml
// and .yml template found in dir. An empty dir yields the built-in catalog.
func LoadCatalog(dir string) (*Catalog, error) {
	base, err := LoadDefaultCatalog()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return base, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &TemplateError{Source: dir, Message: "failed to read templates directory", Cause: err}
	}

	c := &Catalog{templates: make(map[string]*types.LayoutTemplate, len(base.templates))}
	for name, t := range base.templates {
		c.templates[name] = t
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &TemplateError{Source: path, Message: "failed to read template", Cause: err}
		}
		t, err := ParseTemplate(path, data)
		if err != nil {
			return nil, err
		}
		c.templates[t.Name] = t
	}
	return c, nil
}

// NewCatalog builds a catalog from already-parsed templates, validating each.
func NewCatalog(templates ...*types.LayoutTemplate) (*Catalog, error) {
	c := &Catalog{templates: make(map[string]*types.LayoutTemplate, len(templates))}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, &TemplateError{Source: t.Name, Message: "invalid template", Cause: err}
		}
		c.templates[t.Name] = t
	}
	return c, nil
}

// ParseTemplate decodes a JSON or YAML template document (chosen by the
// extension of source) and validates it.
func ParseTemplate(source string, data []byte) (*types.LayoutTemplate, error) {
	var t types.LayoutTemplate
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, &TemplateError{Source: source, Message: "failed to parse YAML", Cause: err}
		}
		if err := schemas.ValidateValue(rootschemas.LayoutTemplate, &t); err != nil {
			return nil, &TemplateError{Source: source, Message: "schema validation failed", Cause: err}
		}
	default:
		if err := schemas.ValidateDocument(rootschemas.LayoutTemplate, data); err != nil {
			return nil, &TemplateError{Source: source, Message: "schema validation failed", Cause: err}
		}
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, &TemplateError{Source: source, Message: "failed to parse JSON", Cause: err}
		}
	}

	if err := t.Validate(); err != nil {
		return nil, &TemplateError{Source: source, Message: "invalid template", Cause: err}
	}
	return &t, nil
}

// Get returns the template for name. The returned template must not be modified.
func (c *Catalog) Get(name string) (*types.LayoutTemplate, error) {
	t, ok := c.templates[name]
	if !ok {
		return nil, &UnknownLayoutError{Name: name}
	}
	return t, nil
}

// Names returns the catalog's layout names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

func loadEmbedded() (*Catalog, error) {
	entries, err := templateFiles.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %w", err)
	}
	c := &Catalog{templates: make(map[string]*types.LayoutTemplate, len(entries))}
	for _, entry := range entries {
		path := "templates/" + entry.Name()
		data, err := templateFiles.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded template %s: %w", path, err)
		}
		t, err := ParseTemplate(path, data)
		if err != nil {
			return nil, err
		}
		c.templates[t.Name] = t
	}
	return c, nil
}
