// Package category maps a test-artifact category tag to its REST resource
// paths and export conventions. All three categories share the same URL
// grammar, so views resolve paths here once instead of re-checking the tag
// at every call site.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies one of the three fixed test-artifact kinds.
type Category string

const (
	ActionBased Category = "action-based"
	Gherkin     Category = "gherkin"
	Traditional Category = "traditional"
)

// Format is an export file format.
type Format string

const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatZip     Format = "zip"
	FormatFeature Format = "feature"
)

// ErrInvalidCategory is returned for a tag outside the fixed set, before
// any request is issued.
var ErrInvalidCategory = errors.New("invalid category")

type routes struct {
	label    string
	resource string
	listPath string
	formats  []Format
}

var table = map[Category]routes{
	ActionBased: {
		label:    "Test Cases",
		resource: "test-cases",
		listPath: "test-cases",
		formats:  []Format{FormatJSON, FormatZip},
	},
	Gherkin: {
		label:    "Gherkin Features",
		resource: "gherkin-features",
		listPath: "gherkin-features",
		formats:  []Format{FormatFeature, FormatJSON},
	},
	Traditional: {
		label:    "Traditional Suites",
		resource: "traditional-suites",
		listPath: "traditional-suites",
		formats:  []Format{FormatJSON, FormatCSV},
	},
}

// All returns the categories in display order.
func All() []Category {
	return []Category{ActionBased, Gherkin, Traditional}
}

// Parse validates a raw tag.
func Parse(tag string) (Category, error) {
	c := Category(strings.TrimSpace(strings.ToLower(tag)))
	if _, ok := table[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, tag)
	}
	return c, nil
}

// Valid reports whether the tag names a known category.
func (c Category) Valid() bool {
	_, ok := table[c]
	return ok
}

// Label returns the human-readable name used in tab and list headers.
func (c Category) Label() string {
	return table[c].label
}

// ListPath returns the project-scoped listing endpoint.
func (c Category) ListPath(projectID string) (string, error) {
	r, ok := table[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
	}
	return fmt.Sprintf("/api/projects/%s/%s", projectID, r.listPath), nil
}

// ItemPath returns the per-item CRUD endpoint.
func (c Category) ItemPath(itemID string) (string, error) {
	r, ok := table[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
	}
	return fmt.Sprintf("/api/%s/%s", r.resource, itemID), nil
}

// MovePath returns the endpoint that reassigns an item's folder.
func (c Category) MovePath(itemID string) (string, error) {
	r, ok := table[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
	}
	return fmt.Sprintf("/api/%s/%s/move", r.resource, itemID), nil
}

// ExportPath returns the export endpoint for the given format.
func (c Category) ExportPath(itemID string, format Format) (string, error) {
	r, ok := table[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
	}
	if !c.supports(format) {
		return "", fmt.Errorf("category %s does not export %s", c, format)
	}
	return fmt.Sprintf("/api/%s/%s/export?format=%s", r.resource, itemID, format), nil
}

// ExportFormats returns the formats the category can export.
func (c Category) ExportFormats() []Format {
	return table[c].formats
}

func (c Category) supports(format Format) bool {
	for _, f := range table[c].formats {
		if f == format {
			return true
		}
	}
	return false
}

// ExportFilename derives the download filename for an item: whitespace in
// the name becomes underscores, then the format extension is appended.
// Collisions are not deduplicated; the last write wins.
func ExportFilename(name string, format Format) string {
	return strings.Join(strings.Fields(name), "_") + "." + string(format)
}
