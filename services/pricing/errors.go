package pricing

import (
	"fmt"
	"sort"
	"strings"
)

// CatalogValidationError lists every invalid entry of a submitted catalog.
type CatalogValidationError struct {
	Fields map[string]string
}

func (e *CatalogValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid pricing catalog: " + strings.Join(parts, "; ")
}
