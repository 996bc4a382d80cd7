package service

import (
	"encoding/json"

	"github.com/danielGPGT/pandora-backend/internal/repository"
)

// snapshot converts an entity into the generic map form stored in audit
// old_values/new_values columns.
func snapshot(v any) map[string]any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil
	}
	return values
}

func splitPairs(pairs []repository.NameSlug) (names []string, slugs []string) {
	names = make([]string, 0, len(pairs))
	slugs = make([]string, 0, len(pairs))
	for _, p := range pairs {
		names = append(names, p.Name)
		slugs = append(slugs, p.Slug)
	}
	return names, slugs
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
