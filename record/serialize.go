package record

import (
	"encoding/json"
	"fmt"
)

// ToObject flattens an entity into a plain map following json tags.
// Nested entity fields and slices of entities flatten recursively, so
// an entity saved with a resolved object graph attached serializes the
// whole graph. Extra attributes are merged in last without overwriting
// declared fields.
func ToObject(e Resource) (map[string]any, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("record: serialize %s: %w", e.ResourceName(), err)
	}
	out := make(map[string]any)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("record: serialize %s: %w", e.ResourceName(), err)
	}
	if ent, ok := e.(Entity); ok {
		for k, v := range ent.model().Extra {
			if _, declared := out[k]; !declared {
				out[k] = v
			}
		}
	}
	return out, nil
}
