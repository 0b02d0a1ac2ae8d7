// Package decode converts loosely typed JSON objects, such as model output
// parsed into map[string]any, into typed structs.
package decode

import "encoding/json"

// FromMap decodes data into T through its JSON tags.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}

// Missing returns the keys absent from data or holding null.
func Missing(data map[string]any, keys ...string) []string {
	var missing []string
	for _, k := range keys {
		if v, ok := data[k]; !ok || v == nil {
			missing = append(missing, k)
		}
	}
	return missing
}
