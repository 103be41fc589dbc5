package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNoPayload = errors.New("response did not contain the expected payload")

// decodeList accepts a bare JSON array or an envelope holding the array under
// "data" or one of keys.
func decodeList[T any](data []byte, keys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	list := []T{}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	for _, k := range append([]string{"data"}, keys...) {
		raw, ok := envelope[k]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		if list == nil {
			list = []T{}
		}
		return list, nil
	}
	return nil, errNoPayload
}

// decodeOne accepts the object itself or an envelope holding it under "data"
// or one of keys.
func decodeOne[T any](data []byte, keys ...string) (*T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNoPayload
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	for _, k := range append([]string{"data"}, keys...) {
		raw, ok := envelope[k]
		if !ok || len(bytes.TrimSpace(raw)) == 0 || bytes.TrimSpace(raw)[0] != '{' {
			continue
		}
		trimmed = raw
		break
	}
	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
