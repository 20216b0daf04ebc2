// Package placeholder substitutes %name% tokens in answer and widget
// templates. Each call is a single pass over one map: values that themselves
// contain tokens are not expanded again.
package placeholder

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Token returns the placeholder token for name, e.g. Token("name") == "%name%".
func Token(name string) string {
	return "%" + name + "%"
}

// Apply replaces every %key% in s with the stringified value of data[key].
// Keys are applied in sorted order so results do not depend on map iteration.
func Apply(s string, data map[string]any) (string, error) {
	for _, key := range sortedKeys(data) {
		value, err := Stringify(data[key])
		if err != nil {
			return "", fmt.Errorf("stringifying %q: %w", key, err)
		}
		s = strings.ReplaceAll(s, Token(key), value)
	}
	return s, nil
}

// Replace is Apply for callers that cannot fail: values that cannot be
// stringified fall back to their %v formatting.
func Replace(s string, data map[string]any) string {
	for _, key := range sortedKeys(data) {
		value, err := Stringify(data[key])
		if err != nil {
			value = fmt.Sprintf("%v", data[key])
		}
		s = strings.ReplaceAll(s, Token(key), value)
	}
	return s
}

// Stringify renders a substitution value. Scalars use their natural text
// form; nil is "null"; maps, slices and structs are JSON encoded.
func Stringify(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "null", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case json.Number:
		return val.String(), nil
	case fmt.Stringer:
		return val.String(), nil
	case error:
		return val.Error(), nil
	}

	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func sortedKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
