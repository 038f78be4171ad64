// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presets

import (
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/trade-journal/models"
)

// Parse decodes a presets document.
//
// The document must be a JSON object. Each of bull_points, bear_points,
// tr_points and bias_points is handled on its own: a value that is not an
// array, or an array with no non-blank entries, is replaced by the built-in
// default for that kind and reported in the returned defaulted list.
// Array entries are converted to text and trimmed: strings as they are,
// numbers exactly as written in the file (1.0 stays "1.0"), booleans as
// "true" or "false". null entries, nested arrays and objects carry no label
// text and are dropped together with blank entries.
//
// The document must be valid UTF-8. When a key appears more than once the
// last occurrence is used.
func Parse(data []byte) (models.PresetSet, []models.Kind, error) {
	if !utf8.Valid(data) || !gjson.ValidBytes(data) {
		return models.PresetSet{}, nil, ErrMalformedJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return models.PresetSet{}, nil, ErrNotAnObject
	}

	values := lastValues(root)

	set := models.PresetSet{}
	var defaulted []models.Kind
	for _, kind := range models.Kinds {
		labels, ok := normalizeLabels(values[kind.PresetKey()])
		if !ok {
			labels = DefaultLabels(kind)
			defaulted = append(defaulted, kind)
		}
		set = set.With(kind, labels)
	}

	return set, defaulted, nil
}

// normalizeLabels returns the trimmed non-empty entries of an array value.
// ok is false when v is not an array or has nothing left after trimming.
func normalizeLabels(v gjson.Result) ([]string, bool) {
	if !v.IsArray() {
		return nil, false
	}

	labels := make([]string, 0, len(v.Array()))
	v.ForEach(func(_, item gjson.Result) bool {
		if label := strings.TrimSpace(entryText(item)); label != "" {
			labels = append(labels, label)
		}
		return true
	})

	if len(labels) == 0 {
		return nil, false
	}

	return labels, true
}

// lastValues maps every top-level key to its last occurrence in the object.
func lastValues(root gjson.Result) map[string]gjson.Result {
	values := make(map[string]gjson.Result, len(models.Kinds))
	root.ForEach(func(key, value gjson.Result) bool {
		values[key.String()] = value
		return true
	})
	return values
}

func entryText(item gjson.Result) string {
	switch item.Type {
	case gjson.String:
		return item.Str
	case gjson.Number:
		return item.Raw
	case gjson.True, gjson.False:
		return item.String()
	default:
		return ""
	}
}
