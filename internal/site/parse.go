package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrParse matches every failure to turn a completion into a Site.
	ErrParse = errors.New("could not parse model response")
	// ErrNoJSON means no {...} span was found in the completion.
	ErrNoJSON = fmt.Errorf("%w: no json object found", ErrParse)
	// ErrDecode means the candidate span is not a decodable object.
	ErrDecode = fmt.Errorf("%w: invalid json object", ErrParse)
)

// objectSpan runs from the first '{' to the last '}' across newlines. A '}' in
// prose after the payload widens the span and fails decoding.
var objectSpan = regexp.MustCompile(`(?s)\{.*\}`)

// Parse extracts the site bundle embedded in a raw completion, tolerating
// markdown fences or chatter around the object. Keys match exactly.
func Parse(raw string) (Site, error) {
	span := objectSpan.FindString(raw)
	if span == "" {
		return Site{}, ErrNoJSON
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &fields); err != nil {
		return Site{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	s := Site{HTML: FallbackHTML}
	targets := []struct {
		key string
		dst *string
	}{{"html", &s.HTML}, {"css", &s.CSS}, {"js", &s.JS}}
	for _, t := range targets {
		if err := decodeField(fields, t.key, t.dst); err != nil {
			return Site{}, err
		}
	}
	return s, nil
}

// decodeField leaves dst untouched when key is absent or null.
func decodeField(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: field %s: %v", ErrDecode, key, err)
	}
	if v != nil {
		*dst = *v
	}
	return nil
}
