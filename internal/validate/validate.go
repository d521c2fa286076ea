package validate

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the expected primitive type of a schema field.
type Kind int

const (
	String Kind = iota
	Number
)

func (k Kind) String() string {
	if k == Number {
		return "number"
	}
	return "string"
}

// Schema declares the exact shape of a request body: every listed field is
// required and must match its kind, and no other keys are allowed.
type Schema map[string]Kind

// Schemas for the three record kinds accepted over HTTP.
var (
	Butterfly = Schema{
		"commonName": String,
		"species":    String,
		"article":    String,
	}

	User = Schema{
		"username": String,
	}

	Rating = Schema{
		"id":        String,
		"rating":    Number,
		"butterfly": String,
	}
)

// Error aggregates every violation found in a single payload.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return "invalid request body: " + strings.Join(e.Violations, "; ")
}

// Validate checks a decoded JSON object against the schema. It collects all
// problems (missing fields, wrong types, unrecognized keys) before failing so
// a caller can report the full set at once.
func (s Schema) Validate(body map[string]any) error {
	var violations []string

	fields := make([]string, 0, len(s))
	for name := range s {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	for _, name := range fields {
		kind := s[name]
		v, ok := body[name]
		if !ok {
			violations = append(violations, fmt.Sprintf("%s is required", name))
			continue
		}
		switch kind {
		case String:
			if _, ok := v.(string); !ok {
				violations = append(violations, fmt.Sprintf("%s must be a string", name))
			}
		case Number:
			// encoding/json decodes every JSON number into float64
			if _, ok := v.(float64); !ok {
				violations = append(violations, fmt.Sprintf("%s must be a number", name))
			}
		}
	}

	var extras []string
	for key := range body {
		if _, ok := s[key]; !ok {
			extras = append(extras, key)
		}
	}
	if len(extras) > 0 {
		sort.Strings(extras)
		violations = append(violations, "invalid keys: "+strings.Join(extras, ", "))
	}

	if len(violations) > 0 {
		return &Error{Violations: violations}
	}
	return nil
}
