package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestButterflySchema(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr []string
	}{
		{
			name: "valid",
			body: `{"commonName":"Zebra Swallowtail","species":"Protographium marcellus","article":"https://example.com/zebra"}`,
		},
		{
			name:    "missing field",
			body:    `{"commonName":"Boop","species":"Boopi beepi"}`,
			wantErr: []string{"article is required"},
		},
		{
			name:    "wrong type",
			body:    `{"commonName":42,"species":"x","article":"y"}`,
			wantErr: []string{"commonName must be a string"},
		},
		{
			name:    "extra key",
			body:    `{"commonName":"a","species":"b","article":"c","color":"blue"}`,
			wantErr: []string{"invalid keys: color"},
		},
		{
			name:    "aggregates all violations",
			body:    `{"species":7,"extra":true}`,
			wantErr: []string{"commonName is required", "article is required", "species must be a string", "invalid keys: extra"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Butterfly.Validate(decode(t, tt.body))
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *Error
			require.ErrorAs(t, err, &verr)
			for _, want := range tt.wantErr {
				require.Contains(t, verr.Violations, want)
			}
			require.Len(t, verr.Violations, len(tt.wantErr))
		})
	}
}

func TestUserSchema(t *testing.T) {
	require.NoError(t, User.Validate(decode(t, `{"username":"iluvbutterflies"}`)))

	err := User.Validate(decode(t, `{}`))
	require.Error(t, err)

	// the user schema must not accept rating payloads
	err = User.Validate(decode(t, `{"id":"abc","rating":4,"butterfly":"Monarch"}`))
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Violations, "username is required")
	require.Contains(t, verr.Violations, "invalid keys: butterfly, id, rating")
}

func TestRatingSchema(t *testing.T) {
	require.NoError(t, Rating.Validate(decode(t, `{"id":"abc","rating":4,"butterfly":"Monarch"}`)))
	require.NoError(t, Rating.Validate(decode(t, `{"id":"abc","rating":4.5,"butterfly":"Monarch"}`)))

	err := Rating.Validate(decode(t, `{"id":"abc","rating":"four","butterfly":"Monarch"}`))
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"rating must be a number"}, verr.Violations)

	err = Rating.Validate(decode(t, `{"rating":2}`))
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Violations, "butterfly is required")
	require.Contains(t, verr.Violations, "id is required")
}

func TestErrorMessage(t *testing.T) {
	err := Rating.Validate(map[string]any{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid request body")
}
