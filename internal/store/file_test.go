package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/butterflyhouse/butterfly-api/internal/models"
)

func TestFileBackend_LoadMissingFile(t *testing.T) {
	backend := NewFileBackend(filepath.Join(t.TempDir(), "db.json"))
	doc, err := backend.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, doc.Butterflies)
	require.NotNil(t, doc.Users)
	require.Empty(t, doc.Butterflies)
	require.Empty(t, doc.Users)
}

func TestFileBackend_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	backend := NewFileBackend(path)
	ctx := context.Background()

	doc := emptyDocument()
	doc.Butterflies = append(doc.Butterflies, models.Butterfly{
		ID: "bf1", CommonName: "Monarch", Species: "Danaus plexippus", Article: "https://example.com/monarch",
	})
	doc.Users = append(doc.Users, models.User{ID: "u1", Username: "flutter"})
	require.NoError(t, backend.Save(ctx, doc))

	got, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, doc, got)
}

func TestFileBackend_TopLevelShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	backend := NewFileBackend(path)
	require.NoError(t, backend.Save(context.Background(), emptyDocument()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	// exactly two top-level fields, both arrays (never null)
	require.Len(t, m, 2)
	require.JSONEq(t, `[]`, string(m["butterflies"]))
	require.JSONEq(t, `[]`, string(m["users"]))
}

func TestFileBackend_SeededFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	seed := `{
	  "butterflies": [{"id":"wxyz987","commonName":"Brimstone","species":"Gonepteryx rhamni","article":"https://example.com/brimstone"}],
	  "users": [{"id":"abcd123","username":"iluvbutterflies","butterflyRatings":[{"butterfly":"Brimstone","rating":5}]}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	doc, err := NewFileBackend(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Butterflies, 1)
	require.Equal(t, "Brimstone", doc.Butterflies[0].CommonName)
	require.Len(t, doc.Users, 1)
	require.Equal(t, []models.Rating{{Butterfly: "Brimstone", Rating: 5}}, doc.Users[0].ButterflyRatings)
}
