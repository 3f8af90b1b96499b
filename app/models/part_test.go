package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// The image URL is written by part updates and read back by the catalog
// and graph layers under the single key "img"; a drifting tag orphans
// stored values.
func TestPartImageStoredUnderImgKey(t *testing.T) {
	part := Part{Title: "alternator", ImageURL: "https://cdn.example.com/alt.jpg"}

	raw, err := bson.Marshal(part)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "https://cdn.example.com/alt.jpg", doc["img"])

	var decoded Part
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, part.ImageURL, decoded.ImageURL)

	out, err := json.Marshal(part)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"img"`)
}
