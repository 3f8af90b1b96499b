package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/gearbay/pkg/store"
)

func TestOidParsesHexIDs(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := oid(want.Hex())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOidRejectsMalformedIDsAsNotFound(t *testing.T) {
	for _, id := range []string{"", "not-hex", "abc123"} {
		_, err := oid(id)
		assert.ErrorIs(t, err, store.ErrNotFound, "id %q", id)
	}
}
