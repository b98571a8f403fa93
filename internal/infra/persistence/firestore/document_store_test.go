package firestore

import (
	"testing"

	"mallconsole/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
)

func TestEncodeFields(t *testing.T) {
	fields := map[string]any{
		"name":      "Alpha Coffee",
		"createdAt": repository.ServerTimestamp,
		"tags":      []string{"hot"},
	}

	got := encodeFields(fields)

	assert.Equal(t, firestore.ServerTimestamp, got["createdAt"])
	assert.Equal(t, "Alpha Coffee", got["name"])
	assert.Equal(t, []string{"hot"}, got["tags"])
	assert.Equal(t, repository.ServerTimestamp, fields["createdAt"])
}
