package firebase

import (
	"context"
	"path/filepath"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFirebaseRequiresCredentials(t *testing.T) {
	_, err := InitFirebase(context.Background(), "")
	assert.Error(t, err)

	_, err = InitFirebase(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "not found")
}

func TestIdentityFromToken(t *testing.T) {
	id, err := IdentityFromToken(&auth.Token{
		UID: "uid-1",
		Claims: map[string]interface{}{
			"email":   " Chef@Example.com ",
			"name":    "Gordon",
			"picture": "https://example.com/p.png",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, &Identity{UID: "uid-1", Email: "chef@example.com", Name: "Gordon", Picture: "https://example.com/p.png"}, id)

	_, err = IdentityFromToken(&auth.Token{UID: "uid-2", Claims: map[string]interface{}{"name": "x"}})
	assert.Error(t, err)

	_, err = IdentityFromToken(nil)
	assert.Error(t, err)
}
