package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierLifecycle(t *testing.T) {
	owner := &struct{ name string }{"pentagon"}

	id := IdentifierAquireNewID(owner)
	other := IdentifierAquireNewID(owner)
	assert.NotEqual(t, id, other)
	assert.Same(t, owner, IdentifierOwner(id))

	require.NoError(t, IdentifierReleaseID(id))
	assert.Nil(t, IdentifierOwner(id))
	assert.Error(t, IdentifierReleaseID(id))
	require.NoError(t, IdentifierReleaseID(other))
}
