package encrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)
	assert.True(t, VerifyPassword(hash, "s3cretpass"))
	assert.False(t, VerifyPassword(hash, "wrongpass1"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cretpass"))
}
