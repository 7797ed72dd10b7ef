package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s, err := New("  ana ")
	require.NoError(t, err)
	assert.Equal(t, "ana", s.Username)

	_, err = New(" ")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)

	ctx := WithContext(context.Background(), Context{Username: "ana"})
	s, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana", s.Username)
}
