package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "Ada", "Lovelace")
	require.NoError(t, err)

	tests := []struct {
		first, last string
		want        bool
	}{
		{"Ada", "Lovelace", true},
		{"ada", "Lovelace", false},
		{"Ada", "lovelace", false},
		{"Ada", "", false},
		{"Grace", "Hopper", false},
	}

	for _, tt := range tests {
		got, err := s.IsUser(ctx, tt.first, tt.last)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "IsUser(%q, %q)", tt.first, tt.last)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "Ada", "Lovelace")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, "Ada", "Lovelace")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = s.CreateUser(ctx, "", "Lovelace")
	assert.Error(t, err)
}

func TestListAndDeleteUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "Grace", "Hopper")
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, "Ada", "Lovelace")
	require.NoError(t, err)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Hopper", users[0].LastName)
	assert.Equal(t, "Lovelace", users[1].LastName)

	require.NoError(t, s.DeleteUser(ctx, "Grace", "Hopper"))
	assert.ErrorIs(t, s.DeleteUser(ctx, "Grace", "Hopper"), ErrUserNotFound)

	ok, err := s.IsUser(ctx, "Grace", "Hopper")
	require.NoError(t, err)
	assert.False(t, ok)
}
