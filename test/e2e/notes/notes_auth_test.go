package notes_test

import (
	"testing"

	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	baseURL := setupNotesContainer(t)
	ctx := t.Context()

	client, user := signupUser(t, baseURL, "alice")

	t.Run("signup starts a session", func(t *testing.T) {
		me, err := client.AuthCheck(ctx)
		require.NoError(t, err)
		require.Equal(t, user.ID, me.ID)
	})

	t.Run("logout ends the session", func(t *testing.T) {
		require.NoError(t, client.Logout(ctx))

		_, err := client.AuthCheck(ctx)
		require.True(t, notesdk.IsUnauthorized(err), "got %v", err)
	})

	t.Run("login restores access", func(t *testing.T) {
		me, err := client.Login(ctx, notesdk.LoginRequest{Email: user.Email, Password: testPassword})
		require.NoError(t, err)
		require.Equal(t, user.ID, me.ID)

		_, err = client.ListFolders(ctx)
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		other := newClient(t, baseURL)
		_, err := other.Login(ctx, notesdk.LoginRequest{Email: user.Email, Password: "not-it"})
		require.True(t, notesdk.IsBadRequest(err), "got %v", err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		other := newClient(t, baseURL)
		_, err := other.Signup(ctx, notesdk.SignupRequest{
			Username: "someoneelse" + user.Username,
			Email:    user.Email,
			Password: testPassword,
		})
		require.True(t, notesdk.IsBadRequest(err), "got %v", err)
	})

	t.Run("anonymous requests are rejected", func(t *testing.T) {
		anon := newClient(t, baseURL)
		_, err := anon.ListNotes(ctx, "")
		require.True(t, notesdk.IsUnauthorized(err), "got %v", err)
	})
}

func TestProfileUpdate(t *testing.T) {
	baseURL := setupNotesContainer(t)
	ctx := t.Context()

	client, user := signupUser(t, baseURL, "bob")
	_, other := signupUser(t, baseURL, "carol")

	updated, err := client.UpdateProfile(ctx, notesdk.UpdateProfileRequest{
		Bio: notesdk.Some("writes things down"),
	})
	require.NoError(t, err)
	require.Equal(t, "writes things down", updated.Bio)
	require.Equal(t, user.Username, updated.Username)

	_, err = client.UpdateProfile(ctx, notesdk.UpdateProfileRequest{
		Username: notesdk.Some(other.Username),
	})
	require.True(t, notesdk.IsBadRequest(err), "got %v", err)

	profile, err := client.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, user.Username, profile.Username)
}
