package optscale_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
	"github.com/stretchr/testify/require"
)

func TestUserToken(t *testing.T) {
	ctx := context.Background()

	t.Run("returns token for the requested user", func(t *testing.T) {
		fp := newFakeProvider(t, routes(t, map[string]http.HandlerFunc{
			"POST /auth/v2/tokens": tokenFor("U", "T"),
		}))

		token, err := optscale.NewAuthClient(fp.client()).UserToken(ctx, "U", "admin-secret")
		require.NoError(t, err)
		require.Equal(t, "T", token)

		reqs := fp.Requests()
		require.Len(t, reqs, 1)
		require.Equal(t, "admin-secret", reqs[0].Header.Get("Secret"))
		require.Empty(t, reqs[0].Header.Get("Authorization"))
		require.Equal(t, "U", reqs[0].Body["user_id"])
	})

	t.Run("user id mismatch", func(t *testing.T) {
		fp := newFakeProvider(t, routes(t, map[string]http.HandlerFunc{
			"POST /auth/v2/tokens": tokenFor("U2", "T"),
		}))

		token, err := optscale.NewAuthClient(fp.client()).UserToken(ctx, "U1", "k")
		require.Empty(t, token)

		var ate *optscale.AccessTokenError
		require.ErrorAs(t, err, &ate)
		require.Equal(t, "Access Token User ID mismatch", ate.Message)
	})

	t.Run("mismatch wins over missing token", func(t *testing.T) {
		fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, `{"user_id":"someone-else"}`)
		})

		_, err := optscale.NewAuthClient(fp.client()).UserToken(ctx, "U1", "k")
		var ate *optscale.AccessTokenError
		require.ErrorAs(t, err, &ate)
		require.Equal(t, "Access Token User ID mismatch", ate.Message)
	})

	t.Run("token missing", func(t *testing.T) {
		fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, `{"user_id":"U","token":null}`)
		})

		_, err := optscale.NewAuthClient(fp.client()).UserToken(ctx, "U", "k")
		var ate *optscale.AccessTokenError
		require.ErrorAs(t, err, &ate)
		require.Equal(t, "Token not found in the response.", ate.Message)
	})

	t.Run("provider error", func(t *testing.T) {
		fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"error":{"reason":"Secret is invalid"}}`)
		})

		_, err := optscale.NewAuthClient(fp.client()).UserToken(ctx, "U", "k")
		requireResponseError(t, err, http.StatusUnauthorized, "Secret is invalid")
	})

	t.Run("provider error without reason", func(t *testing.T) {
		fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := optscale.NewAuthClient(fp.client()).UserToken(ctx, "U", "k")
		requireResponseError(t, err, http.StatusInternalServerError, "No details available")
	})

	t.Run("empty input never reaches the provider", func(t *testing.T) {
		fp := newFakeProvider(t, tokenFor("U", "T"))
		auth := optscale.NewAuthClient(fp.client())

		_, err := auth.UserToken(ctx, "", "k")
		var ve *optscale.ValidationError
		require.ErrorAs(t, err, &ve)

		_, err = auth.UserToken(ctx, "U", "")
		require.ErrorAs(t, err, &ve)

		require.Zero(t, fp.hits.Load())
	})
}

func TestTokenWithCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("sends credentials without secret", func(t *testing.T) {
		fp := newFakeProvider(t, routes(t, map[string]http.HandlerFunc{
			"POST /auth/v2/tokens": tokenFor("U", "T"),
		}))

		token, err := optscale.NewAuthClient(fp.client()).TokenWithCredentials(ctx, "peter@example.com", "hunter22")
		require.NoError(t, err)
		require.Equal(t, "T", token)

		reqs := fp.Requests()
		require.Len(t, reqs, 1)
		require.Empty(t, reqs[0].Header.Get("Secret"))
		require.Equal(t, "peter@example.com", reqs[0].Body["email"])
		require.Equal(t, "hunter22", reqs[0].Body["password"])
	})

	t.Run("wrong password", func(t *testing.T) {
		fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusForbidden, `{"error":{"reason":"Email or password is invalid"}}`)
		})

		_, err := optscale.NewAuthClient(fp.client()).TokenWithCredentials(ctx, "a@b.c", "nope")
		requireResponseError(t, err, http.StatusForbidden, "Email or password is invalid")
	})
}
