package optscale_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
	"github.com/stretchr/testify/require"
)

func newOrgs(fp *fakeProvider) *optscale.OrganizationsClient {
	c := fp.client()
	return optscale.NewOrganizationsClient(c, optscale.NewAuthClient(c))
}

func TestOrganizationsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("exchanges token then creates", func(t *testing.T) {
		fp := newFakeProvider(t, routes(t, map[string]http.HandlerFunc{
			"POST /auth/v2/tokens": tokenFor("U", "T"),
			"POST /restapi/v2/organizations": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusCreated, `{"id":"org-1","name":"MyOrg","currency":"USD"}`)
			},
		}))

		out, err := newOrgs(fp).Create(ctx, "MyOrg", "USD", "U", "k")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, out.StatusCode)
		require.JSONEq(t, `{"id":"org-1","name":"MyOrg","currency":"USD"}`, string(out.Data))

		reqs := fp.Requests()
		require.Len(t, reqs, 2)
		require.Equal(t, "/auth/v2/tokens", reqs[0].Path)
		require.Equal(t, "Bearer T", reqs[1].Header.Get("Authorization"))
		require.Equal(t, "MyOrg", reqs[1].Body["name"])
		require.Equal(t, "USD", reqs[1].Body["currency"])
	})

	t.Run("invalid currency makes no provider call", func(t *testing.T) {
		fp := newFakeProvider(t, tokenFor("U", "T"))

		for _, cur := range []string{"XYZ", "usd", "", "DOLLARS"} {
			_, err := newOrgs(fp).Create(ctx, "MyOrg", cur, "U", "k")
			var ve *optscale.ValidationError
			require.ErrorAs(t, err, &ve, cur)
		}
		require.Zero(t, fp.hits.Load())
	})

	t.Run("provider rejects creation", func(t *testing.T) {
		fp := newFakeProvider(t, routes(t, map[string]http.HandlerFunc{
			"POST /auth/v2/tokens": tokenFor("U", "T"),
			"POST /restapi/v2/organizations": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusConflict, `{"error":{"reason":"Organization already exists"}}`)
			},
		}))

		_, err := newOrgs(fp).Create(ctx, "MyOrg", "EUR", "U", "k")
		requireResponseError(t, err, http.StatusConflict, "Organization already exists")
	})

	t.Run("token failure stops before creation", func(t *testing.T) {
		fp := newFakeProvider(t, routes(t, map[string]http.HandlerFunc{
			"POST /auth/v2/tokens": tokenFor("other", "T"),
		}))

		_, err := newOrgs(fp).Create(ctx, "MyOrg", "EUR", "U", "k")
		var ate *optscale.AccessTokenError
		require.ErrorAs(t, err, &ate)
		require.Len(t, fp.Requests(), 1)
	})
}

func TestOrganizationsListForUser(t *testing.T) {
	fp := newFakeProvider(t, routes(t, map[string]http.HandlerFunc{
		"POST /auth/v2/tokens": tokenFor("U", "T"),
		"GET /restapi/v2/organizations": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"organizations":[{"id":"o1","name":"A","currency":"USD"}]}`)
		},
	}))

	out, err := newOrgs(fp).ListForUser(context.Background(), "U", "k")
	require.NoError(t, err)

	orgs, err := optscale.DecodeOrganizations(out)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	require.Equal(t, "o1", orgs[0].ID)
	require.Equal(t, "Bearer T", fp.Requests()[1].Header.Get("Authorization"))
}

func TestOrganizationsListError(t *testing.T) {
	fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":{"reason":"Token is invalid"}}`)
	})

	_, err := newOrgs(fp).List(context.Background(), "bad")
	requireResponseError(t, err, http.StatusUnauthorized, "Token is invalid")
}

func TestValidateCurrency(t *testing.T) {
	for _, ok := range []string{"USD", "EUR", "GBP", "JPY"} {
		require.NoError(t, optscale.ValidateCurrency(ok), ok)
	}
	for _, bad := range []string{"", "US", "usd", "ABC", "EURO"} {
		require.Error(t, optscale.ValidateCurrency(bad), bad)
	}
}
