package optscale

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
	"golang.org/x/text/currency"
)

const organizationsPath = "/restapi/v2/organizations"

// OrganizationsClient manages the organizations a user owns.
type OrganizationsClient struct {
	Client *Client
	Auth   *AuthClient
}

func NewOrganizationsClient(c *Client, auth *AuthClient) *OrganizationsClient {
	return &OrganizationsClient{Client: c, Auth: auth}
}

// ValidateCurrency accepts ISO 4217 codes only.
func ValidateCurrency(code string) error {
	if len(code) != 3 || strings.ToUpper(code) != code {
		return &ValidationError{Message: "invalid currency: " + code}
	}
	if _, err := currency.ParseISO(code); err != nil {
		return &ValidationError{Message: "invalid currency: " + code}
	}
	return nil
}

// Create creates an organization owned by userID. The currency is checked
// before anything is sent to the provider.
func (o *OrganizationsClient) Create(ctx context.Context, name, curr, userID, adminKey string) (Outcome, error) {
	log := slogx.FromContext(ctx).With(slog.String("user_id", userID))

	if err := ValidateCurrency(curr); err != nil {
		log.Warn("rejected organization with invalid currency", slog.String("currency", curr))
		return Outcome{}, err
	}

	token, err := o.Auth.UserToken(ctx, userID, adminKey)
	if err != nil {
		return Outcome{}, err
	}

	out := o.Client.Post(ctx, organizationsPath, BearerHeader(token), map[string]string{
		"name":     name,
		"currency": curr,
	})
	if !out.OK() {
		log.Error("failed to create organization", slog.Int("status", out.StatusCode))
		return Outcome{}, newResponseError(out)
	}

	log.Info("organization created")
	return out, nil
}

// List returns the organizations visible to the owner of userToken.
func (o *OrganizationsClient) List(ctx context.Context, userToken string) (Outcome, error) {
	out := o.Client.Get(ctx, organizationsPath, BearerHeader(userToken), nil)
	if !out.OK() {
		slogx.FromContext(ctx).Error("failed to list organizations", slog.Int("status", out.StatusCode))
		return Outcome{}, newResponseError(out)
	}
	return out, nil
}

// ListForUser lists userID's organizations using a token obtained with the
// admin secret.
func (o *OrganizationsClient) ListForUser(ctx context.Context, userID, adminKey string) (Outcome, error) {
	token, err := o.Auth.UserToken(ctx, userID, adminKey)
	if err != nil {
		return Outcome{}, err
	}
	return o.List(ctx, token)
}

// Organization is the subset of the provider's organization we read.
type Organization struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PoolID   string `json:"pool_id"`
	Currency string `json:"currency"`
	IsDemo   bool   `json:"is_demo"`
}

// DecodeOrganizations reads the {"organizations": [...]} list body.
func DecodeOrganizations(out Outcome) ([]Organization, error) {
	var body struct {
		Organizations []Organization `json:"organizations"`
	}
	if err := json.Unmarshal(out.Body(), &body); err != nil {
		return nil, err
	}
	return body.Organizations, nil
}
