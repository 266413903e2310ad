package optscale

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
)

// CloudAccountParams describes a datasource (cloud account) to connect.
type CloudAccountParams struct {
	Name                   string         `json:"name"`
	Type                   string         `json:"type"`
	Config                 map[string]any `json:"config"`
	AutoImport             bool           `json:"auto_import"`
	ProcessRecommendations bool           `json:"process_recommendations"`
}

// DatasourcesClient manages the cloud accounts of an organization.
type DatasourcesClient struct {
	Client *Client
}

func NewDatasourcesClient(c *Client) *DatasourcesClient {
	return &DatasourcesClient{Client: c}
}

func (d *DatasourcesClient) Create(ctx context.Context, userToken, orgID string, params CloudAccountParams) (Outcome, error) {
	log := slogx.FromContext(ctx).With(
		slog.String("organization_id", orgID),
		slog.String("datasource_type", params.Type),
	)

	out := d.Client.Post(ctx, cloudAccountsPath(orgID), BearerHeader(userToken), params)
	if !out.OK() {
		log.Error("failed to create datasource", slog.Int("status", out.StatusCode))
		return Outcome{}, newResponseError(out)
	}

	log.Info("datasource created")
	return out, nil
}

func (d *DatasourcesClient) List(ctx context.Context, userToken, orgID string) (Outcome, error) {
	out := d.Client.Get(ctx, cloudAccountsPath(orgID), BearerHeader(userToken), nil)
	if !out.OK() {
		slogx.FromContext(ctx).Error("failed to list datasources",
			slog.String("organization_id", orgID),
			slog.Int("status", out.StatusCode),
		)
		return Outcome{}, newResponseError(out)
	}
	return out, nil
}

func cloudAccountsPath(orgID string) string {
	return organizationsPath + "/" + url.PathEscape(orgID) + "/cloud_accounts"
}
