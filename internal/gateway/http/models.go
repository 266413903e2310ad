package http

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateOrganizationRequest is the body of POST /organizations.
type CreateOrganizationRequest struct {
	OrgName  string `json:"org_name" example:"MyOrg"`
	UserID   string `json:"user_id" example:"f0bd0c4a-7c55-45b7-8b58-27740e38789a"`
	Currency string `json:"currency" example:"USD"`
}

func (r CreateOrganizationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrgName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.Currency, validation.Required),
	)
}

// CreateUserRequest is the body of POST /users and POST /invitations/users.
type CreateUserRequest struct {
	Email       string `json:"email" example:"peter.parker@example.com"`
	DisplayName string `json:"display_name" example:"Peter Parker"`
	Password    string `json:"password" example:"With great power"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.DisplayName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required),
	)
}

// DeclineInvitationRequest is the body of the decline endpoint.
type DeclineInvitationRequest struct {
	UserID string `json:"user_id" example:"f0bd0c4a-7c55-45b7-8b58-27740e38789a"`
}

func (r DeclineInvitationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
	)
}

// Datasource types accepted by the provider.
const (
	DatasourceAWS   = "aws_cnr"
	DatasourceGCP   = "gcp_cnr"
	DatasourceAzure = "azure_cnr"
)

// CreateDatasourceRequest is the body of POST /datasources.
type CreateDatasourceRequest struct {
	UserID                 string         `json:"user_id"`
	OrganizationID         string         `json:"organization_id"`
	Name                   string         `json:"name" example:"AWS HQ"`
	Type                   string         `json:"type" example:"aws_cnr"`
	Config                 map[string]any `json:"config"`
	AutoImport             bool           `json:"auto_import"`
	ProcessRecommendations bool           `json:"process_recommendations"`
}

func (r CreateDatasourceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.OrganizationID, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Type, validation.Required, validation.In(DatasourceAWS, DatasourceGCP, DatasourceAzure)),
		validation.Field(&r.Config, validation.Required),
	)
}

// DeclineInvitationResponse is returned once an invitation is declined.
type DeclineInvitationResponse struct {
	Response string `json:"response" example:"Invitation declined"`
}

// HealthResponse is the body of GET /livez.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
