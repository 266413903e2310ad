package gatewaysdk

// HealthResponse is returned by GET /livez.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// CreateOrganizationRequest is the body of POST /organizations.
type CreateOrganizationRequest struct {
	OrgName  string `json:"org_name"`
	UserID   string `json:"user_id"`
	Currency string `json:"currency"`
}

// Organization is the subset of an OptScale organization the SDK decodes.
type Organization struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	PoolID   string `json:"pool_id,omitempty"`
}

// OrganizationList is returned by GET /organizations.
type OrganizationList struct {
	Organizations []Organization `json:"organizations"`
}

// CreateUserRequest is the body of POST /users and POST /invitations/users.
type CreateUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// User is the subset of an OptScale user the SDK decodes.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Verified    bool   `json:"verified"`
}

// DeclineInvitationResponse is returned by the decline route.
type DeclineInvitationResponse struct {
	Response string `json:"response"`
}

// CreateDatasourceRequest is the body of POST /datasources.
type CreateDatasourceRequest struct {
	UserID                 string         `json:"user_id"`
	OrganizationID         string         `json:"organization_id"`
	Name                   string         `json:"name"`
	Type                   string         `json:"type"`
	Config                 map[string]any `json:"config"`
	AutoImport             bool           `json:"auto_import"`
	ProcessRecommendations bool           `json:"process_recommendations"`
}

// Datasource is the subset of an OptScale cloud account the SDK decodes.
type Datasource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// DatasourceList is returned by GET /datasources.
type DatasourceList struct {
	CloudAccounts []Datasource `json:"cloud_accounts"`
}
