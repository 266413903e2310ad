package gatewaysdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateDatasource connects a cloud account to an organization.
func (s *Session) CreateDatasource(ctx context.Context, req CreateDatasourceRequest) (*Datasource, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, s.client.versioned("/datasources"), req)
	if err != nil {
		return nil, err
	}

	var ds Datasource
	if err := decodeJSON(resp, &ds); err != nil {
		return nil, err
	}

	return &ds, nil
}

// ListDatasources lists the cloud accounts of orgID as seen by userID.
func (s *Session) ListDatasources(ctx context.Context, userID, orgID string) (*DatasourceList, error) {
	q := url.Values{"user_id": {userID}, "organization_id": {orgID}}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.versioned("/datasources?"+q.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var list DatasourceList
	if err := decodeJSON(resp, &list); err != nil {
		return nil, err
	}

	return &list, nil
}
