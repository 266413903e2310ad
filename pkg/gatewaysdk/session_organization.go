package gatewaysdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateOrganization creates an organization owned by req.UserID.
func (s *Session) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*Organization, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, s.client.versioned("/organizations"), req)
	if err != nil {
		return nil, err
	}

	var org Organization
	if err := decodeJSON(resp, &org); err != nil {
		return nil, err
	}

	return &org, nil
}

// ListOrganizations lists the organizations owned by userID.
func (s *Session) ListOrganizations(ctx context.Context, userID string) (*OrganizationList, error) {
	q := url.Values{"user_id": {userID}}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.versioned("/organizations?"+q.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var list OrganizationList
	if err := decodeJSON(resp, &list); err != nil {
		return nil, err
	}

	return &list, nil
}
