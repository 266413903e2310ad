package gatewaysdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateUser creates a verified user.
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, s.client.versioned("/users"), req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Session) GetUser(ctx context.Context, userID string) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.versioned("/users/"+url.PathEscape(userID)), nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
