package optscale

// Header names understood by the provider.
const (
	HeaderSecret        = "Secret"
	HeaderAuthorization = "Authorization"
)

// AdminHeader authenticates an admin-level call with the shared secret.
func AdminHeader(secret string) map[string]string {
	return map[string]string{HeaderSecret: secret}
}

// BearerHeader authenticates a call on behalf of the user owning token.
func BearerHeader(token string) map[string]string {
	return map[string]string{HeaderAuthorization: "Bearer " + token}
}
