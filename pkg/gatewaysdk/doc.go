/*
Package gatewaysdk provides a client SDK for the FinOps API modifier gateway.

# SDKClient vs Session

The package is organized around two types:

  - SDKClient: unauthenticated operations (health, invited user sign up) and Session creation
  - Session: operations behind the JWT gate

The gateway trusts any token signed with the shared secret, so a Session
carries a signer rather than a token and mints a short-lived token whenever
the previous one is about to expire:

	client := gatewaysdk.NewSDKClient("https://modifier.example.com")

	signer, _ := jwtx.NewHMACSigner([]byte(secret), "HS256")
	session := client.NewSession(signer, gatewaysdk.TokenClaims{
		Subject:  "swo-platform",
		Issuer:   "SWO",
		Audience: "modifier",
	})

	orgs, err := session.ListOrganizations(ctx, userID)

# Errors

Every non-success answer is returned as a *ProblemError carrying the
gateway's error envelope:

	var pe *gatewaysdk.ProblemError
	if errors.As(err, &pe) && pe.Status == http.StatusForbidden {
		log.Println(pe.Title, pe.Reason())
	}
*/
package gatewaysdk
