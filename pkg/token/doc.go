// Package token provides bearer token verification for the Todo API.
//
// Tokens are RS256 JSON Web Tokens issued by an external identity
// provider. The service is configured with that provider's public key and
// issuer string at startup; both are static deployment configuration.
//
// # Verification
//
//	svc, err := token.NewService(token.Config{
//	    PublicKeyPath: "./keys/public.pem",
//	    Issuer:        "todos.forgo.software",
//	})
//
//	claims, err := svc.Verify(tokenString)
//
// Verification checks the signature and the issuer claim. Token expiry is
// deliberately NOT enforced: expired tokens signed by the trusted key are
// accepted. See Verify before changing this.
//
// # Signing
//
// Signing requires the private key and exists for the devtoken tool and
// test helpers; the API server itself only verifies:
//
//	tok, err := svc.Sign(token.Claims{
//	    RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
//	})
package token
