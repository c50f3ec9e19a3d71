package token

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testService(t *testing.T, issuer string) *Service {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return NewServiceWithKeys(nil, key, Config{
		Issuer:     issuer,
		Expiration: time.Hour,
	})
}

func TestSignAndVerify_RoundTrip(t *testing.T) {
	svc := testService(t, "todos.forgo.software")

	tok, err := svc.Sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("expected subject user-1, got %s", claims.Subject)
	}
	if claims.Issuer != "todos.forgo.software" {
		t.Errorf("expected service issuer, got %s", claims.Issuer)
	}
}

func TestVerify_GarbageToken(t *testing.T) {
	svc := testService(t, "todos.forgo.software")

	_, err := svc.Verify("not.a.token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_TokenSignedByDifferentKey(t *testing.T) {
	svc := testService(t, "todos.forgo.software")
	other := testService(t, "todos.forgo.software")

	tok, err := other.Sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	_, err = svc.Verify(tok)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	svc := testService(t, "todos.forgo.software")
	other := testService(t, "someone-else")

	// Same key, different issuer claim
	tok, err := NewServiceWithKeys(nil, svc.privateKey, Config{Issuer: other.issuer}).Sign(Claims{})
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	_, err = svc.Verify(tok)
	if !errors.Is(err, ErrInvalidIssuer) {
		t.Errorf("expected ErrInvalidIssuer, got %v", err)
	}
}

// Expired tokens are accepted on purpose. If this test starts failing the
// API's authentication contract has changed.
func TestVerify_ExpiredTokenIsStillAccepted(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	svc := NewServiceWithKeys(nil, key, Config{Issuer: "todos.forgo.software"})

	expired := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "todos.forgo.software",
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodRS256, expired).SignedString(key)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	claims, verifyErr := svc.Verify(tok)
	if verifyErr != nil {
		t.Fatalf("expired token must still verify, got %v", verifyErr)
	}
	if claims.Subject != "user-1" {
		t.Errorf("expected subject user-1, got %s", claims.Subject)
	}
}

func TestVerify_RejectsNonRS256Algorithms(t *testing.T) {
	svc := testService(t, "todos.forgo.software")

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer: "todos.forgo.software",
	}).SignedString([]byte("shared-secret"))
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	if _, err := svc.Verify(hs256); err == nil {
		t.Error("expected HS256 token to be rejected")
	}
}

func TestVerify_WithoutPublicKey(t *testing.T) {
	svc := NewServiceWithKeys(nil, nil, Config{Issuer: "todos.forgo.software"})

	if _, err := svc.Verify("whatever"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestGenerateKeyPair_AndLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	privPath := dir + "/private.pem"
	pubPath := dir + "/public.pem"

	if err := GenerateKeyPair(privPath, pubPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	signer, err := NewService(Config{
		PrivateKeyPath: privPath,
		Issuer:         "todos.forgo.software",
		Expiration:     time.Hour,
	})
	if err != nil {
		t.Fatalf("unexpected error loading private key: %v", err)
	}

	verifier, err := NewService(Config{
		PublicKeyPath: pubPath,
		Issuer:        "todos.forgo.software",
	})
	if err != nil {
		t.Fatalf("unexpected error loading public key: %v", err)
	}

	tok, err := signer.Sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}
	if _, err := verifier.Verify(tok); err != nil {
		t.Errorf("token signed with generated key must verify: %v", err)
	}
}
