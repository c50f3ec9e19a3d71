package token

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidIssuer    = errors.New("invalid issuer")
	ErrInvalidKey       = errors.New("invalid key")
)

// Claims is the decoded payload of a verified bearer token.
type Claims struct {
	jwt.RegisteredClaims
}

// Config holds token service configuration.
//
// PublicKeyPath is required for verification. PrivateKeyPath is only needed
// by token-minting callers (the devtoken tool, test helpers); the server
// itself never signs.
type Config struct {
	PublicKeyPath  string
	PrivateKeyPath string
	Issuer         string
	Expiration     time.Duration
}

// Service verifies and signs RS256 bearer tokens against a fixed key pair
// and issuer.
type Service struct {
	publicKey  *rsa.PublicKey
	privateKey *rsa.PrivateKey
	issuer     string
	expiration time.Duration
	parser     *jwt.Parser
}

// NewService creates a new token service from PEM-encoded keys
func NewService(cfg Config) (*Service, error) {
	var privateKey *rsa.PrivateKey
	var publicKey *rsa.PublicKey

	if cfg.PrivateKeyPath != "" {
		data, err := os.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key: %w", err)
		}
		privateKey, err = jwt.ParseRSAPrivateKeyFromPEM(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		publicKey = &privateKey.PublicKey
	}

	if cfg.PublicKeyPath != "" && publicKey == nil {
		data, err := os.ReadFile(cfg.PublicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read public key: %w", err)
		}
		publicKey, err = jwt.ParseRSAPublicKeyFromPEM(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
	}

	return newService(publicKey, privateKey, cfg), nil
}

// NewServiceWithKeys creates a token service from in-memory keys. Used by
// tests and anywhere keys do not live on disk.
func NewServiceWithKeys(publicKey *rsa.PublicKey, privateKey *rsa.PrivateKey, cfg Config) *Service {
	if publicKey == nil && privateKey != nil {
		publicKey = &privateKey.PublicKey
	}
	return newService(publicKey, privateKey, cfg)
}

func newService(publicKey *rsa.PublicKey, privateKey *rsa.PrivateKey, cfg Config) *Service {
	// Claim validation is done by hand in Verify: the issuer must match,
	// but expiry is accepted even when past. WithoutClaimsValidation keeps
	// the parser to signature and structure checks only.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	return &Service{
		publicKey:  publicKey,
		privateKey: privateKey,
		issuer:     cfg.Issuer,
		expiration: cfg.Expiration,
		parser:     parser,
	}
}

// Verify checks a token's signature and issuer and returns its claims.
//
// Expiration is intentionally not enforced: a structurally valid token
// signed by the trusted key is accepted even after its nominal expiry.
// Verify answers "is this token well-formed and signed by the trusted
// issuer", nothing more; it performs no lookups and no authorization.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if s.publicKey == nil {
		return nil, ErrInvalidKey
	}

	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Issuer != s.issuer {
		return nil, ErrInvalidIssuer
	}

	return claims, nil
}

// Sign creates a signed token carrying the given claims. The service
// issuer and expiration are applied on top of the caller's claims.
func (s *Service) Sign(claims Claims) (string, error) {
	if s.privateKey == nil {
		return "", ErrInvalidKey
	}

	now := time.Now()
	claims.Issuer = s.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	if s.expiration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.expiration))
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
}

// GenerateKeyPair generates a new RSA key pair and saves it as PEM files
func GenerateKeyPair(privateKeyPath, publicKeyPath string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	privateKeyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})
	if err := os.WriteFile(privateKeyPath, privateKeyPEM, 0600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	publicKeyBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}
	publicKeyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicKeyBytes,
	})
	if err := os.WriteFile(publicKeyPath, publicKeyPEM, 0644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	return nil
}
