package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forgo/todos/api/pkg/token"
)

func main() {
	// Flags for customization
	privateKeyPath := flag.String("key", "./keys/private.pem", "Path to the RSA private key")
	publicKeyPath := flag.String("pub", "./keys/public.pem", "Path to the RSA public key (used with -generate)")
	subject := flag.String("sub", "dev-user", "Subject claim for the token")
	issuer := flag.String("issuer", "todos.forgo.software", "Token issuer")
	expMins := flag.Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	generate := flag.Bool("generate", false, "Generate a fresh key pair before signing")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *generate {
		if err := token.GenerateKeyPair(*privateKeyPath, *publicKeyPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating key pair: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s and %s\n", *privateKeyPath, *publicKeyPath)
	}

	// Create token service with just the private key
	tokenService, err := token.NewService(token.Config{
		PrivateKeyPath: *privateKeyPath,
		Issuer:         *issuer,
		Expiration:     time.Duration(*expMins) * time.Minute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating token service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nGenerate a key pair first with: devtoken -generate\n")
		os.Exit(1)
	}

	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: *subject,
		},
	}

	signed, err := tokenService.Sign(claims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": signed,
			"token_type":   "Bearer",
			"expires_in":   *expMins * 60,
			"sub":          *subject,
			"issuer":       *issuer,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
		fmt.Println("Dev Token Generated")
		fmt.Println("===================")
		fmt.Printf("Subject:  %s\n", *subject)
		fmt.Printf("Issuer:   %s\n", *issuer)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(signed)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer <token>' http://localhost:3000/todos\n")
	}
}
