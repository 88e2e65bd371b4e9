// Command ops-token issues an operator token for the /ops endpoints.
//
// Usage:
//
//	ops-token -subject alice [-ttl 1h]
//
// The token is signed with AUTH_JWT_SECRET and printed to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/heartmarshall/zakat-tracker/internal/auth"
	"github.com/heartmarshall/zakat-tracker/internal/config"
)

func main() {
	subject := flag.String("subject", "", "operator name recorded in access logs")
	ttl := flag.Duration("ttl", 0, "token lifetime (default auth.token_ttl)")
	flag.Parse()

	if *subject == "" {
		log.Fatal("-subject is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *ttl <= 0 {
		*ttl = cfg.Auth.TokenTTL
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL).
		GenerateOperatorToken(*subject, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
	log.Printf("token for %q expires at %s", *subject, time.Now().Add(*ttl).UTC().Format(time.RFC3339))
}
