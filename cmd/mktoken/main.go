// mktoken mints an API bearer token with the server's signing settings.
// Intended for operators handing out client credentials.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	jwttoken "bodygraph/internal/jwt_token"
	"bodygraph/internal/platform/config"
)

func main() {
	subject := flag.String("subject", "", "token subject, e.g. a client name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "mktoken: -subject is required")
		os.Exit(2)
	}

	cfg := config.FromEnv()
	svc := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	token, err := svc.GenerateAccessToken(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mktoken: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
