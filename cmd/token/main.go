// Command token mints an access token signed with the configured secret.
// It is meant for local development and operator scripts; production tokens
// come from the identity provider.
//
// Flags:
//
//	--user  subject user ID (default: random)
//	--role  role claim (default: caregiver)
//	--ttl   token lifetime (default: auth.access_token_ttl)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/auth"
	"github.com/fordrm/the-a-team-sub000/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "subject user ID (default: random)")
	roleFlag := flag.String("role", "caregiver", "role claim")
	ttlFlag := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *userFlag != "" {
		if userID, err = uuid.Parse(*userFlag); err != nil {
			log.Fatalf("parse --user: %v", err)
		}
	}
	ttl := cfg.Auth.AccessTokenTTL
	if *ttlFlag > 0 {
		ttl = *ttlFlag
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(userID, *roleFlag)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
