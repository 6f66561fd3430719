package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"blog-backend/internal/config"
	"blog-backend/pkg/jwt"
)

// Issues a bearer token for the write endpoints, signed with JWT_SECRET.
func main() {
	subject := flag.String("subject", "editor-dev", "Subject (user id) for the token")
	role := flag.String("role", jwt.RoleEditor, "Role claim: editor or admin")
	expMins := flag.Int("exp", 0, "Token expiration in minutes (default: JWT_TOKEN_EXPIRY)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *role != jwt.RoleEditor && *role != jwt.RoleAdmin {
		fmt.Fprintf(os.Stderr, "Unknown role %q (want %s or %s)\n", *role, jwt.RoleEditor, jwt.RoleAdmin)
		os.Exit(2)
	}

	ttl := time.Duration(cfg.JWT.TokenExpiry) * time.Minute
	if *expMins > 0 {
		ttl = time.Duration(*expMins) * time.Minute
	}

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, ttl)
	token, err := tokens.GenerateToken(*subject, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(tokens.TTL().Seconds()),
			"subject":      *subject,
			"role":         *role,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	fmt.Printf("Subject:  %s\n", *subject)
	fmt.Printf("Role:     %s\n", *role)
	fmt.Printf("Expires:  %s\n", time.Now().Add(tokens.TTL()).Format(time.RFC3339))
	fmt.Println()
	fmt.Println(token)
}
