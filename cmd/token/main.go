package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/auth"
	"assistencia_os/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// token issues a staff access token signed with the configured JWT secret.
// Useful for local development and for wiring the front-end against a
// fresh environment.
func main() {
	uid := flag.String("uid", "", "staff user id (required)")
	email := flag.String("email", "", "staff e-mail")
	role := flag.String("role", string(entities.RoleTecnico), "role: admin or tecnico")
	flag.Parse()

	if strings.TrimSpace(*uid) == "" {
		fmt.Fprintln(os.Stderr, "-uid is required")
		flag.Usage()
		os.Exit(2)
	}

	r := entities.Role(strings.ToLower(strings.TrimSpace(*role)))
	if !r.IsValid() {
		fmt.Fprintf(os.Stderr, "invalid role %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	svc := auth.NewJWTService(cfg.JWT)
	token, expiresAt, err := svc.GenerateToken(entities.Session{
		UID:   strings.TrimSpace(*uid),
		Email: strings.TrimSpace(*email),
		Role:  r,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format("2006-01-02 15:04:05 MST"))
}
