package main

import (
	"flag"
	"fmt"
	"log"

	"mentorloop/internal/config"
	"mentorloop/internal/service"
)

// issue_token mints a teacher JWT for the authoring endpoints. Intended
// for local development and small deployments without an identity
// provider in front of the API.
func main() {
	subject := flag.String("subject", "", "name of the teacher the token is issued to")
	flag.Parse()

	if *subject == "" {
		log.Fatal("Usage: issue_token -subject <teacher-name>")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	token, err := authService.CreateToken(*subject)
	if err != nil {
		log.Fatalf("Failed to create token: %v", err)
	}

	fmt.Println(token)
}
