// Command token mints an access token for local testing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/jwt"
	"github.com/joho/godotenv"
)

func main() {
	var (
		userID     = flag.String("user", "", "user id (required)")
		employeeID = flag.String("employee", "", "employee id the token acts for")
		admin      = flag.Bool("admin", false, "issue an administrator token")
		expiration = flag.String("exp", "24h", "token lifetime")
	)
	flag.Parse()

	if *userID == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}

	role := jwt.RoleEmployee
	if *admin {
		role = jwt.RoleAdmin
	}

	token, expiresAt, err := jwt.NewJWTService(secret, *expiration).GenerateAccessToken(jwt.Claims{
		UserID:     *userID,
		EmployeeID: *employeeID,
		Role:       role,
	})
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
	fmt.Println(token)
}
