// Command token mints a bearer token for local testing.
package main

import (
	"chat-vault/auth"
	"chat-vault/domain"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type config struct {
	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}

func main() {
	userID := flag.String("user", "", "User ID carried by the token")
	role := flag.String("role", string(domain.RoleUser), "Role: user, creator, admin or moderator")
	verified := flag.Bool("verified", false, "Mark the user as verified")
	flag.Parse()

	_ = godotenv.Load()
	var cfg config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		log.Fatalf("config error: %v", err)
	}

	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.AuthTokenDuration)
	if err != nil {
		log.Fatalf("issuer error: %v", err)
	}
	token, err := issuer.GenerateToken(domain.Actor{ID: *userID, Role: domain.Role(*role), Verified: *verified})
	if err != nil {
		log.Fatalf("token generation failed: %v", err)
	}
	fmt.Println(token)
}
