package firebase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// App holds the initialized Firebase app and auth client
type App struct {
	FirebaseApp *firebase.App
	AuthClient  *auth.Client
}

// IDTokenVerifier is the part of *auth.Client used for sign-in
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Identity is what sign-in needs from a verified Firebase token
type Identity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// InitFirebase initializes the Firebase application and authentication client
func InitFirebase(ctx context.Context, credentialsPath string) (*App, error) {
	if credentialsPath == "" {
		return nil, errors.New("firebase credentials path not provided")
	}

	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("firebase credentials file not found at %s", credentialsPath)
	}

	firebaseApp, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	log.Println("Firebase app and auth client initialized successfully!")
	return &App{FirebaseApp: firebaseApp, AuthClient: authClient}, nil
}

// IdentityFromToken reads the profile claims of a verified token. An email is required.
func IdentityFromToken(token *auth.Token) (*Identity, error) {
	if token == nil {
		return nil, errors.New("nil token")
	}
	claim := func(name string) string {
		v, _ := token.Claims[name].(string)
		return strings.TrimSpace(v)
	}

	id := &Identity{
		UID:     token.UID,
		Email:   strings.ToLower(claim("email")),
		Name:    claim("name"),
		Picture: claim("picture"),
	}
	if id.Email == "" {
		return nil, errors.New("token has no email claim")
	}
	return id, nil
}
