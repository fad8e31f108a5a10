package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account stored in MongoDB. Password holds the bcrypt hash.
type User struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"-" bson:"password"`
	FullName       string             `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Bio            string             `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfilePicture string             `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// UserCompact is the public view of a user (no email, no password)
type UserCompact struct {
	ID             primitive.ObjectID `json:"id"`
	Username       string             `json:"username"`
	FullName       string             `json:"fullName,omitempty"`
	Bio            string             `json:"bio,omitempty"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
}

// ToCompact strips private fields
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:             u.ID,
		Username:       u.Username,
		FullName:       u.FullName,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
	}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"max=100"`
}

// LoginRequest accepts either an email or a username in the email field
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the Google Identity Services credential (an ID token)
type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type ProfileUpdateRequest struct {
	ID             string `json:"id" validate:"required,mongodb"`
	FullName       string `json:"fullName" validate:"required,max=100"`
	Bio            string `json:"bio" validate:"max=1000"`
	ProfilePicture string `json:"profilePicture"`
}

// AuthResponse is returned by every sign-in flow
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
// Tokens are keyed to the user's email (Subject).
type JwtCustomClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
