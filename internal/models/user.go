package models

import (
	"github.com/golang-jwt/jwt"
)

const LevelAdmin = "Admin"

type User struct {
	ID       int    `json:"iduser"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Level    string `json:"level"`
	Aktif    int    `json:"aktif"`
}

type Claims struct {
	UserID int    `json:"id"`
	Name   string `json:"name"`
	Level  string `json:"level"`
	jwt.StandardClaims
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status string `json:"status"`
	Level  string `json:"level"`
	Token  string `json:"token"`
}
