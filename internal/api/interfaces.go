package api

import (
	"github.com/google/uuid"
	jwtservice "github.com/limbo/vitals/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(uid uuid.UUID) (string, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
}
