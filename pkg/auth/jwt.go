package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(sellerID string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	SellerID string `json:"seller_id"`
	jwt.StandardClaims
}

// JWTService validates bearer tokens issued by the storefront's auth
// system. Token issuance itself lives outside this service.
type JWTService struct {
	key []byte
}

func NewJWTService(key string) *JWTService {
	return &JWTService{key: []byte(key)}
}

func (s *JWTService) GenerateJWT(sellerID string, expirationTime time.Time) (string, error) {
	claims := Claims{
		SellerID: sellerID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "sellerwallet",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SellerID == "" || claims.Issuer != "sellerwallet" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
