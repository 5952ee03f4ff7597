package usecase

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid covers malformed tokens, foreign signatures and
	// unexpected signing methods.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired means the signature verified but the token is past
	// its expiration.
	ErrTokenExpired = errors.New("token expired")
)

// registered claims added by Issue; stripped again by Verify so the caller
// gets their payload back unchanged.
var reservedClaims = []string{"exp", "iat", "jti"}

// tokenUsecase implements TokenUsecase
type tokenUsecase struct {
	secret []byte
	expiry time.Duration
}

// NewTokenUsecase creates a new instance of tokenUsecase
func NewTokenUsecase(secret string, expiry time.Duration) TokenUsecase {
	return &tokenUsecase{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (u *tokenUsecase) Issue(payload map[string]interface{}) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = now.Add(u.expiry).Unix()
	claims["iat"] = now.Unix()
	claims["jti"] = uuid.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}

func (u *tokenUsecase) Verify(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	payload := make(map[string]interface{}, len(claims))
	for k, v := range claims {
		payload[k] = v
	}
	for _, k := range reservedClaims {
		delete(payload, k)
	}

	return payload, nil
}
