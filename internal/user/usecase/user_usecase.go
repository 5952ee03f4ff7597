package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"reservia-backend/internal/user/repository"
)

// ErrInvalidInput means the profile body was empty or not an object.
var ErrInvalidInput = errors.New("invalid input")

// UserUsecase stores caller-supplied user profiles. If the profile carries a
// password field it is bcrypt-hashed before the document hits the store; the
// rest of the profile is stored as-is.
type UserUsecase interface {
	Register(ctx context.Context, user bson.M) (string, error)
}

// userUsecase implements UserUsecase
type userUsecase struct {
	users repository.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(users repository.UserRepository) UserUsecase {
	return &userUsecase{
		users: users,
	}
}

func (u *userUsecase) Register(ctx context.Context, user bson.M) (string, error) {
	if len(user) == 0 {
		return "", ErrInvalidInput
	}

	if password, ok := user["password"].(string); ok && password != "" {
		hashed, err := repository.HashPassword(password)
		if err != nil {
			return "", err
		}
		user["password"] = hashed
	}

	id, err := u.users.Insert(ctx, user)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}
