package user

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
)

// UserService exposes the workspace roster. The list feeds the impersonation
// control, so it is deliberately not gated.
type UserService interface {
	List(ctx context.Context) ([]user.UserResponse, error)
	Get(ctx context.Context, id string) (user.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return user.ToResponses(users), nil
}

func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}
