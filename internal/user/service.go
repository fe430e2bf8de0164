package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
)

var (
	ErrUserNotFound  = errors.New("usuário não encontrado")
	ErrInvalidUserID = errors.New("id de usuário inválido")
)

type UserService interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	log := config.WithContext(ctx)

	if _, err := uuid.Parse(id); err != nil {
		log.WithField("user_id", id).Warn("ID de usuário inválido no token")
		return nil, ErrInvalidUserID
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuário")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
