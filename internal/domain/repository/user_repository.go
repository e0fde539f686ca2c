package repository

import "github.com/tu-usuario/performance-hub/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// (nil, nil) cuando no existe; domain.ErrDuplicate en username repetido.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
