package repository

import "github.com/jhoicas/gestion-pyme/internal/domain/entity"

// UserRepository puerto de persistencia para User.
// GetByID y GetByUsername devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List() ([]*entity.User, error)
}
