package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	// UpdateRole cambia solo el rol; devuelve domain.ErrUserNotFound si el id no existe.
	UpdateRole(id int64, role entity.Role) error
	// Delete existe para tooling administrativo; el API nunca borra usuarios.
	// El schema pone en NULL last_modified_by de sus registros de stock (ON DELETE SET NULL).
	Delete(id int64) error
}
