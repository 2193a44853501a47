package auth

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
)

// Capability clasifica la acción solicitada: lectura o mutación.
type Capability int

const (
	CapabilityRead Capability = iota
	CapabilityMutate
	// CapabilityAdmin: gestión de usuarios y roles, solo Administrador.
	CapabilityAdmin
)

// Identity es la identidad autorizada que fluye hacia los casos de uso: quién actúa
// y con qué rol efectivo.
type Identity struct {
	ID          int64
	DisplayName string
	Role        entity.Role
}

// Gate decide ALLOW/DENY para una acción a partir de los claims de un token.
//
// Dos estrategias de resolución de rol:
//   - claims-verify (default): el rol se relee de la DB en cada autorización; una
//     lectura indexada extra por petición, pero un downgrade de rol aplica de inmediato.
//   - claims-trust (trustClaims=true): el rol viene del claim id_rol; cero I/O, pero
//     un usuario degradado conserva sus privilegios hasta que su token expire
//     (ventana de hasta una hora). Activar solo si la lectura extra pesa a escala.
type Gate struct {
	users       repository.UserRepository
	trustClaims bool
}

// NewGate construye el gate. users puede consultarse en cada Authorize (claims-verify).
func NewGate(users repository.UserRepository, trustClaims bool) *Gate {
	return &Gate{users: users, trustClaims: trustClaims}
}

// Authorize resuelve la identidad de los claims y decide si puede ejecutar la
// capability pedida. Razones de denegación distinguibles:
//   - domain.ErrUnauthorized: no hay identidad (claims nil)
//   - domain.ErrUserNotFound: el sujeto del token ya no existe
//   - domain.ErrForbidden: rol insuficiente para mutar
//
// Se evalúa estrictamente antes de cualquier mutación: una denegación no deja
// ningún cambio de estado aguas abajo.
func (g *Gate) Authorize(ctx context.Context, claims *jwt.Claims, capability Capability) (*Identity, error) {
	if claims == nil {
		return nil, domain.ErrUnauthorized
	}

	identity := &Identity{
		ID:          claims.UserID,
		DisplayName: claims.DisplayName,
		Role:        entity.Role(claims.RoleID),
	}

	if !g.trustClaims {
		user, err := g.users.GetByID(claims.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		identity.DisplayName = user.DisplayName
		identity.Role = user.RoleID
	}

	switch capability {
	case CapabilityRead:
		// Las lecturas no exigen rol.
	case CapabilityMutate:
		if !identity.Role.CanMutate() {
			return nil, domain.ErrForbidden
		}
	case CapabilityAdmin:
		if identity.Role != entity.RoleAdministrador {
			return nil, domain.ErrForbidden
		}
	}
	return identity, nil
}
