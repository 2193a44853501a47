package entity

// Role es el conjunto cerrado de roles del sistema. El discriminante entero es el
// mismo id_rol sembrado en la tabla roles; no hay roles dinámicos.
type Role int

const (
	RoleAdministrador Role = 1
	RoleGestor        Role = 2
	RoleLector        Role = 3
)

// Valid indica si el valor corresponde a un rol conocido.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrador, RoleGestor, RoleLector:
		return true
	}
	return false
}

// CanMutate indica si el rol puede crear/modificar/eliminar artículos e inventario.
// Lector solo consulta.
func (r Role) CanMutate() bool {
	return r == RoleAdministrador || r == RoleGestor
}

// Name devuelve el nombre sembrado del rol.
func (r Role) Name() string {
	switch r {
	case RoleAdministrador:
		return "Administrador"
	case RoleGestor:
		return "Gestor"
	case RoleLector:
		return "Lector"
	}
	return "Desconocido"
}
