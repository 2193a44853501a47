package auth

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de identidad: registro, login, listado y cambio de rol.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrUsernameExists si el username ya está tomado y ErrInvalidInput si el rol no existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.RoleID)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrUsernameExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.DisplayName
	if name == "" {
		name = in.Username
	}
	user := &entity.User{
		RoleID:       role,
		Username:     in.Username,
		PasswordHash: string(hash),
		DisplayName:  name,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT (expira en una hora) y retorna token + usuario.
// Usuario inexistente y password incorrecto responden igual: el cliente no distingue.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.DisplayName, int(user.RoleID), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ListUsers devuelve todos los usuarios sin hashes de password.
func (uc *AuthUseCase) ListUsers() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// UpdateUserRole cambia el rol de un usuario. Solo lo invoca un Administrador (el
// gate lo garantiza antes de llegar aquí). Con claims-verify el nuevo rol aplica en
// la siguiente petición del afectado; con claims-trust, al expirar su token.
func (uc *AuthUseCase) UpdateUserRole(id int64, in dto.UpdateRoleRequest) error {
	role := entity.Role(in.RoleID)
	if !role.Valid() {
		return domain.ErrInvalidInput
	}
	if err := uc.userRepo.UpdateRole(id, role); err != nil {
		return err
	}
	log.Info().Int64("user_id", id).Int("role_id", in.RoleID).Msg("rol actualizado")
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		RoleID:      int(u.RoleID),
		RoleName:    u.RoleID.Name(),
		CreatedAt:   u.CreatedAt,
	}
}
