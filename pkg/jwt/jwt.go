package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Los nombres de claim (id_usuario, nombre_usuario, id_rol) son el formato de wire
// que consumen los clientes existentes; no cambiarlos.
type Claims struct {
	jwt.RegisteredClaims
	UserID      int64  `json:"id_usuario"`
	DisplayName string `json:"nombre_usuario"`
	RoleID      int    `json:"id_rol"`
}

// Generate genera un token JWT firmado (HS256) con userID, displayName y roleID.
// expMinutes controla la vida del token; en producción es 60 (una hora).
func Generate(secret string, userID int64, displayName string, roleID int, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:      userID,
		DisplayName: displayName,
		RoleID:      roleID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims decodificados.
// El token se limpia de espacios en blanco antes de verificar: los tokens suelen
// llegar copiados/pegados con espacios alrededor.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta; el caller
// decide qué detalle expone (el error contiene la causa real, solo para logs).
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	cleanToken := strings.TrimSpace(tokenString)
	token, err := jwt.ParseWithClaims(cleanToken, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
