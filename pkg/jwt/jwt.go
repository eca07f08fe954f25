// Package jwt emite y verifica los tokens de sesión de la API (HS256).
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret el servicio arrancó sin JWT_SECRET.
	ErrNoSecret = errors.New("jwt: secret vacío")
	// ErrInvalidToken firma, emisor, vigencia o contenido no válidos.
	ErrInvalidToken = errors.New("jwt: token inválido")
)

// Identity quién hace la petición. Rol y empresa viajan en el token para que las rutas
// autoricen sin consultar la base de datos. CompanyID solo aplica a empleadores.
type Identity struct {
	UserID    string
	Role      string
	CompanyID string
}

// sessionClaims el usuario va en "sub".
type sessionClaims struct {
	jwt.RegisteredClaims
	Role      string `json:"role"`
	CompanyID string `json:"company_id,omitempty"`
}

// Signer firma y verifica tokens con un secreto, un emisor y una vigencia fijos.
// Es seguro para uso concurrente.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

// NewSigner construye el firmador. Con issuer vacío no se exige emisor al verificar.
func NewSigner(secret, issuer string, ttl time.Duration) *Signer {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Signer{secret: []byte(secret), issuer: issuer, ttl: ttl, parser: jwt.NewParser(opts...)}
}

// Sign emite un token para id con la vigencia del firmador.
func (s *Signer) Sign(id Identity) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}
	if id.UserID == "" {
		return "", fmt.Errorf("%w: sin usuario", ErrInvalidToken)
	}
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role:      id.Role,
		CompanyID: id.CompanyID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify valida firma, algoritmo, emisor y vencimiento, y devuelve la identidad del token.
// Todo rechazo envuelve ErrInvalidToken.
func (s *Signer) Verify(token string) (Identity, error) {
	if len(s.secret) == 0 {
		return Identity{}, ErrNoSecret
	}
	var claims sessionClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: sin sub", ErrInvalidToken)
	}
	return Identity{UserID: claims.Subject, Role: claims.Role, CompanyID: claims.CompanyID}, nil
}
