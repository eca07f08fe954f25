package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/pkg/jwt"
)

const secret = "jobboard-secret"

func TestSigner_Identidad(t *testing.T) {
	s := jwt.NewSigner(secret, "jobboard-api", time.Hour)
	want := jwt.Identity{UserID: "u1", Role: "employer", CompanyID: "c1"}

	tok, err := s.Sign(want)
	require.NoError(t, err)
	got, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	claims := gojwt.MapClaims{}
	_, _, err = gojwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, "jobboard-api", claims["iss"])
	assert.NotContains(t, claims, "user_id")
}

func TestSigner_CandidatoSinEmpresa(t *testing.T) {
	s := jwt.NewSigner(secret, "", time.Hour)
	tok, err := s.Sign(jwt.Identity{UserID: "u2", Role: "job_seeker"})
	require.NoError(t, err)

	claims := gojwt.MapClaims{}
	_, _, err = gojwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.NotContains(t, claims, "company_id")

	got, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Empty(t, got.CompanyID)
}

func TestSigner_Rechazos(t *testing.T) {
	s := jwt.NewSigner(secret, "jobboard-api", time.Hour)
	id := jwt.Identity{UserID: "u1", Role: "admin"}
	sign := func(signer *jwt.Signer) string {
		tok, err := signer.Sign(id)
		require.NoError(t, err)
		return tok
	}
	hs512, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.RegisteredClaims{
		Subject: "u1", Issuer: "jobboard-api", ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	sinVencimiento, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject: "u1", Issuer: "jobboard-api",
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	sinSujeto, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Issuer: "jobboard-api", ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := map[string]string{
		"vencido":         sign(jwt.NewSigner(secret, "jobboard-api", -time.Minute)),
		"otro secreto":    sign(jwt.NewSigner("otro", "jobboard-api", time.Hour)),
		"otro emisor":     sign(jwt.NewSigner(secret, "otro-servicio", time.Hour)),
		"algoritmo HS512": hs512,
		"sin vencimiento": sinVencimiento,
		"sin sujeto":      sinSujeto,
		"basura":          "a.b.c",
	}
	for name, tok := range tests {
		_, err := s.Verify(tok)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken, name)
	}
}

func TestSigner_SinSecreto(t *testing.T) {
	s := jwt.NewSigner("", "jobboard-api", time.Hour)
	_, err := s.Sign(jwt.Identity{UserID: "u1"})
	assert.ErrorIs(t, err, jwt.ErrNoSecret)
	_, err = s.Verify("a.b.c")
	assert.ErrorIs(t, err, jwt.ErrNoSecret)

	_, err = jwt.NewSigner(secret, "", time.Hour).Sign(jwt.Identity{Role: "admin"})
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
