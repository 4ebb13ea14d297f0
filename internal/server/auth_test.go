package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nruhp/newskprinter/internal/storage"
)

func signedToken(t *testing.T, role string) string {
	t.Helper()
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@skprinters.in",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "admin@skprinters.in",
		Role:  role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testConfig().Auth.JWTSecret))
	require.NoError(t, err)
	return signed
}

func adminToken(t *testing.T) string {
	return signedToken(t, roleAdmin)
}

func seedAdmin(t *testing.T, store *fakeStore, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	store.users[email] = &storage.User{
		ID:           1,
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         roleAdmin,
	}
}

func TestLogin(t *testing.T) {
	srv, store, _ := newTestServer(t)
	seedAdmin(t, store, "admin@skprinters.in", "s3cret")

	rec := doJSON(srv, http.MethodPost, "/api/auth/login",
		`{"email":"admin@skprinters.in","password":"s3cret"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, decodeEnvelope(t, rec))
	require.NotEmpty(t, data["token"])
	require.Equal(t, "admin@skprinters.in", data["email"])

	// The minted token must open the admin API.
	token, ok := data["token"].(string)
	require.True(t, ok)
	listRec := doJSON(srv, http.MethodGet, "/api/quotes", "", token)
	require.Equal(t, http.StatusOK, listRec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv, store, _ := newTestServer(t)
	seedAdmin(t, store, "admin@skprinters.in", "s3cret")

	rec := doJSON(srv, http.MethodPost, "/api/auth/login",
		`{"email":"admin@skprinters.in","password":"wrong"}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MissingCredentials(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/auth/login", `{"email":"a@b.com"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminOnly_RejectsNonAdminRole(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodGet, "/api/quotes", "", signedToken(t, "editor"))

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_RejectsGarbageToken(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodGet, "/api/quotes", "", "not-a-jwt")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
