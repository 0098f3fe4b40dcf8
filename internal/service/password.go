package service

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher encapsula el primitivo one-way (bcrypt) que protege tanto
// contraseñas como refresh tokens persistidos.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plain string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

func (h *PasswordHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// HashToken aplica bcrypt sobre un resumen del token. bcrypt rechaza entradas
// de más de 72 bytes y un JWT firmado siempre las supera, así que el token se
// reduce primero con sha256.
func (h *PasswordHasher) HashToken(token string) (string, error) {
	return h.Hash(tokenDigest(token))
}

// VerifyToken compara un token presentado contra el hash almacenado.
func (h *PasswordHasher) VerifyToken(token, hash string) bool {
	return h.Verify(tokenDigest(token), hash)
}

func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawStdEncoding.EncodeToString(sum[:])
}
