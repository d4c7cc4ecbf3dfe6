package helpers

import "golang.org/x/crypto/bcrypt"

// bcrypt cost for stored credentials. DefaultCost keeps login latency
// tolerable while staying adaptive.
const hashCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password. The salt is generated per call,
// so hashing the same password twice yields different values.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches the stored hash.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
