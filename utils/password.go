package utils

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when a login email isn't found, keeping
// response time constant and preventing timing-based account enumeration.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		hash = string(dummyHash)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
