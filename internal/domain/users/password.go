package users

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost por defecto; los tests lo bajan vía Service.cost.
const bcryptCost = 12

func hashPassword(password string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
