package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword создает bcrypt хеш пароля (соль генерируется внутри bcrypt)
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша.
// Сравнение выполняет bcrypt, строки напрямую не сравниваются.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
