package branch_admin

import (
	"net/mail"
	"strings"
)

const (
	maxNameLength     = 255
	minPasswordLength = 8
	// bcrypt игнорирует все после 72 байт
	maxPasswordLength = 72
)

func isValidName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && len(name) <= maxNameLength
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// "Name <a@b>" не принимаем, только голый адрес
	return addr.Address == email && len(email) <= maxNameLength
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength && len(password) <= maxPasswordLength
}
