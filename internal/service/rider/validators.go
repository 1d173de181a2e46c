package rider

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidPhone принимает номер в формате E.164: плюс и от 7 до 15 цифр.
func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	digits := phone[1:]
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}
	for _, char := range digits {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStatus(status entities.RiderStatusType) bool {
	switch status {
	case entities.RiderOnline, entities.RiderOffline:
		return true
	default:
		return false
	}
}

func isValidID(id int64) bool {
	return id > 0
}
