package client

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidNationalID(nationalID string) bool {
	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" {
		return false
	}

	for _, char := range nationalID {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
