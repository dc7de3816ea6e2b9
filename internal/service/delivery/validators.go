package delivery

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidConfirmationCode(code string) bool {
	if len(code) != confirmationCodeLength {
		return false
	}
	for _, char := range code {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStars(stars int32) bool {
	return stars >= 1 && stars <= 5
}
