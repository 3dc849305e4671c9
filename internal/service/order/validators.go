package order

import "strings"

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}
