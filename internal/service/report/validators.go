package report

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func validateOutcomeDetails(outcome entities.ReportOutcomeType, failureReason *string) error {
	if outcome != entities.OutcomeFailed {
		return nil
	}
	if failureReason == nil || strings.TrimSpace(*failureReason) == "" {
		return ErrMissingFailureReason
	}
	return nil
}
