package notifier

import (
	"fmt"
	"time"

	"go-jobboard-client/internal/domain"
)

// Display durations for transient alerts. Accepted gets a longer run so good
// news is not missed.
const (
	defaultAlertDuration  = 6 * time.Second
	acceptedAlertDuration = 8 * time.Second
)

// transitionAlert builds the alert for a status change observed by polling.
// The old status is implied; only the new status is named.
func transitionAlert(app *domain.Application, newStatus string) (string, domain.AlertSeverity, time.Duration) {
	jobTitle := app.JobTitle()
	company := app.CompanyName()

	switch newStatus {
	case domain.ApplicationStatusAccepted:
		return fmt.Sprintf("Congratulations! Your application for %q at %s has been accepted!", jobTitle, company),
			domain.AlertSuccess, acceptedAlertDuration
	case domain.ApplicationStatusRejected:
		return fmt.Sprintf("Your application for %q at %s has been rejected. Don't give up, keep applying!", jobTitle, company),
			domain.AlertError, defaultAlertDuration
	case domain.ApplicationStatusReviewing:
		return fmt.Sprintf("Your application for %q at %s is now under review.", jobTitle, company),
			domain.AlertInfo, defaultAlertDuration
	case domain.ApplicationStatusPending:
		return fmt.Sprintf("Your application for %q at %s is pending.", jobTitle, company),
			domain.AlertWarning, defaultAlertDuration
	default:
		return fmt.Sprintf("Status updated for your application to %q at %s.", jobTitle, company),
			domain.AlertInfo, defaultAlertDuration
	}
}

// currentAlert builds the alert shown right after a page loads a fresh list.
// Only pending/accepted/rejected are alertable on refresh; everything else is
// skipped entirely.
func currentAlert(app *domain.Application) (string, domain.AlertSeverity, bool) {
	jobTitle := app.JobTitle()
	company := app.CompanyName()

	switch domain.NormalizeStatus(app.Status) {
	case domain.ApplicationStatusAccepted:
		return fmt.Sprintf("Your application for %q at %s is accepted", jobTitle, company), domain.AlertSuccess, true
	case domain.ApplicationStatusRejected:
		return fmt.Sprintf("Your application for %q at %s is rejected", jobTitle, company), domain.AlertError, true
	case domain.ApplicationStatusPending:
		return fmt.Sprintf("Your application for %q at %s is pending", jobTitle, company), domain.AlertWarning, true
	default:
		return "", domain.AlertInfo, false
	}
}
