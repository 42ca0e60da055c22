package jobs

import (
	"context"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/logger"
	"volunteer-portal-backend/internal/onboarding"
)

// SendOnboardingReminders emails every volunteer who has steps waiting on
// them. Each person gets at most one email per run.
func (jr *JobRunner) SendOnboardingReminders() {
	jr.runWithRecovery("SendOnboardingReminders", func() {
		ctx := context.Background()

		people, err := jr.services.Onboarding.ListOnboardingPeople(ctx)
		if err != nil {
			logger.Error("Failed to list onboarding people", "error", err)
			return
		}

		sent, failed := 0, 0
		for _, p := range people {
			var pending []domain.Step
			for _, step := range p.Progress.Steps {
				if step.Status == domain.FieldStatusPendingUser {
					pending = append(pending, step)
				}
			}
			if len(pending) == 0 || p.Snapshot.Email == "" {
				continue
			}

			if err := jr.services.Email.SendOnboardingReminder(ctx, p.Snapshot.Email, p.Snapshot.Name, pending); err != nil {
				logger.Error("Failed to send onboarding reminder",
					"person_id", p.Snapshot.PersonID,
					"email", p.Snapshot.Email,
					"error", err)
				failed++
				continue
			}
			sent++
			logger.Debug("Sent onboarding reminder", "person_id", p.Snapshot.PersonID, "pending_steps", len(pending))
		}

		logger.Info("Onboarding reminders sent", "sent", sent, "failed", failed, "people", len(people))
	})
}

// SendExpirationNotices warns volunteers whose background check or
// trainings lapse within the configured window.
func (jr *JobRunner) SendExpirationNotices() {
	jr.runWithRecovery("SendExpirationNotices", func() {
		ctx := context.Background()
		window := jr.config.Reminders.ExpirationWindowDays
		today := jr.now()

		people, err := jr.services.Onboarding.ListOnboardingPeople(ctx)
		if err != nil {
			logger.Error("Failed to list onboarding people", "error", err)
			return
		}

		sent, failed := 0, 0
		for _, p := range people {
			expiring := onboarding.ExpiringCertifications(p.Required, p.Snapshot, today, window)
			if len(expiring) == 0 || p.Snapshot.Email == "" {
				continue
			}

			if err := jr.services.Email.SendExpirationNotice(ctx, p.Snapshot.Email, p.Snapshot.Name, expiring); err != nil {
				logger.Error("Failed to send expiration notice",
					"person_id", p.Snapshot.PersonID,
					"email", p.Snapshot.Email,
					"error", err)
				failed++
				continue
			}
			sent++
		}

		logger.Info("Expiration notices sent", "sent", sent, "failed", failed, "window_days", window)
	})
}
