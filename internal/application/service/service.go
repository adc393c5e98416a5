// Package service implements the application ledger: submissions against
// existing accounts, per-email counting, and deletion.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	accountmodels "enrolld/internal/account/models"
	"enrolld/internal/application/models"
	"enrolld/internal/application/store"
	"enrolld/internal/platform/metrics"
	dErrors "enrolld/pkg/domain-errors"
	"enrolld/pkg/platform/sentinel"
)

// AccountFinder is the slice of the account store the ledger needs for its
// ownership check. The match is deliberately case-SENSITIVE, unlike
// signup/login; existing clients depend on the observable behavior.
type AccountFinder interface {
	FindByEmailExact(ctx context.Context, email string) (accountmodels.Account, error)
}

// Ledger records applications submitted against the account registry.
type Ledger struct {
	applications store.Store
	accounts     AccountFinder
	logger       *slog.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewLedger(applications store.Store, accounts AccountFinder, logger *slog.Logger, m *metrics.Metrics) *Ledger {
	return &Ledger{
		applications: applications,
		accounts:     accounts,
		logger:       logger,
		metrics:      m,
		now:          time.Now,
	}
}

// Submit validates the submission, resolves the owning account by exact
// email match, and appends a Pending entry to the ledger. Returns the
// assigned application ID.
func (l *Ledger) Submit(ctx context.Context, sub models.Submission) (int64, error) {
	if err := validate(sub); err != nil {
		return 0, err
	}

	account, err := l.accounts.FindByEmailExact(ctx, sub.ApplicantEmail)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return 0, dErrors.New(dErrors.CodeForbidden, "no account matches the applicant email")
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "could not read accounts")
	}

	app := models.Application{
		UserID:         account.ID,
		ApplicantEmail: sub.ApplicantEmail,
		FullName:       sub.FullName,
		BirthDate:      sub.BirthDate,
		NationalID:     sub.NationalID,
		Address:        sub.Address,
		PhoneNumber:    sub.PhoneNumber,
		Total:          sub.Total,
		PaymentMethod:  sub.PaymentMethod,
		College:        sub.College,
		Status:         models.StatusPending,
		SubmittedAt:    l.now().UTC(),
	}
	stored, err := l.applications.Append(ctx, app)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "could not persist application")
	}

	l.metrics.IncrementApplications()
	l.logger.InfoContext(ctx, "application submitted",
		"application_id", stored.ID,
		"user_id", stored.UserID,
	)
	return stored.ID, nil
}

// CountByEmail counts ledger entries whose applicant email matches
// exactly (case-sensitive).
func (l *Ledger) CountByEmail(ctx context.Context, email string) (int, error) {
	if strings.TrimSpace(email) == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "email is required")
	}
	apps, err := l.applications.All(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "could not read applications")
	}
	count := 0
	for _, app := range apps {
		if app.ApplicantEmail == email {
			count++
		}
	}
	return count, nil
}

// ListAll is the unfiltered administrative read.
func (l *Ledger) ListAll(ctx context.Context) ([]models.Application, error) {
	apps, err := l.applications.All(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not read applications")
	}
	return apps, nil
}

// Delete removes the application with the given identifier.
func (l *Ledger) Delete(ctx context.Context, id int64) error {
	if err := l.applications.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not persist applications")
	}
	return nil
}

func validate(sub models.Submission) error {
	required := map[string]string{
		"applicantEmail": sub.ApplicantEmail,
		"fullName":       sub.FullName,
		"birthDate":      sub.BirthDate,
		"nationalId":     sub.NationalID,
		"address":        sub.Address,
		"phoneNumber":    sub.PhoneNumber,
		"college":        sub.College,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return dErrors.New(dErrors.CodeInvalidInput, field+" is required")
		}
	}
	return nil
}
