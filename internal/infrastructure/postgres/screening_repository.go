package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.ScreeningReportRepository = (*ScreeningReportRepo)(nil)

// ScreeningReportRepo implements ScreeningReportRepository over PostgreSQL.
type ScreeningReportRepo struct {
	q Querier
}

func NewScreeningReportRepository(q Querier) *ScreeningReportRepo {
	return &ScreeningReportRepo{q: q}
}

const screeningColumns = `id, application_id, provider_ref, status, summary, completed_at, created_at, updated_at`

func (r *ScreeningReportRepo) Create(report *entity.ScreeningReport) error {
	query := `
		INSERT INTO screening_reports (` + screeningColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.ApplicationID, report.ProviderRef, report.Status, report.Summary,
		report.CompletedAt, report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert screening report: %w", err)
	}
	return nil
}

func (r *ScreeningReportRepo) GetByID(id string) (*entity.ScreeningReport, error) {
	query := `SELECT ` + screeningColumns + ` FROM screening_reports WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get screening report")
}

func (r *ScreeningReportRepo) GetByApplicationID(applicationID string) (*entity.ScreeningReport, error) {
	query := `SELECT ` + screeningColumns + ` FROM screening_reports WHERE application_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, applicationID), "get screening report by application")
}

func (r *ScreeningReportRepo) GetByProviderRef(providerRef string) (*entity.ScreeningReport, error) {
	query := `SELECT ` + screeningColumns + ` FROM screening_reports WHERE provider_ref = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, providerRef), "get screening report by provider ref")
}

func (r *ScreeningReportRepo) Update(report *entity.ScreeningReport) error {
	query := `
		UPDATE screening_reports SET provider_ref = $2, status = $3, summary = $4, completed_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.ProviderRef, report.Status, report.Summary, report.CompletedAt, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update screening report: %w", err)
	}
	return nil
}

func (r *ScreeningReportRepo) scanOne(row pgx.Row, op string) (*entity.ScreeningReport, error) {
	var s entity.ScreeningReport
	err := row.Scan(&s.ID, &s.ApplicationID, &s.ProviderRef, &s.Status, &s.Summary,
		&s.CompletedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

var _ repository.IdentityVerificationRepository = (*IdentityVerificationRepo)(nil)

// IdentityVerificationRepo implements IdentityVerificationRepository.
type IdentityVerificationRepo struct {
	q Querier
}

func NewIdentityVerificationRepository(q Querier) *IdentityVerificationRepo {
	return &IdentityVerificationRepo{q: q}
}

const identityColumns = `id, account_id, provider_ref, status, completed_at, created_at, updated_at`

func (r *IdentityVerificationRepo) Create(v *entity.IdentityVerification) error {
	query := `
		INSERT INTO identity_verifications (` + identityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.AccountID, v.ProviderRef, v.Status, v.CompletedAt, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert identity verification: %w", err)
	}
	return nil
}

func (r *IdentityVerificationRepo) GetByProviderRef(providerRef string) (*entity.IdentityVerification, error) {
	query := `SELECT ` + identityColumns + ` FROM identity_verifications WHERE provider_ref = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, providerRef), "get identity verification")
}

func (r *IdentityVerificationRepo) GetLatestByAccount(accountID string) (*entity.IdentityVerification, error) {
	query := `
		SELECT ` + identityColumns + ` FROM identity_verifications
		WHERE account_id = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, accountID), "get latest identity verification")
}

func (r *IdentityVerificationRepo) Update(v *entity.IdentityVerification) error {
	query := `
		UPDATE identity_verifications SET status = $2, completed_at = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, v.ID, v.Status, v.CompletedAt, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update identity verification: %w", err)
	}
	return nil
}

func (r *IdentityVerificationRepo) scanOne(row pgx.Row, op string) (*entity.IdentityVerification, error) {
	var v entity.IdentityVerification
	err := row.Scan(&v.ID, &v.AccountID, &v.ProviderRef, &v.Status, &v.CompletedAt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &v, nil
}
