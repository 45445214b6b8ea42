package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.ContractorRepository = (*ContractorRepo)(nil)

// ContractorRepo implements ContractorRepository over PostgreSQL.
type ContractorRepo struct {
	q Querier
}

func NewContractorRepository(q Querier) *ContractorRepo {
	return &ContractorRepo{q: q}
}

const contractorColumns = `id, account_id, business_name, trade, license_number, license_state,
		license_status, license_expires_at, license_checked_at, rating_avg, rating_count,
		created_at, updated_at`

func (r *ContractorRepo) Create(profile *entity.ContractorProfile) error {
	query := `
		INSERT INTO contractor_profiles (` + contractorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.AccountID, profile.BusinessName, profile.Trade,
		profile.LicenseNumber, profile.LicenseState, profile.LicenseStatus,
		profile.LicenseExpiresAt, profile.LicenseCheckedAt, profile.RatingAvg, profile.RatingCount,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		// account_id is unique: one profile per contractor account.
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contractor profile: %w", err)
	}
	return nil
}

func (r *ContractorRepo) GetByID(id string) (*entity.ContractorProfile, error) {
	query := `SELECT ` + contractorColumns + ` FROM contractor_profiles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get contractor profile")
}

func (r *ContractorRepo) GetByAccountID(accountID string) (*entity.ContractorProfile, error) {
	query := `SELECT ` + contractorColumns + ` FROM contractor_profiles WHERE account_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, accountID), "get contractor profile by account")
}

func (r *ContractorRepo) Update(profile *entity.ContractorProfile) error {
	query := `
		UPDATE contractor_profiles SET business_name = $2, trade = $3, license_number = $4,
			license_state = $5, license_status = $6, license_expires_at = $7, license_checked_at = $8,
			updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.BusinessName, profile.Trade, profile.LicenseNumber, profile.LicenseState,
		profile.LicenseStatus, profile.LicenseExpiresAt, profile.LicenseCheckedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contractor profile: %w", err)
	}
	return nil
}

func (r *ContractorRepo) UpdateRating(id string, avg float64, count int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE contractor_profiles SET rating_avg = $2, rating_count = $3, updated_at = now() WHERE id = $1`,
		id, avg, count)
	if err != nil {
		return fmt.Errorf("update contractor rating: %w", err)
	}
	return nil
}

func (r *ContractorRepo) ListLicensesCheckedBefore(cutoff time.Time) ([]*entity.ContractorProfile, error) {
	query := `
		SELECT ` + contractorColumns + ` FROM contractor_profiles
		WHERE license_number != '' AND (license_checked_at IS NULL OR license_checked_at <= $1)`
	rows, err := r.q.Query(context.Background(), query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list profiles for license re-check: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContractorProfile
	for rows.Next() {
		p, err := scanContractorProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contractor profile: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ContractorRepo) scanOne(row pgx.Row, op string) (*entity.ContractorProfile, error) {
	p, err := scanContractorProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanContractorProfile(row pgx.Row) (*entity.ContractorProfile, error) {
	var p entity.ContractorProfile
	err := row.Scan(&p.ID, &p.AccountID, &p.BusinessName, &p.Trade, &p.LicenseNumber, &p.LicenseState,
		&p.LicenseStatus, &p.LicenseExpiresAt, &p.LicenseCheckedAt, &p.RatingAvg, &p.RatingCount,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
