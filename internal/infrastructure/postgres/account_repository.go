package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implements AccountRepository over PostgreSQL (pool or tx).
type AccountRepo struct {
	q Querier
}

func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, name, phone, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Email, account.PasswordHash, account.Name, account.Phone,
		account.Role, account.Status, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, name, phone, role, status, created_at, updated_at
		FROM accounts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get account")
}

func (r *AccountRepo) FindByEmail(email string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, name, phone, role, status, created_at, updated_at
		FROM accounts WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "find account by email")
}

func (r *AccountRepo) List(role string, limit, offset int) ([]*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, name, phone, role, status, created_at, updated_at
		FROM accounts
		WHERE ($1 = '' OR role = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Phone, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET email = $2, name = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Email, account.Name, account.Phone, account.Status, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

func (r *AccountRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update account status: %w", err)
	}
	return nil
}

func (r *AccountRepo) scanOne(row pgx.Row, op string) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Phone, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
