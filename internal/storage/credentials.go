package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/model"
)

// SaveCredential inserts a credential record. At most one credential may
// exist per email.
func (s *SQLiteStorage) SaveCredential(ctx context.Context, cred *model.StoredCredential) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCredential(cred); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (email, name, password_hash, avatar, social) VALUES (?, ?, ?, ?, ?)`,
		cred.Email, cred.Name, cred.PasswordHash, cred.Avatar, cred.Social)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", common.ErrDuplicateAccount, cred.Email)
		}
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// GetCredential looks up a credential by email.
func (s *SQLiteStorage) GetCredential(ctx context.Context, email string) (*model.StoredCredential, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(email, "email"); err != nil {
		return nil, err
	}

	var cred model.StoredCredential
	err := s.db.QueryRowContext(ctx,
		`SELECT email, name, password_hash, avatar, social, created_at FROM credentials WHERE email = ?`,
		email).Scan(&cred.Email, &cred.Name, &cred.PasswordHash, &cred.Avatar, &cred.Social, &cred.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", common.ErrAccountNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	return &cred, nil
}

// ListCredentials returns all registered credentials ordered by creation time.
func (s *SQLiteStorage) ListCredentials(ctx context.Context) ([]model.StoredCredential, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT email, name, password_hash, avatar, social, created_at FROM credentials ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var creds []model.StoredCredential
	for rows.Next() {
		var cred model.StoredCredential
		if err := rows.Scan(&cred.Email, &cred.Name, &cred.PasswordHash, &cred.Avatar, &cred.Social, &cred.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan credential: %w", err)
		}
		creds = append(creds, cred)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credentials: %w", err)
	}
	return creds, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
