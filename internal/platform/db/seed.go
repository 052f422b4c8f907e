package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"timekeep/internal/domain/users"
	"timekeep/internal/platform/config"
)

// Seed ensures an admin account exists so the API is usable after first boot.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", cfg.SeedAdminEmail).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, first_name, last_name, role, payroll_country)
    VALUES ($1, $2, 'Admin', 'User', $3, 'CH')
  `, cfg.SeedAdminEmail, string(hash), users.RoleAdmin)
	return err
}
