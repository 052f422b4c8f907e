package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("user not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const userColumns = `
    id, email, first_name, last_name, role,
    payroll_country, COALESCE(contract_type, ''),
    hourly_rate, monthly_salary, COALESCE(normal_working_hours, 8),
    created_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role,
		&u.PayrollCountry, &u.ContractType,
		&u.HourlyRate, &u.MonthlySalary, &u.NormalWorkingHours,
		&u.CreatedAt,
	)
	return u, err
}

// NewUser carries the fields needed to create an account.
type NewUser struct {
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Role               string   `json:"role"`
	PayrollCountry     string   `json:"payrollCountry"`
	ContractType       string   `json:"contractType"`
	HourlyRate         *float64 `json:"hourlyRate"`
	MonthlySalary      *float64 `json:"monthlySalary"`
	NormalWorkingHours float64  `json:"normalWorkingHours"`
}

func (s *Store) Create(ctx context.Context, n NewUser, passwordHash string) (User, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO users (
      email, password_hash, first_name, last_name, role,
      payroll_country, contract_type, hourly_rate, monthly_salary, normal_working_hours
    )
    VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,''),$8,$9,$10)
    RETURNING `+userColumns+`
  `, n.Email, passwordHash, n.FirstName, n.LastName, n.Role,
		n.PayrollCountry, n.ContractType, n.HourlyRate, n.MonthlySalary, n.NormalWorkingHours)
	return scanUser(row)
}

func (s *Store) GetByID(ctx context.Context, id string) (User, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+userColumns+`
    FROM users
    WHERE id = $1
  `, id)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

// GetCredentials returns a user plus the stored password hash, for login.
func (s *Store) GetCredentials(ctx context.Context, email string) (User, string, error) {
	var u User
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT `+userColumns+`, password_hash
    FROM users
    WHERE email = $1
  `, email).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role,
		&u.PayrollCountry, &u.ContractType,
		&u.HourlyRate, &u.MonthlySalary, &u.NormalWorkingHours,
		&u.CreatedAt, &hash,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, "", ErrNotFound
	}
	return u, hash, err
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+userColumns+`
    FROM users
    ORDER BY last_name, first_name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// ListIDsAndCountries returns every user's id and payroll country, for the
// period-reminder job.
func (s *Store) ListIDsAndCountries(ctx context.Context) (map[string]string, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, payroll_country FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, country string
		if err := rows.Scan(&id, &country); err != nil {
			return nil, err
		}
		out[id] = country
	}
	return out, rows.Err()
}

func (s *Store) UpdatePayrollProfile(ctx context.Context, id string, update PayrollProfileUpdate) (User, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE users
    SET payroll_country = $2,
        contract_type = NULLIF($3, ''),
        hourly_rate = $4,
        monthly_salary = $5,
        normal_working_hours = $6
    WHERE id = $1
    RETURNING `+userColumns+`
  `, id, update.PayrollCountry, update.ContractType, update.HourlyRate, update.MonthlySalary, update.NormalWorkingHours)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}
