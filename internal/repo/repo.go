package repo

import (
	"context"
	"database/sql"
	"time"
)

type Profile struct {
	ID          int        `json:"id"`
	Login       string     `json:"login"`
	Email       string     `json:"email"`
	Description string     `json:"description"`
	IsPro       bool       `json:"is_pro"`
	ProUntil    *time.Time `json:"pro_until,omitempty"`
}

type ProTicket struct {
	ID     int
	UserID int
	Status string
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) error
	CreateProTicket(ctx context.Context, userID int, note string) (int, error)
	GetProTicket(ctx context.Context, id int) (ProTicket, error)
	ListPendingProTickets(ctx context.Context) ([]ProTicket, error)
	UpdateProTicketStatus(ctx context.Context, id int, status string) error
	SetProUntil(ctx context.Context, userID int, until time.Time) error
	ClearPro(ctx context.Context, userID int) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, ''), pro_until FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description, &p.ProUntil)
	if err != nil {
		return Profile{}, err
	}
	p.IsPro = p.ProUntil != nil && p.ProUntil.After(time.Now())
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) error {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, login, description)
	return err
}

func (r *PostgresUserRepository) CreateProTicket(ctx context.Context, userID int, note string) (int, error) {
	var id int
	query := "INSERT INTO pro_tickets (user_id, note, status) VALUES ($1, $2, 'pending') RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, note).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetProTicket(ctx context.Context, id int) (ProTicket, error) {
	var t ProTicket
	query := "SELECT id, user_id, status FROM pro_tickets WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.UserID, &t.Status)
	return t, err
}

func (r *PostgresUserRepository) ListPendingProTickets(ctx context.Context) ([]ProTicket, error) {
	query := "SELECT id, user_id, status FROM pro_tickets WHERE status='pending' ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProTicket
	for rows.Next() {
		var t ProTicket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Status); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresUserRepository) UpdateProTicketStatus(ctx context.Context, id int, status string) error {
	query := "UPDATE pro_tickets SET status=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *PostgresUserRepository) SetProUntil(ctx context.Context, userID int, until time.Time) error {
	query := "UPDATE users SET pro_until=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, userID, until)
	return err
}

func (r *PostgresUserRepository) ClearPro(ctx context.Context, userID int) error {
	query := "UPDATE users SET pro_until=NULL WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
