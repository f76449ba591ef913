// Package store is the SQLite persistence layer behind the development
// backend: accounts, onboarding profiles, and questionnaire submissions,
// with averages computed in SQL at read time.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/jmaydwell1/eliteprep/internal/types"
)

// SQLiteStore represents the SQLite-backed user database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore instance.
// It initializes the database with WAL mode, applies pragmas, and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Ensure parent directory exists
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := enablePragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable pragmas: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// enablePragmas sets SQLite pragmas for optimal performance and safety.
func enablePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateUser registers an account with a bcrypt-hashed password.
func (s *SQLiteStore) CreateUser(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	var exists int
	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if exists > 0 {
		return ErrDuplicateUser
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, created_at) VALUES (?, ?, ?)",
		email, string(hash), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Authenticate verifies a login. Unknown emails and wrong passwords both
// return ErrInvalidCredentials so the response does not leak which failed.
func (s *SQLiteStore) Authenticate(ctx context.Context, email, password string) error {
	var hash string
	err := s.db.QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE email = ?", email).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("query user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// UserExists reports whether the email is registered.
func (s *SQLiteStore) UserExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return count > 0, nil
}

// UpsertProfile stores the onboarding profile for an existing user,
// replacing any previous submission wholesale.
func (s *SQLiteStore) UpsertProfile(ctx context.Context, p types.OnboardingProfile) error {
	exists, err := s.UserExists(ctx, p.Email)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	sportJSON, err := json.Marshal(p.Sport)
	if err != nil {
		return fmt.Errorf("encode sport: %w", err)
	}

	var birthdate any
	if p.Birthdate != nil {
		birthdate = p.Birthdate.UTC().Format(time.RFC3339)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO onboarding_profiles
			(email, name, birthdate, gender, city, state, sport,
			 athletic_status, handicap, expectation, goal, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			name = excluded.name,
			birthdate = excluded.birthdate,
			gender = excluded.gender,
			city = excluded.city,
			state = excluded.state,
			sport = excluded.sport,
			athletic_status = excluded.athletic_status,
			handicap = excluded.handicap,
			expectation = excluded.expectation,
			goal = excluded.goal,
			updated_at = excluded.updated_at`,
		p.Email, p.Name, birthdate, string(p.Gender), p.City, p.State,
		string(sportJSON), string(p.AthleticStatus), p.Handicap,
		p.Expectation, p.Goal, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// Profile returns the stored onboarding profile for the user.
func (s *SQLiteStore) Profile(ctx context.Context, email string) (*types.OnboardingProfile, error) {
	var (
		p         types.OnboardingProfile
		birthdate sql.NullString
		sportJSON string
		gender    string
		status    string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT email, name, birthdate, gender, city, state, sport,
		       athletic_status, handicap, expectation, goal
		FROM onboarding_profiles WHERE email = ?`, email).Scan(
		&p.Email, &p.Name, &birthdate, &gender, &p.City, &p.State,
		&sportJSON, &status, &p.Handicap, &p.Expectation, &p.Goal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	p.Gender = types.Gender(gender)
	p.AthleticStatus = types.AthleticStatus(status)
	if birthdate.Valid {
		if t, perr := time.Parse(time.RFC3339, birthdate.String); perr == nil {
			p.Birthdate = &t
		}
	}
	if err := json.Unmarshal([]byte(sportJSON), &p.Sport); err != nil {
		return nil, fmt.Errorf("decode sport: %w", err)
	}
	return &p, nil
}

// AddTrend records a questionnaire submission with a server-assigned
// timestamp and returns the new row's ID.
func (s *SQLiteStore) AddTrend(ctx context.Context, sub types.QuestionnaireSubmission) (string, error) {
	exists, err := s.UserExists(ctx, sub.Email)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrNotFound
	}

	id := ulid.Make().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO performance_trends
			(id, email, focus, confidence, anxiety, enjoyment, burnout,
			 effort, motivation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sub.Email, sub.Focus, sub.Confidence, sub.Anxiety,
		sub.Enjoyment, sub.Burnout, sub.Effort, sub.Motivation,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("insert trend: %w", err)
	}
	return id, nil
}

// Averages computes per-trait and total averages across all of the user's
// submissions. ErrNotFound when the user does not exist; ErrNoTrends when
// they have no submissions yet. The total averages all seven answers.
func (s *SQLiteStore) Averages(ctx context.Context, email string) (*types.PerformanceAverages, error) {
	exists, err := s.UserExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	var (
		count                                                        int
		focus, anxiety, enjoyment, burnout, confidence, effort, motv sql.NullFloat64
	)
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(focus), AVG(anxiety), AVG(enjoyment),
		       AVG(burnout), AVG(confidence), AVG(effort), AVG(motivation)
		FROM performance_trends WHERE email = ?`, email).Scan(
		&count, &focus, &anxiety, &enjoyment, &burnout, &confidence, &effort, &motv)
	if err != nil {
		return nil, fmt.Errorf("query averages: %w", err)
	}
	if count == 0 {
		return nil, ErrNoTrends
	}

	total := (focus.Float64 + anxiety.Float64 + enjoyment.Float64 +
		burnout.Float64 + confidence.Float64 + effort.Float64 + motv.Float64) / 7

	return &types.PerformanceAverages{
		AverageFocus:      round1(focus.Float64),
		AverageAnxiety:    round1(anxiety.Float64),
		AverageEnjoyment:  round1(enjoyment.Float64),
		AverageBurnout:    round1(burnout.Float64),
		AverageConfidence: round1(confidence.Float64),
		TotalAverage:      round1(total),
	}, nil
}

// TrendCount returns the number of submissions for the user.
func (s *SQLiteStore) TrendCount(ctx context.Context, email string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM performance_trends WHERE email = ?", email).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count trends: %w", err)
	}
	return count, nil
}

// round1 rounds to one decimal place, matching the deployed backend's
// response formatting.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
