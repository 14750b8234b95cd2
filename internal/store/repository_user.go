// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and lockout counters against the
// "users" table (and "students" for student registrations and lock checks).
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record, plus the student identity when one
// is given, inside a single transaction.
//
// Error handling:
//   - unique violations → [ErrEmailAlreadyExists], [ErrUsernameAlreadyExists]
//     or [ErrStudentIDAlreadyExists], all wrapping [ErrAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User, student *models.StudentIdentity) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	userQuery, userArgs, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	// create user in db
	if err = tx.QueryRowxContext(ctx, userQuery, userArgs...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("pg_code", postgresError(err)).Msg("error inserting user")
		if conflict := uniqueViolation(err); conflict != nil {
			return models.User{}, conflict
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if student != nil {
		student.LinkedUserID = user.UserID

		studentQuery, studentArgs, err := buildInsertStudentQuery(r.db.builder, *student)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, studentQuery, studentArgs...); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting student identity")
			if conflict := uniqueViolation(err); conflict != nil {
				return models.User{}, conflict
			}
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// FindUserByID retrieves a user by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getUser(ctx, "*userRepository.FindUserByID", query, args)
}

// FindUserByEmailOrUsername retrieves the user whose email or username is
// exactly identifier. No case folding is applied.
func (r *userRepository) FindUserByEmailOrUsername(ctx context.Context, identifier string) (models.User, error) {
	query, args, err := buildSelectUserByEmailOrUsernameQuery(r.db.builder, identifier)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getUser(ctx, "*userRepository.FindUserByEmailOrUsername", query, args)
}

func (r *userRepository) getUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Str("pg_code", postgresError(err)).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindLockStates returns lockout snapshots for every account reachable
// through the identifier as email, username or linked student_id. The
// result is empty when nothing matches.
func (r *userRepository) FindLockStates(ctx context.Context, identifier, studentID string) ([]models.LockState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLockStatesQuery(r.db.builder, identifier, studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var states []models.LockState
	if err = r.db.SelectContext(ctx, &states, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.FindLockStates").Msg("error selecting lock state")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return states, nil
}

// UpdateLoginAttempts writes the counter and lock expiry of one account.
// Updating a missing account is reported as [ErrNoUserWasFound].
func (r *userRepository) UpdateLoginAttempts(ctx context.Context, userID int64, failedAttempts int, lockedUntil *time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLoginAttemptsQuery(r.db.builder, userID, failedAttempts, lockedUntil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLoginAttempts").Int64("user_id", userID).Msg("error updating login attempts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
