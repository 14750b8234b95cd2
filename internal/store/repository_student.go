// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/models"
)

type studentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStudentRepository constructs a [StudentRepository] over the "students"
// table.
func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

// FindStudentByStudentID matches the stored (uppercase) student_id exactly.
func (r *studentRepository) FindStudentByStudentID(ctx context.Context, studentID string) (models.StudentIdentity, error) {
	return r.findStudent(ctx, "*studentRepository.FindStudentByStudentID", sq.Eq{"student_id": studentID})
}

func (r *studentRepository) FindStudentByUserID(ctx context.Context, userID int64) (models.StudentIdentity, error) {
	return r.findStudent(ctx, "*studentRepository.FindStudentByUserID", sq.Eq{"linked_user_id": userID})
}

func (r *studentRepository) findStudent(ctx context.Context, funcName string, where sq.Eq) (models.StudentIdentity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStudentQuery(r.db.builder, where)
	if err != nil {
		return models.StudentIdentity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var student models.StudentIdentity
	if err = r.db.GetContext(ctx, &student, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StudentIdentity{}, ErrStudentNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting student identity")
		return models.StudentIdentity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return student, nil
}
