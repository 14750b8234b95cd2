// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sayansi-yathu/auth-service/models"
)

// studentIDPattern is STU-YYYY-{G9|G10|G11|G12|F1|F2}-NNN with a 3 to 5 digit
// index. It is matched against the uppercased input.
var studentIDPattern = regexp.MustCompile(`^STU-(\d{4})-(G9|G10|G11|G12|F1|F2)-(\d{3,5})$`)

// ParseStudentID normalizes raw to uppercase and decodes it. Surrounding
// whitespace is not stripped. Grade codes yield the grade number ("10"),
// form codes keep the code ("F1").
func ParseStudentID(raw string) (models.StudentID, error) {
	normalized := strings.ToUpper(raw)

	m := studentIDPattern.FindStringSubmatch(normalized)
	if m == nil {
		return models.StudentID{}, fmt.Errorf("%w: %q", ErrInvalidStudentID, raw)
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return models.StudentID{}, fmt.Errorf("%w: %w", ErrInvalidStudentID, err)
	}

	id := models.StudentID{
		Normalized: normalized,
		Year:       year,
		Code:       m[2],
		Index:      m[3],
	}

	if strings.HasPrefix(id.Code, "G") {
		id.Type = models.StudentIDGrade
		id.GradeOrForm = strings.TrimPrefix(id.Code, "G")
	} else {
		id.Type = models.StudentIDForm
		id.GradeOrForm = id.Code
	}

	return id, nil
}
