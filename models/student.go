// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// StudentIdentity is the optional 1:1 extension of a student [User].
type StudentIdentity struct {
	StudentID    string `db:"student_id" json:"student_id"`
	GradeOrForm  string `db:"grade_or_form" json:"grade_or_form"`
	Class        string `db:"class" json:"class"`
	EnrolledYear int    `db:"enrolled_year" json:"enrolled_year"`
	LinkedUserID int64  `db:"linked_user_id" json:"-"`
}

// TableName returns the name of the database table
// associated with the StudentIdentity model.
func (s StudentIdentity) TableName() string {
	return "students"
}

// StudentProfile is the student block embedded in a [UserSummary].
type StudentProfile struct {
	StudentID    string `json:"student_id"`
	GradeOrForm  string `json:"grade_or_form"`
	Class        string `json:"class,omitempty"`
	EnrolledYear int    `json:"enrolled_year,omitempty"`
}

// Profile projects the identity into its public profile block.
func (s StudentIdentity) Profile() StudentProfile {
	return StudentProfile{
		StudentID:    s.StudentID,
		GradeOrForm:  s.GradeOrForm,
		Class:        s.Class,
		EnrolledYear: s.EnrolledYear,
	}
}

// StudentIDType tells whether a student ID carries a grade (G9..G12) or a
// form (F1, F2) code.
type StudentIDType string

const (
	StudentIDGrade StudentIDType = "grade"
	StudentIDForm  StudentIDType = "form"
)

// StudentID is the parsed form of an identifier such as "STU-2025-G10-001".
type StudentID struct {
	// Normalized is the uppercase identifier as stored in the students table.
	Normalized string

	Year int

	// Code is the raw grade/form code, e.g. "G10" or "F1".
	Code string

	Type StudentIDType

	// GradeOrForm is the grade number ("10") for grade codes and the code
	// itself ("F1") for form codes.
	GradeOrForm string

	// Index is the zero-padded enrolment index, 3 to 5 digits.
	Index string
}

// Grade returns the numeric grade for grade-type IDs.
func (s StudentID) Grade() (int, bool) {
	if s.Type != StudentIDGrade {
		return 0, false
	}
	grade, err := strconv.Atoi(s.GradeOrForm)
	if err != nil {
		return 0, false
	}
	return grade, true
}
