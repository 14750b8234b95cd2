// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the enumerated authorization role of a [User].
type Role string

const (
	RoleStudent       Role = "student"
	RoleTeacher       Role = "teacher"
	RoleSeniorTeacher Role = "senior_teacher"
	RoleHeadTeacher   Role = "head_teacher"
	RoleHOD           Role = "hod"
	RoleAdmin         Role = "admin"
)

// Dashboard routes returned to the client for post-login redirection.
const (
	DashboardAdmin   = "/dashboard/admin"
	DashboardHOD     = "/dashboard/hod"
	DashboardTeacher = "/dashboard/teacher"
	DashboardStudent = "/dashboard/student"
)

var allRoles = []Role{
	RoleStudent,
	RoleTeacher,
	RoleSeniorTeacher,
	RoleHeadTeacher,
	RoleHOD,
	RoleAdmin,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

// DashboardRoute maps the role to its dashboard. Unknown roles land on the
// student dashboard.
func (r Role) DashboardRoute() string {
	switch r {
	case RoleAdmin, RoleHeadTeacher:
		return DashboardAdmin
	case RoleHOD:
		return DashboardHOD
	case RoleTeacher, RoleSeniorTeacher:
		return DashboardTeacher
	default:
		return DashboardStudent
	}
}

func (r Role) String() string {
	return string(r)
}
