// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the typed body of POST /api/auth/login.
type LoginRequest struct {
	Identifier        string `json:"identifier" validate:"required"`
	Password          string `json:"password" validate:"required"`
	RememberDevice    bool   `json:"remember_device,omitempty"`
	DeviceFingerprint string `json:"device_fingerprint,omitempty"`
}

// ClientInfo describes where a request came from.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// LoginResult is what a successful login produces for the transport layer.
type LoginResult struct {
	Token   Token
	User    User
	Student *StudentIdentity
}

// LoginResponse is the 200 body of the login endpoint.
type LoginResponse struct {
	Message              string      `json:"message"`
	Token                string      `json:"token"`
	User                 UserSummary `json:"user"`
	DashboardRoute       string      `json:"dashboard_route"`
	RequiresVerification bool        `json:"requires_verification"`
}

// ErrorResponse is the body of every non-2xx JSON answer.
type ErrorResponse struct {
	Message string `json:"message"`
	Locked  bool   `json:"locked,omitempty"`
}

// RegisterRequest is the typed body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string                  `json:"name" validate:"required,max=255"`
	Email    string                  `json:"email" validate:"required,email,max=255"`
	Username string                  `json:"username,omitempty" validate:"omitempty,min=3,max=64"`
	Password string                  `json:"password" validate:"required,min=8,max=72"`
	Role     Role                    `json:"role,omitempty" validate:"omitempty,role"`
	Student  *StudentRegisterDetails `json:"student,omitempty"`
}

// StudentRegisterDetails carries the student identity created with a
// student account.
type StudentRegisterDetails struct {
	StudentID    string `json:"student_id" validate:"required"`
	GradeOrForm  string `json:"grade_or_form,omitempty" validate:"omitempty,max=16"`
	Class        string `json:"class,omitempty" validate:"omitempty,max=64"`
	EnrolledYear int    `json:"enrolled_year,omitempty" validate:"omitempty,min=1900,max=2100"`
}

// RegisterResponse is the 201 body of the register endpoint.
type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// SessionResponse is the 200 body of GET /api/auth/me.
type SessionResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          UserSummary `json:"user"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version,omitempty"`
	Time     string `json:"time"`
	Database string `json:"database"`
}
