// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sayansi-yathu/auth-service/internal/crypto"
	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/store"
	"github.com/sayansi-yathu/auth-service/models"
)

// registrationRoles are the roles an anonymous caller may register with.
var registrationRoles = []models.Role{models.RoleStudent, models.RoleTeacher}

// authService is the concrete implementation of AuthService.
// It orchestrates the login protocol over the lockout tracker, the resolver
// chain, password verification, token issuance, device trust and the
// security event log.
type authService struct {
	// users is the credential store.
	users store.UserRepository

	// students loads the student profile returned with a session.
	students store.StudentRepository

	// resolver turns a login identifier into an account.
	resolver IdentifierResolver

	tokens  TokenService
	lockout LockoutTracker
	devices DeviceTrustService
	events  SecurityEventLogger

	// hasher hashes new passwords and verifies login attempts in constant
	// time.
	hasher crypto.PasswordHasher

	// now is the clock used to evaluate locked_until.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// authDependencies groups the collaborators of authService.
type authDependencies struct {
	Users    store.UserRepository
	Students store.StudentRepository
	Resolver IdentifierResolver
	Tokens   TokenService
	Lockout  LockoutTracker
	Devices  DeviceTrustService
	Events   SecurityEventLogger
	Hasher   crypto.PasswordHasher
}

func newAuthService(deps authDependencies, logger *logger.Logger) *authService {
	return &authService{
		users:    deps.Users,
		students: deps.Students,
		resolver: deps.Resolver,
		tokens:   deps.Tokens,
		lockout:  deps.Lockout,
		devices:  deps.Devices,
		events:   deps.Events,
		hasher:   deps.Hasher,
		now:      time.Now,
		logger:   logger,
	}
}

// Login authenticates identifier + password.
//
// A locked account is rejected before its password is looked at, and that
// rejection is not audited. Every real credential attempt is appended to the
// security log. All credential failures collapse into ErrInvalidCredentials so
// callers cannot tell an unknown identifier from a wrong password.
func (a *authService) Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	// identifiers are matched as sent; only a blank one is rejected here
	identifier := req.Identifier
	if strings.TrimSpace(identifier) == "" || req.Password == "" {
		return models.LoginResult{}, ErrInvalidDataProvided
	}

	if a.lockout.IsLocked(ctx, identifier) {
		log.Info().Str("identifier", identifier).Msg("login rejected: account locked")
		return models.LoginResult{}, ErrAccountLocked
	}

	details := models.SecurityDetails{
		Identifier: identifier,
		Remembered: req.RememberDevice,
	}

	user, found, _ := a.resolver.Resolve(ctx, identifier)
	if !found {
		details.Reason = models.ReasonUnknownIdentifier
		a.events.LoginFailed(ctx, nil, client, details)
		log.Info().Str("identifier", identifier).Msg("login failed: unknown identifier")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	// the pre-check is best effort; the resolved row is authoritative
	if user.IsLocked(a.now()) {
		log.Info().Int64("user_id", user.UserID).Msg("login rejected: account locked")
		return models.LoginResult{}, ErrAccountLocked
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		locked := a.lockout.RegisterFailure(ctx, user)

		details.Reason = models.ReasonWrongPassword
		details.Locked = locked
		a.events.LoginFailed(ctx, &user.UserID, client, details)

		log.Info().Int64("user_id", user.UserID).Bool("locked", locked).Msg("login failed: wrong password")
		if locked {
			return models.LoginResult{}, ErrAccountLocked
		}
		return models.LoginResult{}, ErrInvalidCredentials
	}

	a.lockout.Reset(ctx, user)
	user.FailedAttempts = 0
	user.LockedUntil = nil

	token, err := a.tokens.Issue(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("token issuance failed")
		return models.LoginResult{}, err
	}

	details.Recognized = a.devices.Track(ctx, user.UserID, req.DeviceFingerprint, req.RememberDevice, client)
	a.events.LoginSucceeded(ctx, user.UserID, client, details)

	log.Info().Int64("user_id", user.UserID).Str("role", user.Role.String()).Msg("login succeeded")

	return models.LoginResult{
		Token:   token,
		User:    user,
		Student: a.studentProfile(ctx, user),
	}, nil
}

// Register creates a student or teacher account. The student block, when
// present, is normalized and defaults grade_or_form and enrolled_year from
// the parsed student ID.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, *models.StudentIdentity, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return models.User{}, nil, ErrInvalidDataProvided
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !slices.Contains(registrationRoles, role) {
		return models.User{}, nil, fmt.Errorf("%w: %q", ErrRegistrationRoleNotAllowed, role)
	}

	var student *models.StudentIdentity
	if req.Student != nil {
		if role != models.RoleStudent {
			return models.User{}, nil, ErrStudentDetailsNotAllowed
		}

		studentID, err := ParseStudentID(strings.TrimSpace(req.Student.StudentID))
		if err != nil {
			return models.User{}, nil, err
		}

		student = &models.StudentIdentity{
			StudentID:    studentID.Normalized,
			GradeOrForm:  strings.TrimSpace(req.Student.GradeOrForm),
			Class:        strings.TrimSpace(req.Student.Class),
			EnrolledYear: req.Student.EnrolledYear,
		}
		if student.GradeOrForm == "" {
			student.GradeOrForm = studentID.GradeOrForm
		}
		if student.EnrolledYear == 0 {
			student.EnrolledYear = studentID.Year
		}
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    a.now().UTC(),
	}
	if username := strings.TrimSpace(req.Username); username != "" {
		user.Username = &username
	}

	created, err := a.users.CreateUser(ctx, user, student)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", email).Msg("user creation ended with error")
		return models.User{}, nil, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Str("role", role.String()).Msg("user registered")

	return created, student, nil
}

// Authenticate resolves a bearer token to its current user.
//
// Returns:
//   - ErrTokenIsExpired / ErrTokenIsInvalid from the token service.
//   - ErrTokenIsInvalid if the token's user no longer exists.
//   - ErrForbiddenRole if roles is non-empty and does not contain the
//     user's current role.
func (a *authService) Authenticate(ctx context.Context, tokenString string, roles ...models.Role) (models.User, *models.StudentIdentity, error) {
	claims, err := a.tokens.Validate(ctx, tokenString)
	if err != nil {
		return models.User{}, nil, err
	}

	user, err := a.users.FindUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, nil, ErrTokenIsInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Authenticate").Int64("user_id", claims.UserID).Msg("user lookup failed")
		return models.User{}, nil, fmt.Errorf("user lookup failed: %w", err)
	}

	if len(roles) > 0 && !slices.Contains(roles, user.Role) {
		return models.User{}, nil, ErrForbiddenRole
	}

	return user, a.studentProfile(ctx, user), nil
}

// studentProfile loads the student identity of a student account. Missing
// rows and store failures yield nil.
func (a *authService) studentProfile(ctx context.Context, user models.User) *models.StudentIdentity {
	if user.Role != models.RoleStudent {
		return nil
	}

	student, err := a.students.FindStudentByUserID(ctx, user.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrStudentNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*authService.studentProfile").Int64("user_id", user.UserID).Msg("student profile lookup failed")
		}
		return nil
	}

	return &student
}
