package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/kerem/campushub/internal/app/models"
	"github.com/kerem/campushub/internal/app/models/dto"
	"github.com/kerem/campushub/internal/app/repositories"
	"github.com/kerem/campushub/internal/pkg/apperrors"
	"github.com/kerem/campushub/internal/pkg/auth"
)

// AuthService handles authentication for both principal kinds
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.TokenResponse, error)
	LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (*dto.TokenResponse, error)
	LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error)
	ChangeStudentPassword(ctx context.Context, studentID int64, req *dto.ChangePasswordRequest) error
	GetStudentProfile(ctx context.Context, studentID int64) (*dto.StudentProfile, error)
}

type authService struct {
	studentRepo repositories.IStudentRepository
	adminRepo   repositories.IAdminRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	adminRepo repositories.IAdminRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	rollNumberRegex = regexp.MustCompile(`^[A-Za-z0-9\-/]{1,50}$`)
)

// validateEmail validates an email address
func (s *authService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email cannot be empty")
	}

	if !emailRegex.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if password meets requirements
func (s *authService) validatePassword(password string) error {
	if password == "" {
		return apperrors.NewValidationError("password cannot be empty")
	}

	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// validateRollNumber validates a roll number
func (s *authService) validateRollNumber(rollNumber string) error {
	if rollNumber == "" {
		return apperrors.NewValidationError("roll number cannot be empty")
	}

	if !rollNumberRegex.MatchString(rollNumber) {
		return apperrors.NewValidationError("roll number format is invalid")
	}

	return nil
}

// RegisterStudent creates a new student account
func (s *authService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.TokenResponse, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if strings.TrimSpace(req.Department) == "" {
		return nil, apperrors.NewValidationError("department cannot be empty")
	}
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validateRollNumber(req.RollNumber); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	// Pre-checks give clean errors; the unique constraints remain the
	// authoritative guard so a race falls through to the same sentinel.
	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	exists, err = s.studentRepo.RollNumberExists(ctx, req.RollNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking if roll number exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRollNumberExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		FullName:   req.FullName,
		Email:      req.Email,
		RollNumber: req.RollNumber,
		Department: req.Department,
		Password:   hashedPassword,
	}

	studentID, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Str("email", req.Email).Msg("Student registered")

	return s.generateTokenResponse(studentID, models.RoleStudent)
}

// LoginStudent authenticates a student by email and password
func (s *authService) LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (*dto.TokenResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password cannot be empty")
	}

	// Unknown email and wrong password fail identically
	student, err := s.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(student.ID, models.RoleStudent)
}

// LoginAdmin authenticates an admin by username and password
func (s *authService) LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	// Unknown username and wrong password fail identically
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(admin.ID, models.RoleAdmin)
}

// ChangeStudentPassword replaces the student's password after verifying the
// current one
func (s *authService) ChangeStudentPassword(ctx context.Context, studentID int64, req *dto.ChangePasswordRequest) error {
	if err := s.validatePassword(req.NewPassword); err != nil {
		return err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(student.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.studentRepo.UpdatePassword(ctx, studentID, hashedPassword); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", studentID).Msg("Student password changed")
	return nil
}

// GetStudentProfile retrieves a student's own account view
func (s *authService) GetStudentProfile(ctx context.Context, studentID int64) (*dto.StudentProfile, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student information: %w", err)
	}

	return &dto.StudentProfile{
		ID:         student.ID,
		FullName:   student.FullName,
		Email:      student.Email,
		RollNumber: student.RollNumber,
		Department: student.Department,
	}, nil
}

// generateTokenResponse creates the session token response for a principal
func (s *authService) generateTokenResponse(principalID int64, role models.Role) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(principalID, string(role))
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
		Role:        string(role),
	}, nil
}
