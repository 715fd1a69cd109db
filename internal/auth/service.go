package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentChecker reports whether a department name exists. Implemented by
// the department repository; an interface here keeps the packages decoupled.
type DepartmentChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Department string
	Role       Role
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (Users, Claims, error)
	Login(ctx context.Context, email string, password string) (Users, Claims, error)
	Profile(ctx context.Context, userID uuid.UUID) (Users, error)
}

var errInvalidCredentials = apperr.Unauthorized("invalid email or password")

type userService struct {
	repo          UserRepository
	departments   DepartmentChecker
	jwtTTLSeconds int64
}

func NewUserService(repo UserRepository, departments DepartmentChecker, jwtTTLSeconds int64) UserService {
	return &userService{
		repo:          repo,
		departments:   departments,
		jwtTTLSeconds: jwtTTLSeconds,
	}
}

func (r *userService) Register(ctx context.Context, in RegisterInput) (Users, Claims, error) {
	if err := ValidateName(in.Name); err != nil {
		return Users{}, Claims{}, err
	}
	if err := ValidateEmail(in.Email); err != nil {
		return Users{}, Claims{}, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return Users{}, Claims{}, err
	}

	role := in.Role
	if role == "" {
		role = RoleEmployee
	}
	if !ValidRole(role) {
		return Users{}, Claims{}, apperr.Validation("invalid role")
	}

	department := SanitizeString(in.Department)
	if department == "" {
		return Users{}, Claims{}, apperr.Validation("department is required")
	}
	ok, err := r.departments.Exists(ctx, department)
	if err != nil {
		return Users{}, Claims{}, apperr.Internal(err)
	}
	if !ok {
		return Users{}, Claims{}, apperr.Validation("unknown department")
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return Users{}, Claims{}, apperr.Internal(err)
	}

	u := Users{
		ID:            uuid.New(),
		Name:          SanitizeString(in.Name),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Password_hash: hashed,
		Role:          role,
		Department:    department,
		Created_at:    time.Now(),
	}
	if err := r.repo.CreateUser(ctx, u); err != nil {
		if apperr.KindOf(err) == apperr.KindDuplicate {
			return Users{}, Claims{}, err
		}
		return Users{}, Claims{}, apperr.Internal(err)
	}

	u.Password_hash = ""
	return u, BuildJWTClaims(u, r.jwtTTLSeconds), nil
}

func (r *userService) Login(ctx context.Context, email string, password string) (Users, Claims, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := r.repo.GetUserByEmail(ctx, email)
	if err != nil {
		// Same response whether the account is missing or the password is
		// wrong, to avoid user enumeration.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Users{}, Claims{}, errInvalidCredentials
		}
		return Users{}, Claims{}, apperr.Internal(err)
	}
	if err := CheckPassword(user.Password_hash, password); err != nil {
		return Users{}, Claims{}, errInvalidCredentials
	}

	user.Password_hash = ""
	return user, BuildJWTClaims(user, r.jwtTTLSeconds), nil
}

func (r *userService) Profile(ctx context.Context, userID uuid.UUID) (Users, error) {
	user, err := r.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Users{}, apperr.NotFound("user not found")
		}
		return Users{}, apperr.Internal(err)
	}
	user.Password_hash = ""
	return user, nil
}
