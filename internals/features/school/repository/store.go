package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/school/model"
)

var (
	// ErrNotFound is returned by Store lookups for a missing id. The
	// repository turns it into an empty result; it never reaches a client.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned by Store.CreateTeacher when the email unique
	// index rejects the row.
	ErrDuplicate = errors.New("duplicate key")

	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTeacherInactive    = errors.New("teacher account is inactive")
)

// Store is the document store: per-record atomic reads and writes plus
// identity lookups. It knows nothing about references between records.
type Store interface {
	CreateTeacher(ctx context.Context, t *model.TeacherModel) error
	GetTeacher(ctx context.Context, id uuid.UUID) (*model.TeacherModel, error)
	FindTeacherByEmail(ctx context.Context, email string) (*model.TeacherModel, error)
	ListTeachers(ctx context.Context) ([]model.TeacherModel, error)

	CreateClass(ctx context.Context, c *model.ClassModel) error
	GetClass(ctx context.Context, id uuid.UUID) (*model.ClassModel, error)
	UpdateClass(ctx context.Context, id uuid.UUID, patch model.ClassPatch) (*model.ClassModel, error)
	DeleteClass(ctx context.Context, id uuid.UUID) error
	ListClasses(ctx context.Context) ([]model.ClassModel, error)

	CreateStudent(ctx context.Context, s *model.StudentModel) error
	GetStudent(ctx context.Context, id uuid.UUID) (*model.StudentModel, error)
	UpdateStudent(ctx context.Context, id uuid.UUID, patch model.StudentPatch) (*model.StudentModel, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error
	ListStudents(ctx context.Context) ([]model.StudentModel, error)
}
