package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooladmin_backend/internals/features/school/model"
)

// GormStore is the PostgreSQL Store. Every method is a single statement, so
// per-row atomicity comes from the database.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func queryErr(err error, table string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return oops.Code("STORE_QUERY_FAILED").With("table", table).Wrap(err)
}

/* ====================== TEACHER ====================== */

func (s *GormStore) CreateTeacher(ctx context.Context, t *model.TeacherModel) error {
	if err := s.DB.WithContext(ctx).Create(t).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return queryErr(err, "teachers")
	}
	return nil
}

func (s *GormStore) GetTeacher(ctx context.Context, id uuid.UUID) (*model.TeacherModel, error) {
	var t model.TeacherModel
	if err := s.DB.WithContext(ctx).Where("teacher_id = ?", id).First(&t).Error; err != nil {
		return nil, queryErr(err, "teachers")
	}
	return &t, nil
}

func (s *GormStore) FindTeacherByEmail(ctx context.Context, email string) (*model.TeacherModel, error) {
	var t model.TeacherModel
	if err := s.DB.WithContext(ctx).Where("teacher_email = ?", email).First(&t).Error; err != nil {
		return nil, queryErr(err, "teachers")
	}
	return &t, nil
}

func (s *GormStore) ListTeachers(ctx context.Context) ([]model.TeacherModel, error) {
	var rows []model.TeacherModel
	if err := s.DB.WithContext(ctx).Order("teacher_created_at ASC").Find(&rows).Error; err != nil {
		return nil, queryErr(err, "teachers")
	}
	return rows, nil
}

/* ====================== CLASS ====================== */

func (s *GormStore) CreateClass(ctx context.Context, c *model.ClassModel) error {
	if err := s.DB.WithContext(ctx).Create(c).Error; err != nil {
		return queryErr(err, "classes")
	}
	return nil
}

func (s *GormStore) GetClass(ctx context.Context, id uuid.UUID) (*model.ClassModel, error) {
	var c model.ClassModel
	if err := s.DB.WithContext(ctx).Where("class_id = ?", id).First(&c).Error; err != nil {
		return nil, queryErr(err, "classes")
	}
	return &c, nil
}

// UpdateClass merges the patch with one UPDATE ... RETURNING.
func (s *GormStore) UpdateClass(ctx context.Context, id uuid.UUID, patch model.ClassPatch) (*model.ClassModel, error) {
	var rows []model.ClassModel
	res := s.DB.WithContext(ctx).
		Model(&rows).
		Clauses(clause.Returning{}).
		Where("class_id = ?", id).
		Updates(patch.Columns(time.Now().UTC()))
	if res.Error != nil {
		return nil, queryErr(res.Error, "classes")
	}
	if res.RowsAffected == 0 || len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (s *GormStore) DeleteClass(ctx context.Context, id uuid.UUID) error {
	if err := s.DB.WithContext(ctx).Where("class_id = ?", id).Delete(&model.ClassModel{}).Error; err != nil {
		return queryErr(err, "classes")
	}
	return nil
}

func (s *GormStore) ListClasses(ctx context.Context) ([]model.ClassModel, error) {
	var rows []model.ClassModel
	if err := s.DB.WithContext(ctx).Order("class_created_at ASC").Find(&rows).Error; err != nil {
		return nil, queryErr(err, "classes")
	}
	return rows, nil
}

/* ====================== STUDENT ====================== */

func (s *GormStore) CreateStudent(ctx context.Context, st *model.StudentModel) error {
	if err := s.DB.WithContext(ctx).Create(st).Error; err != nil {
		return queryErr(err, "students")
	}
	return nil
}

func (s *GormStore) GetStudent(ctx context.Context, id uuid.UUID) (*model.StudentModel, error) {
	var st model.StudentModel
	if err := s.DB.WithContext(ctx).Where("student_id = ?", id).First(&st).Error; err != nil {
		return nil, queryErr(err, "students")
	}
	return &st, nil
}

func (s *GormStore) UpdateStudent(ctx context.Context, id uuid.UUID, patch model.StudentPatch) (*model.StudentModel, error) {
	var rows []model.StudentModel
	res := s.DB.WithContext(ctx).
		Model(&rows).
		Clauses(clause.Returning{}).
		Where("student_id = ?", id).
		Updates(patch.Columns(time.Now().UTC()))
	if res.Error != nil {
		return nil, queryErr(res.Error, "students")
	}
	if res.RowsAffected == 0 || len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (s *GormStore) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	if err := s.DB.WithContext(ctx).Where("student_id = ?", id).Delete(&model.StudentModel{}).Error; err != nil {
		return queryErr(err, "students")
	}
	return nil
}

func (s *GormStore) ListStudents(ctx context.Context) ([]model.StudentModel, error) {
	var rows []model.StudentModel
	if err := s.DB.WithContext(ctx).Order("student_created_at ASC").Find(&rows).Error; err != nil {
		return nil, queryErr(err, "students")
	}
	return rows, nil
}
