package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/oops"

	"schooladmin_backend/internals/features/school/model"
)

// Depth controls how far list operations follow stored references.
//
//	DepthRaw: references stay raw ids
//	DepthOne: one level resolved (class → teacher, student → class)
//	DepthTwo: two levels resolved (student → class → teacher)
type Depth int

const (
	DepthRaw Depth = iota
	DepthOne
	DepthTwo
)

// ClassView is a class with its teacher reference resolved. Teacher is nil
// when the depth did not ask for it or when the teacher does not exist.
type ClassView struct {
	model.ClassModel
	Teacher *model.TeacherModel
}

// StudentView is a student with its class (and the class's teacher) resolved.
type StudentView struct {
	model.StudentModel
	Class *ClassView
}

type PasswordHasher interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
}

type NewTeacher struct {
	Name     string
	Email    string
	Password string
	Address  string
}

type NewClass struct {
	Standard  string
	Section   string
	Status    model.Status
	TeacherID *uuid.UUID
}

type NewStudent struct {
	FirstName  string
	LastName   string
	ClassID    *uuid.UUID
	ParentName string
	Address    string
	City       string
}

// DanglingReport counts stored references that point at nothing.
type DanglingReport struct {
	Teachers           int
	Classes            int
	ClassesNoTeacher   int
	Students           int
	StudentsNoClass    int
	DanglingClassIDs   []uuid.UUID
	DanglingStudentIDs []uuid.UUID
}

// EntityRepository owns create/read/update/delete for teachers, classes and
// students, and the resolution of references between them on read.
type EntityRepository struct {
	store  Store
	hasher PasswordHasher
	now    func() time.Time
}

func NewEntityRepository(store Store, hasher PasswordHasher) *EntityRepository {
	return &EntityRepository{
		store:  store,
		hasher: hasher,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// parseID treats a malformed id the same as an id that matches nothing.
func parseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// Emails are stored and looked up lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

/* ====================== TEACHER ====================== */

// RegisterTeacher checks the email first and only then hashes and writes.
// The check and the write are separate calls; two racing registrations are
// settled by the store's unique index, which also maps to ErrDuplicateEmail.
func (r *EntityRepository) RegisterTeacher(ctx context.Context, in NewTeacher) (*model.TeacherModel, error) {
	in.Email = normalizeEmail(in.Email)
	_, err := r.store.FindTeacherByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, oops.Code("AUTH_DUPLICATE_EMAIL").With("email", in.Email).Wrap(ErrDuplicateEmail)
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	hash, err := r.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, oops.Code("AUTH_HASH_FAILED").Wrap(err)
	}

	now := r.now()
	t := &model.TeacherModel{
		TeacherID:        uuid.New(),
		TeacherName:      in.Name,
		TeacherEmail:     in.Email,
		TeacherPassword:  hash,
		TeacherAddress:   in.Address,
		TeacherStatus:    model.StatusActive,
		TeacherCreatedAt: now,
		TeacherUpdatedAt: now,
	}
	if err := r.store.CreateTeacher(ctx, t); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, oops.Code("AUTH_DUPLICATE_EMAIL").With("email", in.Email).Wrap(ErrDuplicateEmail)
		}
		return nil, err
	}
	return t, nil
}

// AuthenticateTeacher returns the same error for an unknown email and a
// wrong password.
func (r *EntityRepository) AuthenticateTeacher(ctx context.Context, email, password string) (*model.TeacherModel, error) {
	t, err := r.store.FindTeacherByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrNotFound) {
		return nil, oops.Code("AUTH_INVALID_CREDENTIALS").Wrap(ErrInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	if !r.hasher.VerifyPassword(password, t.TeacherPassword) {
		return nil, oops.Code("AUTH_INVALID_CREDENTIALS").Wrap(ErrInvalidCredentials)
	}
	if t.TeacherStatus == model.StatusInactive {
		return nil, oops.Code("AUTH_INACTIVE").With("teacher_id", t.TeacherID).Wrap(ErrTeacherInactive)
	}
	return t, nil
}

// TeacherByEmail returns (nil, nil) when nobody registered that email.
func (r *EntityRepository) TeacherByEmail(ctx context.Context, email string) (*model.TeacherModel, error) {
	t, err := r.store.FindTeacherByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return t, err
}

/* ====================== CLASS ====================== */

// CreateClass writes the class as given. The teacher reference is not checked.
// A status outside ACTIVE/INACTIVE falls back to ACTIVE.
func (r *EntityRepository) CreateClass(ctx context.Context, in NewClass) (*model.ClassModel, error) {
	status := in.Status
	if !status.Valid() {
		status = model.StatusActive
	}
	now := r.now()
	c := &model.ClassModel{
		ClassID:        uuid.New(),
		ClassStandard:  in.Standard,
		ClassSection:   in.Section,
		ClassStatus:    status,
		ClassTeacherID: in.TeacherID,
		ClassCreatedAt: now,
		ClassUpdatedAt: now,
	}
	if err := r.store.CreateClass(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateClass returns (nil, nil) when no class has that id. An unknown
// status in the patch leaves the stored status as it was.
func (r *EntityRepository) UpdateClass(ctx context.Context, rawID string, patch model.ClassPatch) (*model.ClassModel, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, nil
	}
	if patch.Status != nil && !patch.Status.Valid() {
		patch.Status = nil
	}
	c, err := r.store.UpdateClass(ctx, id, patch)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return c, err
}

// DeleteClass succeeds whether or not the class existed. Students that point
// at it are left untouched.
func (r *EntityRepository) DeleteClass(ctx context.Context, rawID string) error {
	id, ok := parseID(rawID)
	if !ok {
		return nil
	}
	return r.store.DeleteClass(ctx, id)
}

func (r *EntityRepository) ListClasses(ctx context.Context, depth Depth) ([]ClassView, error) {
	classes, err := r.store.ListClasses(ctx)
	if err != nil {
		return nil, err
	}
	res := newResolver(r.store)
	out := make([]ClassView, 0, len(classes))
	for _, c := range classes {
		v, err := res.classView(ctx, c, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

/* ====================== STUDENT ====================== */

// CreateStudent writes the student as given. The class reference is not checked.
func (r *EntityRepository) CreateStudent(ctx context.Context, in NewStudent) (*model.StudentModel, error) {
	now := r.now()
	s := &model.StudentModel{
		StudentID:         uuid.New(),
		StudentFirstName:  in.FirstName,
		StudentLastName:   in.LastName,
		StudentClassID:    in.ClassID,
		StudentParentName: in.ParentName,
		StudentAddress:    in.Address,
		StudentCity:       in.City,
		StudentCreatedAt:  now,
		StudentUpdatedAt:  now,
	}
	if err := r.store.CreateStudent(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateStudent returns (nil, nil) when no student has that id.
func (r *EntityRepository) UpdateStudent(ctx context.Context, rawID string, patch model.StudentPatch) (*model.StudentModel, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, nil
	}
	s, err := r.store.UpdateStudent(ctx, id, patch)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return s, err
}

func (r *EntityRepository) DeleteStudent(ctx context.Context, rawID string) error {
	id, ok := parseID(rawID)
	if !ok {
		return nil
	}
	return r.store.DeleteStudent(ctx, id)
}

func (r *EntityRepository) ListStudents(ctx context.Context, depth Depth) ([]StudentView, error) {
	students, err := r.store.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	res := newResolver(r.store)
	out := make([]StudentView, 0, len(students))
	for _, s := range students {
		v := StudentView{StudentModel: s}
		if depth >= DepthOne {
			c, err := res.class(ctx, s.StudentClassID)
			if err != nil {
				return nil, err
			}
			if c != nil {
				cv, err := res.classView(ctx, *c, depth-1)
				if err != nil {
					return nil, err
				}
				v.Class = &cv
			}
		}
		out = append(out, v)
	}
	return out, nil
}

/* ====================== INTEGRITY ====================== */

// DanglingReferences walks both lists one level deep and reports references
// that resolve to nothing. It never repairs anything.
func (r *EntityRepository) DanglingReferences(ctx context.Context) (DanglingReport, error) {
	var rep DanglingReport

	teachers, err := r.store.ListTeachers(ctx)
	if err != nil {
		return rep, err
	}
	rep.Teachers = len(teachers)

	classes, err := r.ListClasses(ctx, DepthOne)
	if err != nil {
		return rep, err
	}
	rep.Classes = len(classes)
	for _, c := range classes {
		if c.ClassTeacherID != nil && c.Teacher == nil {
			rep.ClassesNoTeacher++
			rep.DanglingClassIDs = append(rep.DanglingClassIDs, c.ClassID)
		}
	}

	students, err := r.ListStudents(ctx, DepthOne)
	if err != nil {
		return rep, err
	}
	rep.Students = len(students)
	for _, s := range students {
		if s.StudentClassID != nil && s.Class == nil {
			rep.StudentsNoClass++
			rep.DanglingStudentIDs = append(rep.DanglingStudentIDs, s.StudentID)
		}
	}
	return rep, nil
}

/* ====================== RESOLVER ====================== */

// resolver follows references with one lookup per distinct id per call.
// Misses are cached too, so a dangling id is looked up only once.
type resolver struct {
	store    Store
	teachers map[uuid.UUID]*model.TeacherModel
	classes  map[uuid.UUID]*model.ClassModel
}

func newResolver(store Store) *resolver {
	return &resolver{
		store:    store,
		teachers: map[uuid.UUID]*model.TeacherModel{},
		classes:  map[uuid.UUID]*model.ClassModel{},
	}
}

func (r *resolver) teacher(ctx context.Context, id *uuid.UUID) (*model.TeacherModel, error) {
	if id == nil {
		return nil, nil
	}
	if t, ok := r.teachers[*id]; ok {
		return t, nil
	}
	t, err := r.store.GetTeacher(ctx, *id)
	if errors.Is(err, ErrNotFound) {
		r.teachers[*id] = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.teachers[*id] = t
	return t, nil
}

func (r *resolver) class(ctx context.Context, id *uuid.UUID) (*model.ClassModel, error) {
	if id == nil {
		return nil, nil
	}
	if c, ok := r.classes[*id]; ok {
		return c, nil
	}
	c, err := r.store.GetClass(ctx, *id)
	if errors.Is(err, ErrNotFound) {
		r.classes[*id] = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.classes[*id] = c
	return c, nil
}

func (r *resolver) classView(ctx context.Context, c model.ClassModel, depth Depth) (ClassView, error) {
	v := ClassView{ClassModel: c}
	if depth < DepthOne {
		return v, nil
	}
	t, err := r.teacher(ctx, c.ClassTeacherID)
	if err != nil {
		return v, err
	}
	v.Teacher = t
	return v, nil
}
