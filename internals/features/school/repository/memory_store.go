package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/school/model"
)

type memRecord[T any] struct {
	seq int64
	rec T
}

// MemoryStore keeps every record in process memory. Each call holds the
// lock for its whole read-modify-write, which gives per-record atomicity and
// nothing more. Callers always receive copies.
type MemoryStore struct {
	mu       sync.RWMutex
	seq      int64
	teachers map[uuid.UUID]memRecord[model.TeacherModel]
	emails   map[string]uuid.UUID
	classes  map[uuid.UUID]memRecord[model.ClassModel]
	students map[uuid.UUID]memRecord[model.StudentModel]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teachers: map[uuid.UUID]memRecord[model.TeacherModel]{},
		emails:   map[string]uuid.UUID{},
		classes:  map[uuid.UUID]memRecord[model.ClassModel]{},
		students: map[uuid.UUID]memRecord[model.StudentModel]{},
	}
}

func (s *MemoryStore) next() int64 {
	s.seq++
	return s.seq
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sortedRecords[T any](m map[uuid.UUID]memRecord[T]) []T {
	recs := make([]memRecord[T], 0, len(m))
	for _, r := range m {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.rec)
	}
	return out
}

func copyRef(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

/* ====================== TEACHER ====================== */

func (s *MemoryStore) CreateTeacher(ctx context.Context, t *model.TeacherModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(t.TeacherEmail)
	if _, taken := s.emails[key]; taken {
		return ErrDuplicate
	}
	s.emails[key] = t.TeacherID
	s.teachers[t.TeacherID] = memRecord[model.TeacherModel]{seq: s.next(), rec: *t}
	return nil
}

func (s *MemoryStore) GetTeacher(ctx context.Context, id uuid.UUID) (*model.TeacherModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.teachers[id]
	if !ok {
		return nil, ErrNotFound
	}
	t := r.rec
	return &t, nil
}

func (s *MemoryStore) FindTeacherByEmail(ctx context.Context, email string) (*model.TeacherModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[emailKey(email)]
	if !ok {
		return nil, ErrNotFound
	}
	t := s.teachers[id].rec
	return &t, nil
}

func (s *MemoryStore) ListTeachers(ctx context.Context) ([]model.TeacherModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedRecords(s.teachers), nil
}

/* ====================== CLASS ====================== */

func (s *MemoryStore) CreateClass(ctx context.Context, c *model.ClassModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := *c
	rec.ClassTeacherID = copyRef(c.ClassTeacherID)
	s.classes[c.ClassID] = memRecord[model.ClassModel]{seq: s.next(), rec: rec}
	return nil
}

func (s *MemoryStore) GetClass(ctx context.Context, id uuid.UUID) (*model.ClassModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.classes[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := r.rec
	c.ClassTeacherID = copyRef(r.rec.ClassTeacherID)
	return &c, nil
}

func (s *MemoryStore) UpdateClass(ctx context.Context, id uuid.UUID, patch model.ClassPatch) (*model.ClassModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.classes[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&r.rec, time.Now().UTC())
	r.rec.ClassTeacherID = copyRef(r.rec.ClassTeacherID)
	s.classes[id] = r

	c := r.rec
	c.ClassTeacherID = copyRef(r.rec.ClassTeacherID)
	return &c, nil
}

func (s *MemoryStore) DeleteClass(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.classes, id)
	return nil
}

func (s *MemoryStore) ListClasses(ctx context.Context) ([]model.ClassModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := sortedRecords(s.classes)
	for i := range out {
		out[i].ClassTeacherID = copyRef(out[i].ClassTeacherID)
	}
	return out, nil
}

/* ====================== STUDENT ====================== */

func (s *MemoryStore) CreateStudent(ctx context.Context, st *model.StudentModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := *st
	rec.StudentClassID = copyRef(st.StudentClassID)
	s.students[st.StudentID] = memRecord[model.StudentModel]{seq: s.next(), rec: rec}
	return nil
}

func (s *MemoryStore) GetStudent(ctx context.Context, id uuid.UUID) (*model.StudentModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	st := r.rec
	st.StudentClassID = copyRef(r.rec.StudentClassID)
	return &st, nil
}

func (s *MemoryStore) UpdateStudent(ctx context.Context, id uuid.UUID, patch model.StudentPatch) (*model.StudentModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&r.rec, time.Now().UTC())
	r.rec.StudentClassID = copyRef(r.rec.StudentClassID)
	s.students[id] = r

	st := r.rec
	st.StudentClassID = copyRef(r.rec.StudentClassID)
	return &st, nil
}

func (s *MemoryStore) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.students, id)
	return nil
}

func (s *MemoryStore) ListStudents(ctx context.Context) ([]model.StudentModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := sortedRecords(s.students)
	for i := range out {
		out[i].StudentClassID = copyRef(out[i].StudentClassID)
	}
	return out, nil
}
