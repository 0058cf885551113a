package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin_backend/internals/features/school/repository"
)

type stubAuditor struct {
	rep   repository.DanglingReport
	err   error
	calls int
}

func (s *stubAuditor) DanglingReferences(context.Context) (repository.DanglingReport, error) {
	s.calls++
	return s.rep, s.err
}

func TestRunOnce_ExportsCounts(t *testing.T) {
	a := &stubAuditor{rep: repository.DanglingReport{
		Classes: 3, ClassesNoTeacher: 1, DanglingClassIDs: []uuid.UUID{uuid.New()},
		Students: 5, StudentsNoClass: 2, DanglingStudentIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}}

	rep, err := RunOnce(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.StudentsNoClass)
	assert.Equal(t, 1.0, testutil.ToFloat64(danglingGauge.WithLabelValues("class_teacher")))
	assert.Equal(t, 2.0, testutil.ToFloat64(danglingGauge.WithLabelValues("student_class")))
}

func TestRunOnce_Error(t *testing.T) {
	a := &stubAuditor{err: errors.New("store down")}
	_, err := RunOnce(context.Background(), a)
	assert.Error(t, err)
}

func TestRunOnce_AgainstRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEntityRepository(repository.NewMemoryStore(), nil)
	ghost := uuid.New()
	_, err := repo.CreateClass(ctx, repository.NewClass{Standard: "5", TeacherID: &ghost})
	require.NoError(t, err)
	_, err = repo.CreateStudent(ctx, repository.NewStudent{FirstName: "Budi"})
	require.NoError(t, err)

	rep, err := RunOnce(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.ClassesNoTeacher)
	assert.Equal(t, 0, rep.StudentsNoClass, "a student without a class id is not dangling")
}

func TestStartDanglingAuditCron(t *testing.T) {
	a := &stubAuditor{}

	c, err := StartDanglingAuditCron("", a)
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = StartDanglingAuditCron("not a schedule", a)
	assert.Error(t, err)

	c, err = StartDanglingAuditCron("0 3 * * *", a)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
