package school

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin_backend/internals/features/school/repository"
	authHelper "schooladmin_backend/internals/features/teachers/auth/helper"
)

func newRepo() *repository.EntityRepository {
	return repository.NewEntityRepository(repository.NewMemoryStore(), authHelper.NewCredentialStore())
}

func TestSeedSchoolFromJSON_BundledFile(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	sum, err := SeedSchoolFromJSON(ctx, repo, "data_school.json")
	require.NoError(t, err)
	assert.Equal(t, Summary{Teachers: 2, Classes: 3, Students: 3}, sum)

	students, err := repo.ListStudents(ctx, repository.DepthTwo)
	require.NoError(t, err)
	require.Len(t, students, 3)
	require.NotNil(t, students[0].Class)
	require.NotNil(t, students[0].Class.Teacher)
	assert.Equal(t, "siti@school.test", students[0].Class.Teacher.TeacherEmail)
	require.NotNil(t, students[2].Class)
	assert.Nil(t, students[2].Class.Teacher, "class 6a has no teacher")

	_, err = repo.AuthenticateTeacher(ctx, "siti@school.test", "password1")
	assert.NoError(t, err, "seeded passwords are hashed like registration")
}

func TestSeedSchool_ReusesExistingTeachers(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	seed := SchoolSeed{
		Teachers: []TeacherSeed{{Key: "t1", Name: "A", Email: "a@x.com", Password: "password1"}},
		Classes:  []ClassSeed{{Key: "c1", Standard: "1", Section: "A", TeacherKey: "t1"}},
	}

	_, err := SeedSchool(ctx, repo, seed)
	require.NoError(t, err)
	sum, err := SeedSchool(ctx, repo, seed)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TeachersSkipped)
	assert.Equal(t, 0, sum.Teachers)

	classes, err := repo.ListClasses(ctx, repository.DepthOne)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	for _, c := range classes {
		require.NotNil(t, c.Teacher)
		assert.Equal(t, "a@x.com", c.Teacher.TeacherEmail)
	}
}

func TestSeedSchoolFromJSON_BadFile(t *testing.T) {
	_, err := SeedSchoolFromJSON(context.Background(), newRepo(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = SeedSchoolFromJSON(context.Background(), newRepo(), bad)
	assert.Error(t, err)
}
