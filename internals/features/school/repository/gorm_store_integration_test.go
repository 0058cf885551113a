//go:build integration

package repository

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "schooladmin_backend/internals/databases"
	"schooladmin_backend/internals/features/school/model"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("schooladmin_test"),
		postgres.WithUsername("schooladmin"),
		postgres.WithPassword("schooladmin"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("start postgres: %v", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("connection string: %v", err)
	}

	migrator, err := database.NewMigrator(connStr)
	if err != nil {
		log.Fatalf("migrator: %v", err)
	}
	if err := migrator.Up(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	_ = migrator.Close()

	testDB, err = gorm.Open(gormPostgres.Open(connStr), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	if err != nil {
		log.Fatalf("gorm open: %v", err)
	}

	code := m.Run()

	database.Close(testDB)
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.Exec(`TRUNCATE teachers, classes, students`).Error)
}

func TestGormStore_TeacherUniqueEmail(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	store := NewGormStore(testDB)
	now := time.Now().UTC().Truncate(time.Microsecond)

	first := &model.TeacherModel{
		TeacherID: uuid.New(), TeacherName: "A", TeacherEmail: "a@x.com",
		TeacherPassword: "hash", TeacherStatus: model.StatusActive,
		TeacherCreatedAt: now, TeacherUpdatedAt: now,
	}
	require.NoError(t, store.CreateTeacher(ctx, first))

	second := *first
	second.TeacherID = uuid.New()
	assert.ErrorIs(t, store.CreateTeacher(ctx, &second), ErrDuplicate)

	got, err := store.FindTeacherByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.TeacherID, got.TeacherID)

	_, err = store.GetTeacher(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_ClassUpdateReturning(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	store := NewGormStore(testDB)
	repo := NewEntityRepository(store, plainHasher{})

	ghost := uuid.New()
	c, err := repo.CreateClass(ctx, NewClass{Standard: "5", Section: "A", TeacherID: &ghost})
	require.NoError(t, err)

	section := "B"
	updated, err := repo.UpdateClass(ctx, c.ClassID.String(), model.ClassPatch{
		Section:   &section,
		TeacherID: model.OptionalRef{Set: true},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "5", updated.ClassStandard)
	assert.Equal(t, "B", updated.ClassSection)
	assert.Nil(t, updated.ClassTeacherID)

	missing, err := repo.UpdateClass(ctx, uuid.NewString(), model.ClassPatch{Section: &section})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGormStore_StudentJoinAfterClassDelete(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewEntityRepository(NewGormStore(testDB), plainHasher{})

	teacher, err := repo.RegisterTeacher(ctx, NewTeacher{Name: "A", Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	c, err := repo.CreateClass(ctx, NewClass{Standard: "5", Section: "A", TeacherID: &teacher.TeacherID})
	require.NoError(t, err)
	_, err = repo.CreateStudent(ctx, NewStudent{FirstName: "Budi", ClassID: &c.ClassID})
	require.NoError(t, err)

	list, err := repo.ListStudents(ctx, DepthTwo)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Class)
	require.NotNil(t, list[0].Class.Teacher)
	assert.Equal(t, "a@x.com", list[0].Class.Teacher.TeacherEmail)

	require.NoError(t, repo.DeleteClass(ctx, c.ClassID.String()))

	list, err = repo.ListStudents(ctx, DepthTwo)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Class)
	assert.Equal(t, c.ClassID, *list[0].StudentClassID)
}

func TestGormStore_LongFreeTextAndStatusCheck(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	store := NewGormStore(testDB)
	repo := NewEntityRepository(store, plainHasher{})
	long := strings.Repeat("x", 500)

	_, err := repo.RegisterTeacher(ctx, NewTeacher{Name: long, Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	c, err := repo.CreateClass(ctx, NewClass{Standard: long, Section: long})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, c.ClassStatus)

	_, err = repo.CreateStudent(ctx, NewStudent{FirstName: long, LastName: long, ParentName: long, City: long})
	require.NoError(t, err)

	list, err := repo.ListClasses(ctx, DepthRaw)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, long, list[0].ClassStandard)

	now := time.Now().UTC()
	raw := &model.ClassModel{ClassID: uuid.New(), ClassStatus: model.Status("BANANA"), ClassCreatedAt: now, ClassUpdatedAt: now}
	assert.Error(t, store.CreateClass(ctx, raw), "check constraint keeps class_status in the enum")
}
