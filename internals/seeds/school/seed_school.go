package school

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/samber/oops"

	"schooladmin_backend/internals/features/school/model"
	"schooladmin_backend/internals/features/school/repository"
)

// SchoolSeed links records by seed-local keys, since ids are generated on insert.
type SchoolSeed struct {
	Teachers []TeacherSeed `json:"teachers"`
	Classes  []ClassSeed   `json:"classes"`
	Students []StudentSeed `json:"students"`
}

type TeacherSeed struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type ClassSeed struct {
	Key        string `json:"key"`
	Standard   string `json:"standard"`
	Section    string `json:"section"`
	TeacherKey string `json:"teacher"`
}

type StudentSeed struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	ClassKey   string `json:"class"`
	ParentName string `json:"parentName"`
	Address    string `json:"address"`
	City       string `json:"city"`
}

type Summary struct {
	Teachers        int
	TeachersSkipped int
	Classes         int
	Students        int
}

func SeedSchoolFromJSON(ctx context.Context, repo *repository.EntityRepository, filePath string) (Summary, error) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return Summary{}, oops.Code("SEED_READ_FAILED").With("file", filePath).Wrap(err)
	}

	var seed SchoolSeed
	if err := json.Unmarshal(file, &seed); err != nil {
		return Summary{}, oops.Code("SEED_DECODE_FAILED").With("file", filePath).Wrap(err)
	}
	return SeedSchool(ctx, repo, seed)
}

// SeedSchool inserts through the repository, so passwords are hashed the same
// way registration does it. Teachers whose email already exists are reused.
func SeedSchool(ctx context.Context, repo *repository.EntityRepository, seed SchoolSeed) (Summary, error) {
	var sum Summary
	teacherIDs := map[string]uuid.UUID{}
	classIDs := map[string]uuid.UUID{}

	for _, ts := range seed.Teachers {
		existing, err := repo.TeacherByEmail(ctx, ts.Email)
		if err != nil {
			return sum, err
		}
		if existing != nil {
			log.Printf("ℹ️ Teacher '%s' sudah ada, dilewati.", ts.Email)
			teacherIDs[ts.Key] = existing.TeacherID
			sum.TeachersSkipped++
			continue
		}
		t, err := repo.RegisterTeacher(ctx, repository.NewTeacher{
			Name: ts.Name, Email: ts.Email, Password: ts.Password, Address: ts.Address,
		})
		if err != nil {
			return sum, err
		}
		teacherIDs[ts.Key] = t.TeacherID
		sum.Teachers++
	}

	for _, cs := range seed.Classes {
		c, err := repo.CreateClass(ctx, repository.NewClass{
			Standard:  cs.Standard,
			Section:   cs.Section,
			Status:    model.StatusActive,
			TeacherID: lookup(teacherIDs, cs.TeacherKey),
		})
		if err != nil {
			return sum, err
		}
		classIDs[cs.Key] = c.ClassID
		sum.Classes++
	}

	for _, ss := range seed.Students {
		if _, err := repo.CreateStudent(ctx, repository.NewStudent{
			FirstName:  ss.FirstName,
			LastName:   ss.LastName,
			ClassID:    lookup(classIDs, ss.ClassKey),
			ParentName: ss.ParentName,
			Address:    ss.Address,
			City:       ss.City,
		}); err != nil {
			return sum, err
		}
		sum.Students++
	}
	return sum, nil
}

// lookup: key kosong atau tidak dikenal → tanpa referensi
func lookup(ids map[string]uuid.UUID, key string) *uuid.UUID {
	id, ok := ids[key]
	if !ok || key == "" {
		return nil
	}
	return &id
}
