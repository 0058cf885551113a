package seeds

import (
	"context"
	"log"

	"schooladmin_backend/internals/features/school/repository"
	"schooladmin_backend/internals/seeds/school"
)

const DefaultSchoolSeedFile = "internals/seeds/school/data_school.json"

func RunAllSeeds(ctx context.Context, repo *repository.EntityRepository, schoolFile string) error {
	//* School (teachers → classes → students)
	sum, err := school.SeedSchoolFromJSON(ctx, repo, schoolFile)
	if err != nil {
		return err
	}
	log.Printf("✅ Seed selesai: teachers=%d (skipped %d) classes=%d students=%d",
		sum.Teachers, sum.TeachersSkipped, sum.Classes, sum.Students)
	return nil
}
