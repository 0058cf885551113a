package main

import (
	"github.com/spf13/cobra"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/features/school/repository"
	authHelper "schooladmin_backend/internals/features/teachers/auth/helper"
	"schooladmin_backend/internals/seeds"
)

// NewSeedCmd loads demo teachers, classes and students.
func NewSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo teachers, classes and students",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configs.Load()
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			defer closeStore()

			repo := repository.NewEntityRepository(store, authHelper.NewCredentialStore())
			return seeds.RunAllSeeds(cmd.Context(), repo, file)
		},
	}
	cmd.Flags().StringVar(&file, "file", seeds.DefaultSchoolSeedFile, "seed JSON file")
	return cmd
}
