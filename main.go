package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"schooladmin_backend/internals/configs"
	database "schooladmin_backend/internals/databases"
	"schooladmin_backend/internals/features/school/audit"
	"schooladmin_backend/internals/features/school/repository"
	authHelper "schooladmin_backend/internals/features/teachers/auth/helper"
	helperAuth "schooladmin_backend/internals/helpers/auth"
	routes "schooladmin_backend/internals/route"
)

var version = "dev"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// NewRootCmd: tanpa subcommand, jalankan server.
func NewRootCmd() *cobra.Command {
	serve := NewServeCmd()
	cmd := &cobra.Command{
		Use:           "schooladmin",
		Short:         "School admin backend (teachers, classes, students)",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())
	return cmd
}

func NewServeCmd() *cobra.Command {
	var autoMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configs.Load()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "apply pending migrations before serving (postgres only)")
	return cmd
}

// openStore picks the backing store for cfg.DBDriver. The returned closer is
// never nil.
func openStore(ctx context.Context, cfg configs.Config, autoMigrate bool) (repository.Store, func(), error) {
	if cfg.DBDriver == configs.DriverMemory {
		log.Println("⚠️ DB_DRIVER=memory, data is lost on restart")
		return repository.NewMemoryStore(), func() {}, nil
	}

	if autoMigrate {
		if err := migrateUp(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
	}

	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewGormStore(db), func() { database.Close(db) }, nil
}

func runServe(ctx context.Context, cfg configs.Config, autoMigrate bool) error {
	tokens, err := helperAuth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, cfg, autoMigrate)
	if err != nil {
		return err
	}
	defer closeStore()

	repo := repository.NewEntityRepository(store, authHelper.NewCredentialStore())

	// ⏱ scheduler setelah store siap
	auditCron, err := audit.StartDanglingAuditCron(cfg.AuditCron, repo)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("AUDIT_CRON", cfg.AuditCron).Wrap(err)
	}
	if auditCron != nil {
		defer auditCron.Stop()
	}

	app := routes.NewApp(routes.Deps{Config: cfg, Repo: repo, Tokens: tokens})

	listenErr := make(chan error, 1)
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		listenErr <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		if err != nil {
			return oops.Code("SERVER_FAILED").Wrap(err)
		}
		return nil
	case <-quit:
	}

	log.Println("[INFO] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
