package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/firehall/personnel-agent/internal/config"
	"github.com/firehall/personnel-agent/internal/handlers"
	"github.com/firehall/personnel-agent/internal/server"
	"github.com/firehall/personnel-agent/internal/services"
	"github.com/firehall/personnel-agent/internal/store"
	"github.com/firehall/personnel-agent/internal/store/migrations"
	"github.com/firehall/personnel-agent/pkg/jobs"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "personnel-agent",
		Short:        "Fire protection bureau personnel dashboard agent",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			return run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Configuration) error {
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	if err := migrations.Run(ctx, db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	st := store.NewStore(db)
	defer st.Close()

	personnelSrv := services.NewPersonnelService(st)
	authSrv := services.NewAuthService(st, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	leaveSrv := services.NewLeaveService(st)
	clearanceSrv := services.NewClearanceService(st)
	inventorySrv := services.NewInventoryService(st)
	trainingSrv := services.NewTrainingService(st)
	inspectionSrv := services.NewInspectionService(st)
	medicalSrv := services.NewMedicalRecordService(st)
	recruitmentSrv := services.NewRecruitmentService(st, personnelSrv)
	reportSrv := services.NewReportService(st, inventorySrv)
	reconciler := services.NewReconciler(st)

	runner := jobs.NewRunner(cfg.Jobs.NumWorkers)
	defer runner.Close()

	if cfg.Jobs.SyncInterval > 0 {
		runner.Every("medical-sync", cfg.Jobs.SyncInterval, func(ctx context.Context) error {
			_, err := reconciler.Sync(ctx)
			return err
		})
	}
	if cfg.Jobs.AccrualInterval > 0 {
		runner.Every("leave-accrual", cfg.Jobs.AccrualInterval, func(ctx context.Context) error {
			_, err := personnelSrv.AccrueLeave(ctx, time.Now())
			return err
		})
	}

	handler := handlers.New(
		authSrv, personnelSrv, leaveSrv, clearanceSrv, inventorySrv,
		trainingSrv, inspectionSrv, medicalSrv, recruitmentSrv, reportSrv,
		reconciler,
	)

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		handler.RegisterRoutes(router, authSrv)
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func newLogger(cfg *config.Configuration) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
