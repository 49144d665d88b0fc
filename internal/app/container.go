package app

import (
	"context"

	"github.com/doeshing/promptline/internal/application/doctor"
	"github.com/doeshing/promptline/internal/domain"
	"github.com/doeshing/promptline/internal/infrastructure"
	"github.com/doeshing/promptline/internal/infrastructure/cloud"
	"github.com/doeshing/promptline/internal/infrastructure/config"
	"github.com/doeshing/promptline/internal/infrastructure/git"
	"github.com/doeshing/promptline/internal/infrastructure/kube"
	"github.com/doeshing/promptline/internal/infrastructure/shell"
	"github.com/doeshing/promptline/internal/pkg/logger"
	"github.com/doeshing/promptline/internal/ports"
	"github.com/doeshing/promptline/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	PromptService   *services.PromptService
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	ShellIntegrator ports.ShellIntegrator
	DoctorService   *doctor.Service
	Logger          ports.Logger
	Config          domain.Config
}

// BuildContainer constructs the dependency graph. A broken config file does
// not abort construction: the prompt must still render, so the zero Config
// (all collectors enabled, default timeout) is used instead.
func BuildContainer(ctx context.Context, verbose bool) *Container {
	log := logger.NewStd(verbose)

	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		log.Warn("config load failed, using defaults", map[string]interface{}{"error": err.Error()})
		cfg = domain.Config{}
	}

	runner := infrastructure.NewExecRunner(log)
	inspector := git.NewInspector(runner, cfg.Collectors.DiffTimeout(), log)
	cluster := kube.NewCollector(runner)
	cloudCollector := cloud.NewCollector()
	shellInstaller := shell.NewInstaller(log)

	promptService := &services.PromptService{
		ConfigProvider: cfgLoader,
		Repository:     inspector,
		Cluster:        cluster,
		Cloud:          cloudCollector,
		Logger:         log,
	}

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		Repository:      inspector,
		ShellIntegrator: shellInstaller,
	}

	return &Container{
		PromptService:   promptService,
		ConfigProvider:  cfgLoader,
		ConfigLoader:    cfgLoader,
		ShellIntegrator: shellInstaller,
		DoctorService:   doctorService,
		Logger:          log,
		Config:          cfg,
	}
}
