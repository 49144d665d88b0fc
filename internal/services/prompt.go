// Package services orchestrates one prompt render end-to-end.
package services

import (
	"context"
	"errors"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/doeshing/promptline/internal/domain"
	"github.com/doeshing/promptline/internal/pkg/filesystem"
	"github.com/doeshing/promptline/internal/ports"
)

// PromptService aggregates the state collectors into one PromptContext. The
// repository probe gates the version-control wave; the cluster and cloud
// collectors run regardless. Every collector failure degrades to an absent
// field; the only fatal condition is an unknown working directory.
type PromptService struct {
	ConfigProvider ports.ConfigProvider
	Repository     ports.RepositoryInspector
	Cluster        ports.ClusterCollector
	Cloud          ports.CloudCollector
	Logger         ports.Logger
}

// Build assembles the context for a single render.
func (s *PromptService) Build(ctx context.Context, req domain.PromptRequest) (domain.PromptContext, error) {
	if s.ConfigProvider == nil || s.Repository == nil || s.Cluster == nil || s.Cloud == nil || s.Logger == nil {
		return domain.PromptContext{}, errors.New("services.PromptService dependencies not satisfied")
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		// A broken config file degrades to defaults; the prompt still renders.
		s.Logger.Warn("config load failed, using defaults", map[string]interface{}{"error": err.Error()})
		cfg = domain.Config{}
	}

	wd, err := os.Getwd()
	if err != nil {
		return domain.PromptContext{}, err
	}

	pc := domain.PromptContext{
		WorkingDir: filesystem.DisplayPath(wd),
		Message:    req.Message,
		ExitCode:   req.ExitCode,
	}

	if cfg.Collectors.CloudEnabled() {
		pc.CloudProfile, _ = s.Cloud.Profile()
		pc.CloudRegion, _ = s.Cloud.Region()
	}

	pc.InRepository = cfg.Collectors.GitEnabled() && s.Repository.InRepository(ctx)

	g, gctx := errgroup.WithContext(ctx)
	if pc.InRepository {
		g.Go(func() error {
			pc.Identity = s.Repository.Identity(gctx)
			return nil
		})
		g.Go(func() error {
			pc.Unstaged = s.Repository.UnstagedChanges(gctx)
			return nil
		})
		g.Go(func() error {
			pc.Unpushed = s.Repository.UnpushedChanges(gctx)
			return nil
		})
	}
	if cfg.Collectors.KubernetesEnabled() {
		g.Go(func() error {
			pc.KubeContext, _ = s.Cluster.CurrentContext(gctx)
			return nil
		})
		g.Go(func() error {
			pc.KubeNamespace, _ = s.Cluster.CurrentNamespace(gctx)
			return nil
		})
	}
	_ = g.Wait()

	return pc, nil
}
