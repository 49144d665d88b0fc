package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/promptline/internal/domain"
	"github.com/doeshing/promptline/internal/pkg/logger"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubRepository struct {
	inRepo        bool
	identity      *domain.RepoIdentity
	unstaged      domain.UnstagedState
	unpushed      domain.UnpushedState
	identityCalls atomic.Int64
	unstagedCalls atomic.Int64
	unpushedCalls atomic.Int64
}

func (s *stubRepository) InRepository(context.Context) bool {
	return s.inRepo
}

func (s *stubRepository) Identity(context.Context) *domain.RepoIdentity {
	s.identityCalls.Add(1)
	return s.identity
}

func (s *stubRepository) UnstagedChanges(context.Context) domain.UnstagedState {
	s.unstagedCalls.Add(1)
	return s.unstaged
}

func (s *stubRepository) UnpushedChanges(context.Context) domain.UnpushedState {
	s.unpushedCalls.Add(1)
	return s.unpushed
}

type stubCluster struct {
	contextName string
	namespace   string
	calls       atomic.Int64
}

func (s *stubCluster) CurrentContext(context.Context) (string, bool) {
	s.calls.Add(1)
	return s.contextName, s.contextName != ""
}

func (s *stubCluster) CurrentNamespace(context.Context) (string, bool) {
	s.calls.Add(1)
	return s.namespace, s.namespace != ""
}

type stubCloud struct {
	profile string
	region  string
}

func (s stubCloud) Profile() (string, bool) { return s.profile, s.profile != "" }
func (s stubCloud) Region() (string, bool)  { return s.region, s.region != "" }

func newService(repo *stubRepository, cluster *stubCluster, cloud stubCloud) *PromptService {
	return &PromptService{
		ConfigProvider: stubConfigProvider{},
		Repository:     repo,
		Cluster:        cluster,
		Cloud:          cloud,
		Logger:         logger.NewStd(false),
	}
}

func TestBuildInsideRepository(t *testing.T) {
	repo := &stubRepository{
		inRepo:   true,
		identity: &domain.RepoIdentity{Label: "main"},
		unstaged: domain.UnstagedClean,
		unpushed: domain.UnpushedSynced,
	}
	cluster := &stubCluster{contextName: "prod", namespace: "default"}
	svc := newService(repo, cluster, stubCloud{profile: "dev"})

	pc, err := svc.Build(context.Background(), domain.PromptRequest{ExitCode: 0})
	require.NoError(t, err)

	assert.True(t, pc.InRepository)
	require.NotNil(t, pc.Identity)
	assert.Equal(t, "main", pc.Identity.Display())
	assert.Equal(t, domain.UnstagedClean, pc.Unstaged)
	assert.Equal(t, domain.UnpushedSynced, pc.Unpushed)
	assert.Equal(t, "prod", pc.KubeContext)
	assert.Equal(t, "default", pc.KubeNamespace)
	assert.Equal(t, "dev", pc.CloudProfile)
	assert.Empty(t, pc.CloudRegion)
	assert.Zero(t, pc.ExitCode)
}

func TestBuildOutsideRepositorySkipsGitWave(t *testing.T) {
	repo := &stubRepository{inRepo: false}
	cluster := &stubCluster{contextName: "prod"}
	svc := newService(repo, cluster, stubCloud{})

	pc, err := svc.Build(context.Background(), domain.PromptRequest{})
	require.NoError(t, err)

	assert.False(t, pc.InRepository)
	assert.Nil(t, pc.Identity)
	assert.Equal(t, domain.UnstagedUnknown, pc.Unstaged)
	assert.Equal(t, domain.UnpushedUnknown, pc.Unpushed)
	assert.Zero(t, repo.identityCalls.Load(), "identity resolver must not run")
	assert.Zero(t, repo.unstagedCalls.Load(), "unstaged classifier must not run")
	assert.Zero(t, repo.unpushedCalls.Load(), "unpushed classifier must not run")
	assert.Equal(t, "prod", pc.KubeContext, "cluster collector still runs outside a repository")
}

func TestBuildCarriesRequestFields(t *testing.T) {
	svc := newService(&stubRepository{}, &stubCluster{}, stubCloud{})

	pc, err := svc.Build(context.Background(), domain.PromptRequest{ExitCode: 130, Message: "rebasing"})
	require.NoError(t, err)

	assert.Equal(t, 130, pc.ExitCode)
	assert.Equal(t, "rebasing", pc.Message)
	assert.NotEmpty(t, pc.WorkingDir)
}

func TestBuildConfigFailureDegradesToDefaults(t *testing.T) {
	repo := &stubRepository{inRepo: true, unstaged: domain.UnstagedClean, unpushed: domain.UnpushedSynced}
	svc := newService(repo, &stubCluster{}, stubCloud{})
	svc.ConfigProvider = stubConfigProvider{err: stubError{}}

	pc, err := svc.Build(context.Background(), domain.PromptRequest{})
	require.NoError(t, err, "broken config must not abort the render")
	assert.True(t, pc.InRepository, "collectors default to enabled")
}

func TestBuildCollectorsDisabledByConfig(t *testing.T) {
	repo := &stubRepository{inRepo: true}
	cluster := &stubCluster{contextName: "prod", namespace: "default"}
	svc := newService(repo, cluster, stubCloud{profile: "dev", region: "eu-west-1"})
	svc.ConfigProvider = stubConfigProvider{cfg: domain.Config{
		Collectors: domain.CollectorSettings{Git: "never", Kubernetes: "never", Cloud: "never"},
	}}

	pc, err := svc.Build(context.Background(), domain.PromptRequest{})
	require.NoError(t, err)

	assert.False(t, pc.InRepository)
	assert.Empty(t, pc.KubeContext)
	assert.Empty(t, pc.CloudProfile)
	assert.Zero(t, cluster.calls.Load())
}

func TestBuildMissingDependenciesErrors(t *testing.T) {
	svc := &PromptService{}
	_, err := svc.Build(context.Background(), domain.PromptRequest{})
	require.Error(t, err)
}

type stubError struct{}

func (stubError) Error() string { return "boom" }
