//go:generate mockgen -source=service.go -destination=../mocks/service.go -package=mocks .

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/ngranander/backstage/internal/converter"
	"github.com/ngranander/backstage/internal/models"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/policy"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// repositoryType filters build listings to builds of Azure Repos git
// repositories; builds of externally hosted sources are not shown.
const repositoryType = "TfsGit"

type GitAPI interface {
	// Получить репозиторий по проекту и имени
	GetRepository(ctx context.Context, args git.GetRepositoryArgs) (*git.GitRepository, error)

	// Получить пулл-реквесты одного репозитория
	GetPullRequests(ctx context.Context, args git.GetPullRequestsArgs) (*[]git.GitPullRequest, error)

	// Получить пулл-реквесты всего проекта
	GetPullRequestsByProject(ctx context.Context, args git.GetPullRequestsByProjectArgs) (*[]git.GitPullRequest, error)
}

type BuildAPI interface {
	// Получить билды репозитория
	GetBuilds(ctx context.Context, args build.GetBuildsArgs) (*build.GetBuildsResponseValue, error)
}

type PolicyAPI interface {
	// Получить оценки политик для артефакта
	GetPolicyEvaluations(ctx context.Context, args policy.GetPolicyEvaluationsArgs) (*[]policy.PolicyEvaluationRecord, error)
}

type CoreAPI interface {
	// Получить все команды организации
	GetAllTeams(ctx context.Context, args core.GetAllTeamsArgs) (*[]core.WebApiTeam, error)

	// Получить участников команды
	GetTeamMembersWithExtendedProperties(ctx context.Context, args core.GetTeamMembersWithExtendedPropertiesArgs) (*[]webapi.TeamMember, error)
}

// PullRequestOptions scope a pull-request listing.
type PullRequestOptions struct {
	Status git.PullRequestStatus
	Top    int
}

// DevOpsService reshapes Azure DevOps responses into the dashboard DTOs.
// It holds no state beyond the wired clients; every call hits upstream.
type DevOpsService struct {
	gitAPI    GitAPI
	buildAPI  BuildAPI
	policyAPI PolicyAPI
	coreAPI   CoreAPI

	baseURL string

	log *zap.Logger
}

func NewDevOpsService(
	gitAPI GitAPI,
	buildAPI BuildAPI,
	policyAPI PolicyAPI,
	coreAPI CoreAPI,
	baseURL string,
	log *zap.Logger,
) *DevOpsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DevOpsService{
		gitAPI:    gitAPI,
		buildAPI:  buildAPI,
		policyAPI: policyAPI,
		coreAPI:   coreAPI,
		baseURL:   baseURL,
		log:       log,
	}
}

// GetGitRepository resolves a repository by project and name. Upstream
// failures (unknown project, unknown repository, auth) are returned as-is.
func (s *DevOpsService) GetGitRepository(ctx context.Context, project, repoName string) (*git.GitRepository, error) {
	s.log.Debug("getting repository",
		zap.String("project", project),
		zap.String("repo", repoName),
	)

	return s.gitAPI.GetRepository(ctx, git.GetRepositoryArgs{
		RepositoryId: &repoName,
		Project:      &project,
	})
}

// GetBuildList fetches up to top most-recent builds of a repository.
// Ordering is whatever upstream returns.
func (s *DevOpsService) GetBuildList(ctx context.Context, project, repoID string, top int) ([]build.Build, error) {
	s.log.Debug("getting builds",
		zap.String("project", project),
		zap.String("repo_id", repoID),
		zap.Int("top", top),
	)

	repoType := repositoryType
	resp, err := s.buildAPI.GetBuilds(ctx, build.GetBuildsArgs{
		Project:        &project,
		RepositoryId:   &repoID,
		RepositoryType: &repoType,
		Top:            &top,
	})
	if err != nil {
		return nil, err
	}

	return resp.Value, nil
}

// ListRepoBuilds resolves the repository, lists its builds and maps each
// one into a RepoBuild, preserving upstream order.
func (s *DevOpsService) ListRepoBuilds(ctx context.Context, project, repoName string, top int) ([]models.RepoBuild, error) {
	repo, err := s.GetGitRepository(ctx, project, repoName)
	if err != nil {
		return nil, err
	}

	var repoID string
	if repo.Id != nil {
		repoID = repo.Id.String()
	}

	builds, err := s.GetBuildList(ctx, project, repoID, top)
	if err != nil {
		return nil, err
	}

	repoBuilds := make([]models.RepoBuild, len(builds))
	for i, b := range builds {
		repoBuilds[i] = mapRepoBuild(b)
	}

	s.log.Debug("builds mapped",
		zap.String("repo", repoName),
		zap.Int("count", len(repoBuilds)),
	)

	return repoBuilds, nil
}

// ListPullRequests lists pull requests of one repository, scoped by the
// status filter, newest first as returned by upstream.
func (s *DevOpsService) ListPullRequests(ctx context.Context, project, repoName string, opts PullRequestOptions) ([]models.PullRequest, error) {
	repo, err := s.GetGitRepository(ctx, project, repoName)
	if err != nil {
		return nil, err
	}

	var repoID string
	if repo.Id != nil {
		repoID = repo.Id.String()
	}

	s.log.Debug("getting pull requests",
		zap.String("project", project),
		zap.String("repo", repoName),
		zap.String("status", string(opts.Status)),
	)

	prs, err := s.gitAPI.GetPullRequests(ctx, git.GetPullRequestsArgs{
		RepositoryId: &repoID,
		Project:      &project,
		SearchCriteria: &git.GitPullRequestSearchCriteria{
			Status: &opts.Status,
		},
		Top: &opts.Top,
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.PullRequest, 0, len(*prs))
	for _, pr := range *prs {
		name := repoName
		if pr.Repository != nil && pr.Repository.Name != nil {
			name = *pr.Repository.Name
		}

		var link string
		if pr.PullRequestId != nil {
			link = converter.PullRequestLink(s.baseURL, project, name, *pr.PullRequestId)
		}

		result = append(result, converter.ConvertPullRequest(pr, name, link))
	}

	return result, nil
}

// ListDashboardPullRequests lists pull requests across a whole project and
// enriches each one with its policy evaluations. Enrichment calls run
// concurrently; if any of them fails, the whole listing fails.
func (s *DevOpsService) ListDashboardPullRequests(ctx context.Context, project string, opts PullRequestOptions) ([]models.DashboardPullRequest, error) {
	s.log.Debug("getting dashboard pull requests",
		zap.String("project", project),
		zap.String("status", string(opts.Status)),
	)

	prs, err := s.gitAPI.GetPullRequestsByProject(ctx, git.GetPullRequestsByProjectArgs{
		Project: &project,
		SearchCriteria: &git.GitPullRequestSearchCriteria{
			Status: &opts.Status,
		},
		Top: &opts.Top,
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.DashboardPullRequest, len(*prs))

	g, gctx := errgroup.WithContext(ctx)
	for i, pr := range *prs {
		i, pr := i, pr
		g.Go(func() error {
			var policies *[]models.Policy

			if projectID, prID, ok := policyScope(pr); ok {
				evaluated, err := s.GetPolicies(gctx, project, projectID, prID)
				if err != nil {
					return err
				}
				policies = &evaluated
			}

			result[i] = converter.ConvertDashboardPullRequest(pr, s.baseURL, policies)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetPolicies queries policy evaluations for one pull request and converts
// them, dropping records no dashboard policy can be derived from.
func (s *DevOpsService) GetPolicies(ctx context.Context, project, projectID string, pullRequestID int) ([]models.Policy, error) {
	artifactID := fmt.Sprintf("vstfs:///CodeReview/CodeReviewId/%s/%d", projectID, pullRequestID)

	s.log.Debug("getting policy evaluations",
		zap.String("project", project),
		zap.String("artifact_id", artifactID),
	)

	records, err := s.policyAPI.GetPolicyEvaluations(ctx, policy.GetPolicyEvaluationsArgs{
		Project:    &project,
		ArtifactId: &artifactID,
	})
	if err != nil {
		return nil, err
	}

	policies := make([]models.Policy, 0, len(*records))
	for _, record := range *records {
		if p := converter.ConvertPolicy(record); p != nil {
			policies = append(policies, *p)
		}
	}

	return policies, nil
}

// ListTeams lists all teams of the organization with their member identity
// ids, sorted ascending by name under locale-aware comparison. Member
// fetches run concurrently; a single failure fails the whole listing.
func (s *DevOpsService) ListTeams(ctx context.Context) ([]models.Team, error) {
	s.log.Debug("getting all teams")

	teams, err := s.coreAPI.GetAllTeams(ctx, core.GetAllTeamsArgs{})
	if err != nil {
		return nil, err
	}

	sorted := make([]core.WebApiTeam, len(*teams))
	copy(sorted, *teams)
	sortTeamsByName(sorted)

	result := make([]models.Team, len(sorted))

	g, gctx := errgroup.WithContext(ctx)
	for i, team := range sorted {
		i, team := i, team
		g.Go(func() error {
			memberIDs, err := s.getTeamMemberIDs(gctx, team)
			if err != nil {
				return err
			}

			t := models.Team{MemberIDs: memberIDs}
			if team.Id != nil {
				t.ID = team.Id.String()
			}
			if team.Name != nil {
				t.Name = *team.Name
			}
			if team.ProjectId != nil {
				t.ProjectID = team.ProjectId.String()
			}

			result[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("teams listed", zap.Int("count", len(result)))

	return result, nil
}

// getTeamMemberIDs returns the identity ids of a team's members, or nil
// without calling upstream when the team record cannot be queried.
func (s *DevOpsService) getTeamMemberIDs(ctx context.Context, team core.WebApiTeam) (*[]string, error) {
	if team.ProjectId == nil || team.Id == nil {
		return nil, nil
	}

	projectID := team.ProjectId.String()
	teamID := team.Id.String()

	members, err := s.coreAPI.GetTeamMembersWithExtendedProperties(ctx, core.GetTeamMembersWithExtendedPropertiesArgs{
		ProjectId: &projectID,
		TeamId:    &teamID,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(*members))
	for _, m := range *members {
		if m.Identity != nil && m.Identity.Id != nil {
			ids = append(ids, *m.Identity.Id)
		}
	}

	return &ids, nil
}

func policyScope(pr git.GitPullRequest) (projectID string, pullRequestID int, ok bool) {
	if pr.PullRequestId == nil {
		return "", 0, false
	}
	if pr.Repository == nil || pr.Repository.Project == nil || pr.Repository.Project.Id == nil {
		return "", 0, false
	}
	return pr.Repository.Project.Id.String(), *pr.PullRequestId, true
}

// sortTeamsByName sorts in place, ascending by name under the collator.
// Teams without a name keep their relative position.
func sortTeamsByName(teams []core.WebApiTeam) {
	c := collate.New(language.English)
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Name == nil || teams[j].Name == nil {
			return false
		}
		return c.CompareString(*teams[i].Name, *teams[j].Name) < 0
	})
}
