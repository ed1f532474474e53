package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ngranander/backstage/internal/mocks"
	"github.com/ngranander/backstage/internal/models"
	"github.com/ngranander/backstage/internal/service"

	"github.com/google/uuid"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/policy"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const baseURL = "https://dev.azure.com/backstage"

func ptr[T any](v T) *T {
	return &v
}

func newService(t *testing.T) (*service.DevOpsService, *mocks.MockGitAPI, *mocks.MockBuildAPI, *mocks.MockPolicyAPI, *mocks.MockCoreAPI) {
	t.Helper()

	ctrl := gomock.NewController(t)

	gitAPI := mocks.NewMockGitAPI(ctrl)
	buildAPI := mocks.NewMockBuildAPI(ctrl)
	policyAPI := mocks.NewMockPolicyAPI(ctrl)
	coreAPI := mocks.NewMockCoreAPI(ctrl)

	svc := service.NewDevOpsService(gitAPI, buildAPI, policyAPI, coreAPI, baseURL, zap.NewNop())

	return svc, gitAPI, buildAPI, policyAPI, coreAPI
}

func TestDevOpsService_ListRepoBuilds(t *testing.T) {
	svc, gitAPI, buildAPI, _, _ := newService(t)

	ctx := context.Background()
	repoID := uuid.New()
	repo := &git.GitRepository{Id: &repoID, Name: ptr("repo-a")}

	t.Run("repository resolution fails", func(t *testing.T) {
		gitAPI.EXPECT().
			GetRepository(ctx, gomock.Any()).
			Return(nil, errors.New("project not found"))

		builds, err := svc.ListRepoBuilds(ctx, "backstage", "repo-a", 5)
		require.Error(t, err)
		require.Nil(t, builds)
	})

	t.Run("build fetch fails", func(t *testing.T) {
		gitAPI.EXPECT().
			GetRepository(ctx, gomock.Any()).
			Return(repo, nil)
		buildAPI.EXPECT().
			GetBuilds(ctx, gomock.Any()).
			Return(nil, errors.New("upstream error"))

		builds, err := svc.ListRepoBuilds(ctx, "backstage", "repo-a", 5)
		require.Error(t, err)
		require.Nil(t, builds)
	})

	t.Run("builds filtered to TfsGit and limited", func(t *testing.T) {
		gitAPI.EXPECT().
			GetRepository(ctx, gomock.Any()).
			Return(repo, nil)
		buildAPI.EXPECT().
			GetBuilds(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, args build.GetBuildsArgs) (*build.GetBuildsResponseValue, error) {
				require.Equal(t, repoID.String(), *args.RepositoryId)
				require.Equal(t, "TfsGit", *args.RepositoryType)
				require.Equal(t, 5, *args.Top)
				return &build.GetBuildsResponseValue{}, nil
			})

		builds, err := svc.ListRepoBuilds(ctx, "backstage", "repo-a", 5)
		require.NoError(t, err)
		require.Empty(t, builds)
	})

	t.Run("builds mapped in upstream order", func(t *testing.T) {
		queued := azuredevops.Time{Time: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

		upstream := []build.Build{
			{
				Id:            ptr(1),
				Definition:    &build.DefinitionReference{Name: ptr("CI")},
				BuildNumber:   ptr("20"),
				QueueTime:     &queued,
				SourceBranch:  ptr("refs/heads/main"),
				SourceVersion: ptr("0123456789abcdef"),
				RequestedFor:  &webapi.IdentityRef{UniqueName: ptr("dev@backstage.io")},
			},
			{
				Id:            ptr(2),
				BuildNumber:   ptr("21"),
				Status:        &build.BuildStatusValues.Completed,
				Result:        &build.BuildResultValues.Succeeded,
				SourceBranch:  ptr("refs/heads/main"),
				SourceVersion: ptr("abc"),
			},
		}

		gitAPI.EXPECT().
			GetRepository(ctx, gomock.Any()).
			Return(repo, nil)
		buildAPI.EXPECT().
			GetBuilds(ctx, gomock.Any()).
			Return(&build.GetBuildsResponseValue{Value: upstream}, nil)

		builds, err := svc.ListRepoBuilds(ctx, "backstage", "repo-a", 5)
		require.NoError(t, err)
		require.Len(t, builds, 2)

		require.Equal(t, 1, builds[0].ID)
		require.Equal(t, "CI - 20", builds[0].Title)
		require.Equal(t, models.BuildStatusNone, builds[0].Status)
		require.Equal(t, models.BuildResultNone, builds[0].Result)
		require.Equal(t, "2024-03-01T12:00:00Z", builds[0].QueueTime)
		require.Equal(t, "refs/heads/main (01234567)", builds[0].Source)
		require.Equal(t, "dev@backstage.io", builds[0].UniqueName)

		require.Equal(t, 2, builds[1].ID)
		require.Equal(t, "21", builds[1].Title)
		require.Equal(t, models.BuildStatusCompleted, builds[1].Status)
		require.Equal(t, models.BuildResultSucceeded, builds[1].Result)
		require.Equal(t, "refs/heads/main (abc)", builds[1].Source)
		require.Equal(t, "N/A", builds[1].UniqueName)
	})
}

func TestDevOpsService_ListPullRequests(t *testing.T) {
	svc, gitAPI, _, _, _ := newService(t)

	ctx := context.Background()
	repoID := uuid.New()
	repo := &git.GitRepository{Id: &repoID, Name: ptr("repo-a")}
	opts := service.PullRequestOptions{Status: git.PullRequestStatusValues.Active, Top: 10}

	t.Run("pull request fetch fails", func(t *testing.T) {
		gitAPI.EXPECT().
			GetRepository(ctx, gomock.Any()).
			Return(repo, nil)
		gitAPI.EXPECT().
			GetPullRequests(ctx, gomock.Any()).
			Return(nil, errors.New("upstream error"))

		prs, err := svc.ListPullRequests(ctx, "backstage", "repo-a", opts)
		require.Error(t, err)
		require.Nil(t, prs)
	})

	t.Run("mapped with synthesized link", func(t *testing.T) {
		created := azuredevops.Time{Time: time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)}
		upstream := []git.GitPullRequest{
			{
				PullRequestId: ptr(42),
				Title:         ptr("Add feature"),
				CreatedBy: &webapi.IdentityRef{
					UniqueName:  ptr("dev@backstage.io"),
					DisplayName: ptr("Dev One"),
				},
				CreationDate:  &created,
				SourceRefName: ptr("refs/heads/feature"),
				TargetRefName: ptr("refs/heads/main"),
				Status:        &git.PullRequestStatusValues.Active,
				IsDraft:       ptr(false),
				Repository:    repo,
			},
		}

		gitAPI.EXPECT().
			GetRepository(ctx, gomock.Any()).
			Return(repo, nil)
		gitAPI.EXPECT().
			GetPullRequests(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, args git.GetPullRequestsArgs) (*[]git.GitPullRequest, error) {
				require.Equal(t, git.PullRequestStatusValues.Active, *args.SearchCriteria.Status)
				require.Equal(t, 10, *args.Top)
				return &upstream, nil
			})

		prs, err := svc.ListPullRequests(ctx, "my project", "repo-a", opts)
		require.NoError(t, err)
		require.Len(t, prs, 1)
		require.Equal(t, 42, prs[0].PullRequestID)
		require.Equal(t, "repo-a", prs[0].RepoName)
		require.Equal(t, "Dev One", prs[0].CreatedBy)
		require.Equal(t, "dev@backstage.io", prs[0].UniqueName)
		require.Equal(t, "active", prs[0].Status)
		require.Equal(t, baseURL+"/my%20project/_git/repo-a/pullrequest/42", prs[0].Link)
	})
}

func TestDevOpsService_ListDashboardPullRequests(t *testing.T) {
	projectID := uuid.New()
	repoID := uuid.New()
	minReviewersType := uuid.MustParse("fa4e907d-c16b-4a4c-9dfa-4906e5d171dd")

	repoWithProject := &git.GitRepository{
		Id:   &repoID,
		Name: ptr("repo-a"),
		Project: &core.TeamProjectReference{
			Id:   &projectID,
			Name: ptr("backstage"),
		},
	}
	opts := service.PullRequestOptions{Status: git.PullRequestStatusValues.Active, Top: 10}

	t.Run("policies attached only when scope is resolvable", func(t *testing.T) {
		svc, gitAPI, _, policyAPI, _ := newService(t)
		ctx := context.Background()

		upstream := []git.GitPullRequest{
			{
				PullRequestId: ptr(1),
				Title:         ptr("With policies"),
				Repository:    repoWithProject,
			},
			{
				PullRequestId: ptr(2),
				Title:         ptr("No project id"),
				Repository:    &git.GitRepository{Id: &repoID, Name: ptr("repo-a")},
			},
		}

		records := []policy.PolicyEvaluationRecord{
			{
				Configuration: &policy.PolicyConfiguration{
					Id:        ptr(5),
					IsEnabled: ptr(true),
					IsDeleted: ptr(false),
					Type:      &policy.PolicyTypeRef{Id: &minReviewersType},
					Settings:  map[string]interface{}{"minimumApproverCount": float64(2)},
				},
			},
			{}, // no configuration, not convertible
		}

		gitAPI.EXPECT().
			GetPullRequestsByProject(ctx, gomock.Any()).
			Return(&upstream, nil)
		policyAPI.EXPECT().
			GetPolicyEvaluations(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args policy.GetPolicyEvaluationsArgs) (*[]policy.PolicyEvaluationRecord, error) {
				require.Equal(t, "vstfs:///CodeReview/CodeReviewId/"+projectID.String()+"/1", *args.ArtifactId)
				return &records, nil
			})

		prs, err := svc.ListDashboardPullRequests(ctx, "backstage", opts)
		require.NoError(t, err)
		require.Len(t, prs, 2)

		require.NotNil(t, prs[0].Policies)
		require.Len(t, *prs[0].Policies, 1)
		require.Equal(t, models.PolicyTypeMinimumReviewers, (*prs[0].Policies)[0].Type)
		require.Equal(t, "Minimum number of reviewers (2)", (*prs[0].Policies)[0].Text)

		require.Nil(t, prs[1].Policies)
	})

	t.Run("empty evaluation list yields empty policies", func(t *testing.T) {
		svc, gitAPI, _, policyAPI, _ := newService(t)
		ctx := context.Background()

		upstream := []git.GitPullRequest{
			{PullRequestId: ptr(1), Repository: repoWithProject},
		}

		gitAPI.EXPECT().
			GetPullRequestsByProject(ctx, gomock.Any()).
			Return(&upstream, nil)
		policyAPI.EXPECT().
			GetPolicyEvaluations(gomock.Any(), gomock.Any()).
			Return(&[]policy.PolicyEvaluationRecord{}, nil)

		prs, err := svc.ListDashboardPullRequests(ctx, "backstage", opts)
		require.NoError(t, err)
		require.Len(t, prs, 1)
		require.NotNil(t, prs[0].Policies)
		require.Empty(t, *prs[0].Policies)
	})

	t.Run("single enrichment failure fails the whole listing", func(t *testing.T) {
		svc, gitAPI, _, policyAPI, _ := newService(t)
		ctx := context.Background()

		upstream := []git.GitPullRequest{
			{PullRequestId: ptr(1), Repository: repoWithProject},
			{PullRequestId: ptr(2), Repository: repoWithProject},
		}

		gitAPI.EXPECT().
			GetPullRequestsByProject(ctx, gomock.Any()).
			Return(&upstream, nil)
		policyAPI.EXPECT().
			GetPolicyEvaluations(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("policy service down")).
			MinTimes(1)

		prs, err := svc.ListDashboardPullRequests(ctx, "backstage", opts)
		require.Error(t, err)
		require.Nil(t, prs)
	})

	t.Run("project listing failure propagates", func(t *testing.T) {
		svc, gitAPI, _, _, _ := newService(t)
		ctx := context.Background()

		gitAPI.EXPECT().
			GetPullRequestsByProject(ctx, gomock.Any()).
			Return(nil, errors.New("upstream error"))

		prs, err := svc.ListDashboardPullRequests(ctx, "backstage", opts)
		require.Error(t, err)
		require.Nil(t, prs)
	})
}

func TestDevOpsService_ListTeams(t *testing.T) {
	projectID := uuid.New()

	team := func(name string) core.WebApiTeam {
		id := uuid.New()
		return core.WebApiTeam{
			Id:        &id,
			Name:      ptr(name),
			ProjectId: &projectID,
		}
	}

	t.Run("sorted by name with locale comparison", func(t *testing.T) {
		svc, _, _, _, coreAPI := newService(t)
		ctx := context.Background()

		// byte order would put "Core" first
		teams := []core.WebApiTeam{team("platform"), team("Core"), team("api")}

		coreAPI.EXPECT().
			GetAllTeams(ctx, gomock.Any()).
			Return(&teams, nil)
		coreAPI.EXPECT().
			GetTeamMembersWithExtendedProperties(gomock.Any(), gomock.Any()).
			Return(&[]webapi.TeamMember{}, nil).
			Times(3)

		result, err := svc.ListTeams(ctx)
		require.NoError(t, err)
		require.Len(t, result, 3)
		require.Equal(t, "api", result[0].Name)
		require.Equal(t, "Core", result[1].Name)
		require.Equal(t, "platform", result[2].Name)
	})

	t.Run("member ids resolved and absent identities dropped", func(t *testing.T) {
		svc, _, _, _, coreAPI := newService(t)
		ctx := context.Background()

		teams := []core.WebApiTeam{team("platform")}
		members := []webapi.TeamMember{
			{Identity: &webapi.IdentityRef{Id: ptr("id-1")}},
			{Identity: &webapi.IdentityRef{}},
			{},
			{Identity: &webapi.IdentityRef{Id: ptr("id-2")}},
		}

		coreAPI.EXPECT().
			GetAllTeams(ctx, gomock.Any()).
			Return(&teams, nil)
		coreAPI.EXPECT().
			GetTeamMembersWithExtendedProperties(gomock.Any(), gomock.Any()).
			Return(&members, nil)

		result, err := svc.ListTeams(ctx)
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].MemberIDs)
		require.Equal(t, []string{"id-1", "id-2"}, *result[0].MemberIDs)
	})

	t.Run("no member call for team without identifiers", func(t *testing.T) {
		svc, _, _, _, coreAPI := newService(t)
		ctx := context.Background()

		teams := []core.WebApiTeam{{Name: ptr("orphan")}}

		coreAPI.EXPECT().
			GetAllTeams(ctx, gomock.Any()).
			Return(&teams, nil)

		result, err := svc.ListTeams(ctx)
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.Nil(t, result[0].MemberIDs)
	})

	t.Run("single member fetch failure fails the whole listing", func(t *testing.T) {
		svc, _, _, _, coreAPI := newService(t)
		ctx := context.Background()

		teams := []core.WebApiTeam{team("api"), team("platform")}

		coreAPI.EXPECT().
			GetAllTeams(ctx, gomock.Any()).
			Return(&teams, nil)
		coreAPI.EXPECT().
			GetTeamMembersWithExtendedProperties(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("membership service down")).
			MinTimes(1)

		result, err := svc.ListTeams(ctx)
		require.Error(t, err)
		require.Nil(t, result)
	})

	t.Run("team list fetch failure propagates", func(t *testing.T) {
		svc, _, _, _, coreAPI := newService(t)
		ctx := context.Background()

		coreAPI.EXPECT().
			GetAllTeams(ctx, gomock.Any()).
			Return(nil, errors.New("upstream error"))

		result, err := svc.ListTeams(ctx)
		require.Error(t, err)
		require.Nil(t, result)
	})
}
