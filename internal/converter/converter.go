// Package converter holds the pure conversion helpers shared by the
// service layer: policy-evaluation conversion, pull-request reshaping and
// link construction. Nothing here performs I/O.
package converter

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ngranander/backstage/internal/models"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/policy"
)

// Well-known policy type ids of the platform. Records with any other type
// id are not convertible and get dropped.
var policyTypes = map[string]models.PolicyType{
	"0609b952-1397-4640-95ec-e00a01b2c241": models.PolicyTypeBuild,
	"fa4e907d-c16b-4a4c-9dfa-4906e5d171dd": models.PolicyTypeMinimumReviewers,
	"c6a1889d-b943-4856-b76f-9e46bb6b0df2": models.PolicyTypeComments,
	"fd2167ab-b0be-447a-8ec8-39368250530e": models.PolicyTypeRequiredReviewers,
	"cbdc66da-9728-4af8-aada-9a5a32e4a226": models.PolicyTypeStatus,
	"fa4e907d-c16b-4a4c-9dfa-4916e5d171ab": models.PolicyTypeMergeStrategy,
}

// PullRequestLink builds the browser link for a pull request.
func PullRequestLink(baseURL, project, repoName string, pullRequestID int) string {
	return fmt.Sprintf("%s/%s/_git/%s/pullrequest/%d",
		baseURL,
		url.PathEscape(project),
		url.PathEscape(repoName),
		pullRequestID,
	)
}

// ConvertPullRequest flattens an upstream pull-request record.
func ConvertPullRequest(pr git.GitPullRequest, repoName, link string) models.PullRequest {
	result := models.PullRequest{
		RepoName: repoName,
		Link:     link,
	}

	if pr.PullRequestId != nil {
		result.PullRequestID = *pr.PullRequestId
	}
	if pr.Title != nil {
		result.Title = *pr.Title
	}
	if pr.CreatedBy != nil {
		if pr.CreatedBy.UniqueName != nil {
			result.UniqueName = *pr.CreatedBy.UniqueName
		}
		if pr.CreatedBy.DisplayName != nil {
			result.CreatedBy = *pr.CreatedBy.DisplayName
		}
	}
	if pr.CreationDate != nil {
		result.CreationDate = pr.CreationDate.Time.UTC().Format(time.RFC3339)
	}
	if pr.SourceRefName != nil {
		result.SourceRefName = *pr.SourceRefName
	}
	if pr.TargetRefName != nil {
		result.TargetRefName = *pr.TargetRefName
	}
	if pr.Status != nil {
		result.Status = string(*pr.Status)
	}
	if pr.IsDraft != nil {
		result.IsDraft = *pr.IsDraft
	}

	return result
}

// ConvertDashboardPullRequest assembles the cross-project view of a pull
// request. Policies stays nil when the caller could not resolve a policy
// scope for the record.
func ConvertDashboardPullRequest(pr git.GitPullRequest, baseURL string, policies *[]models.Policy) models.DashboardPullRequest {
	var project, repoName string
	if pr.Repository != nil {
		if pr.Repository.Name != nil {
			repoName = *pr.Repository.Name
		}
		if pr.Repository.Project != nil && pr.Repository.Project.Name != nil {
			project = *pr.Repository.Project.Name
		}
	}

	var link string
	if pr.PullRequestId != nil {
		link = PullRequestLink(baseURL, project, repoName, *pr.PullRequestId)
	}

	return models.DashboardPullRequest{
		PullRequest: ConvertPullRequest(pr, repoName, link),
		Policies:    policies,
	}
}

// ConvertPolicy derives a dashboard policy from an evaluation record.
// It returns nil when no policy can be derived: disabled or deleted
// configurations, unknown policy types, records without a configuration.
// Callers drop nil results instead of treating them as errors.
func ConvertPolicy(record policy.PolicyEvaluationRecord) *models.Policy {
	cfg := record.Configuration
	if cfg == nil || cfg.Type == nil || cfg.Type.Id == nil {
		return nil
	}
	if cfg.IsEnabled == nil || !*cfg.IsEnabled {
		return nil
	}
	if cfg.IsDeleted != nil && *cfg.IsDeleted {
		return nil
	}

	policyType, ok := policyTypes[cfg.Type.Id.String()]
	if !ok {
		return nil
	}

	p := &models.Policy{
		Type: policyType,
		Text: policyText(policyType, cfg),
	}
	if cfg.Id != nil {
		p.ID = *cfg.Id
	}
	if cfg.Url != nil {
		p.Link = *cfg.Url
	}

	return p
}

func policyText(policyType models.PolicyType, cfg *policy.PolicyConfiguration) string {
	settings, _ := cfg.Settings.(map[string]interface{})

	switch policyType {
	case models.PolicyTypeBuild:
		if name, ok := settings["displayName"].(string); ok && name != "" {
			return name
		}
		return "Build"
	case models.PolicyTypeMinimumReviewers:
		if count, ok := settings["minimumApproverCount"].(float64); ok {
			return fmt.Sprintf("Minimum number of reviewers (%d)", int(count))
		}
		return "Minimum number of reviewers"
	case models.PolicyTypeComments:
		return "Comment requirements"
	case models.PolicyTypeRequiredReviewers:
		return "Required reviewers"
	case models.PolicyTypeStatus:
		if name, ok := settings["defaultDisplayName"].(string); ok && name != "" {
			return fmt.Sprintf("Status (%s)", name)
		}
		return "Status"
	case models.PolicyTypeMergeStrategy:
		return "Merge strategy"
	}

	return string(policyType)
}
