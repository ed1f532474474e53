package models

// BuildStatus mirrors the upstream build status enum. Builds without a
// status are reported as BuildStatusNone, never as an empty value.
type BuildStatus string

const (
	BuildStatusNone       BuildStatus = "none"
	BuildStatusInProgress BuildStatus = "inProgress"
	BuildStatusCompleted  BuildStatus = "completed"
	BuildStatusCancelling BuildStatus = "cancelling"
	BuildStatusPostponed  BuildStatus = "postponed"
	BuildStatusNotStarted BuildStatus = "notStarted"
)

// BuildResult mirrors the upstream build result enum.
type BuildResult string

const (
	BuildResultNone               BuildResult = "none"
	BuildResultCanceled           BuildResult = "canceled"
	BuildResultFailed             BuildResult = "failed"
	BuildResultPartiallySucceeded BuildResult = "partiallySucceeded"
	BuildResultSucceeded          BuildResult = "succeeded"
)

// RepoBuild is one CI build of a repository, flattened for the dashboard.
// Timestamps are ISO-8601 strings, omitted when the upstream record
// carries none.
type RepoBuild struct {
	ID         int         `json:"id"`
	Title      string      `json:"title"`
	Link       string      `json:"link"`
	Status     BuildStatus `json:"status"`
	Result     BuildResult `json:"result"`
	QueueTime  string      `json:"queueTime,omitempty"`
	StartTime  string      `json:"startTime,omitempty"`
	FinishTime string      `json:"finishTime,omitempty"`
	Source     string      `json:"source"`
	UniqueName string      `json:"uniqueName"`
}

// PullRequest is one pull request within a known repository.
type PullRequest struct {
	PullRequestID int    `json:"pullRequestId"`
	RepoName      string `json:"repoName"`
	Title         string `json:"title"`
	UniqueName    string `json:"uniqueName"`
	CreatedBy     string `json:"createdBy"`
	CreationDate  string `json:"creationDate,omitempty"`
	SourceRefName string `json:"sourceRefName"`
	TargetRefName string `json:"targetRefName"`
	Status        string `json:"status"`
	IsDraft       bool   `json:"isDraft"`
	Link          string `json:"link"`
}

// DashboardPullRequest is a pull request shown across a whole project,
// enriched with review-policy state. Policies is nil for pull requests
// whose project id or pull-request id could not be resolved, and non-nil
// (possibly empty) otherwise.
type DashboardPullRequest struct {
	PullRequest
	Policies *[]Policy `json:"policies,omitempty"`
}

// PolicyType classifies an evaluated branch/PR policy.
type PolicyType string

const (
	PolicyTypeBuild             PolicyType = "Build"
	PolicyTypeMinimumReviewers  PolicyType = "MinimumReviewers"
	PolicyTypeComments          PolicyType = "Comments"
	PolicyTypeRequiredReviewers PolicyType = "RequiredReviewers"
	PolicyTypeStatus            PolicyType = "Status"
	PolicyTypeMergeStrategy     PolicyType = "MergeStrategy"
)

// Policy is one evaluated policy on a pull request.
type Policy struct {
	ID   int        `json:"id"`
	Type PolicyType `json:"type"`
	Text string     `json:"text"`
	Link string     `json:"link,omitempty"`
}

// Team is a project team. MemberIDs is nil when the upstream team record
// lacks the identifiers needed to query membership.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ProjectID string    `json:"projectId,omitempty"`
	MemberIDs *[]string `json:"memberIds,omitempty"`
}
