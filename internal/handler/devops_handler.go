package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ngranander/backstage/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"go.uber.org/zap"
)

var errInvalidStatus = errors.New("invalid pull request status filter")

type DevOpsHandler struct {
	svc        *service.DevOpsService
	defaultTop int
	log        *zap.Logger
}

func NewDevOpsHandler(svc *service.DevOpsService, defaultTop int, log *zap.Logger) *DevOpsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DevOpsHandler{
		svc:        svc,
		defaultTop: defaultTop,
		log:        log,
	}
}

func (h *DevOpsHandler) Register(e *echo.Echo) {
	e.GET("/health", h.GetHealth)
	e.GET("/repository/:projectName/:repoName", h.GetRepository)
	e.GET("/builds/:projectName/:repoName", h.GetBuilds)
	e.GET("/pull-requests/:projectName/:repoName", h.GetPullRequests)
	e.GET("/dashboard-pull-requests/:projectName", h.GetDashboardPullRequests)
	e.GET("/all-teams", h.GetAllTeams)
}

func (h *DevOpsHandler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *DevOpsHandler) GetRepository(c echo.Context) error {
	repo, err := h.svc.GetGitRepository(c.Request().Context(), c.Param("projectName"), c.Param("repoName"))
	if err != nil {
		return h.upstreamError(c, err)
	}

	return c.JSON(http.StatusOK, repo)
}

func (h *DevOpsHandler) GetBuilds(c echo.Context) error {
	top := h.topParam(c)

	builds, err := h.svc.ListRepoBuilds(c.Request().Context(), c.Param("projectName"), c.Param("repoName"), top)
	if err != nil {
		return h.upstreamError(c, err)
	}

	return c.JSON(http.StatusOK, builds)
}

func (h *DevOpsHandler) GetPullRequests(c echo.Context) error {
	opts, err := h.pullRequestOptions(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	prs, err := h.svc.ListPullRequests(c.Request().Context(), c.Param("projectName"), c.Param("repoName"), opts)
	if err != nil {
		return h.upstreamError(c, err)
	}

	return c.JSON(http.StatusOK, prs)
}

func (h *DevOpsHandler) GetDashboardPullRequests(c echo.Context) error {
	opts, err := h.pullRequestOptions(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	prs, err := h.svc.ListDashboardPullRequests(c.Request().Context(), c.Param("projectName"), opts)
	if err != nil {
		return h.upstreamError(c, err)
	}

	return c.JSON(http.StatusOK, prs)
}

func (h *DevOpsHandler) GetAllTeams(c echo.Context) error {
	teams, err := h.svc.ListTeams(c.Request().Context())
	if err != nil {
		return h.upstreamError(c, err)
	}

	return c.JSON(http.StatusOK, teams)
}

func (h *DevOpsHandler) topParam(c echo.Context) int {
	raw := c.QueryParam("top")
	if raw == "" {
		return h.defaultTop
	}

	top, err := strconv.Atoi(raw)
	if err != nil || top <= 0 {
		return h.defaultTop
	}

	return top
}

func (h *DevOpsHandler) pullRequestOptions(c echo.Context) (service.PullRequestOptions, error) {
	status, err := parseStatus(c.QueryParam("status"))
	if err != nil {
		return service.PullRequestOptions{}, err
	}

	return service.PullRequestOptions{
		Status: status,
		Top:    h.topParam(c),
	}, nil
}

func parseStatus(raw string) (git.PullRequestStatus, error) {
	switch raw {
	case "", "active":
		return git.PullRequestStatusValues.Active, nil
	case "completed":
		return git.PullRequestStatusValues.Completed, nil
	case "abandoned":
		return git.PullRequestStatusValues.Abandoned, nil
	case "all":
		return git.PullRequestStatusValues.All, nil
	case "notSet":
		return git.PullRequestStatusValues.NotSet, nil
	}
	return "", errInvalidStatus
}

// upstreamError passes the platform's status code through when it is
// known; anything else becomes a 500. Upstream errors are never rewritten.
func (h *DevOpsHandler) upstreamError(c echo.Context, err error) error {
	h.log.Error("upstream call failed",
		zap.Error(err),
		zap.String("path", c.Path()),
	)

	var wrapped azuredevops.WrappedError
	if errors.As(err, &wrapped) && wrapped.StatusCode != nil {
		return c.JSON(*wrapped.StatusCode, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
