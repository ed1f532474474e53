package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ngranander/backstage/internal/models"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
)

const unknownRequester = "N/A"

// mapRepoBuild flattens an upstream build record into a RepoBuild.
// Missing optional fields resolve to documented defaults, never to errors.
func mapRepoBuild(b build.Build) models.RepoBuild {
	rb := models.RepoBuild{
		Link:       webLink(b.Links),
		Status:     models.BuildStatusNone,
		Result:     models.BuildResultNone,
		QueueTime:  isoTime(b.QueueTime),
		StartTime:  isoTime(b.StartTime),
		FinishTime: isoTime(b.FinishTime),
		Source:     buildSource(b),
		UniqueName: unknownRequester,
	}

	if b.Id != nil {
		rb.ID = *b.Id
	}

	titleParts := make([]string, 0, 2)
	if b.Definition != nil && b.Definition.Name != nil {
		titleParts = append(titleParts, *b.Definition.Name)
	}
	if b.BuildNumber != nil {
		titleParts = append(titleParts, *b.BuildNumber)
	}
	rb.Title = strings.Join(titleParts, " - ")

	if b.Status != nil {
		rb.Status = models.BuildStatus(*b.Status)
	}
	if b.Result != nil {
		rb.Result = models.BuildResult(*b.Result)
	}
	if b.RequestedFor != nil && b.RequestedFor.UniqueName != nil {
		rb.UniqueName = *b.RequestedFor.UniqueName
	}

	return rb
}

func buildSource(b build.Build) string {
	var branch, version string
	if b.SourceBranch != nil {
		branch = *b.SourceBranch
	}
	if b.SourceVersion != nil {
		version = *b.SourceVersion
	}
	if len(version) > 8 {
		version = version[:8]
	}
	return fmt.Sprintf("%s (%s)", branch, version)
}

func isoTime(t *azuredevops.Time) string {
	if t == nil {
		return ""
	}
	return t.Time.UTC().Format(time.RFC3339)
}

// webLink digs the browser link out of the untyped _links blob.
func webLink(links interface{}) string {
	m, ok := links.(map[string]interface{})
	if !ok {
		return ""
	}
	web, ok := m["web"].(map[string]interface{})
	if !ok {
		return ""
	}
	href, _ := web["href"].(string)
	return href
}
