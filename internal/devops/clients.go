// Package devops constructs the Azure DevOps area clients from a personal
// access token connection. Authentication, sessions and retries all belong
// to the SDK; nothing in this repo adds behavior on top.
package devops

import (
	"context"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/policy"
)

// Clients bundles the pre-authenticated area clients the service consumes.
type Clients struct {
	Git    git.Client
	Build  build.Client
	Policy policy.Client
	Core   core.Client
}

// NewClients connects to the organization with a PAT and resolves the
// area clients.
func NewClients(ctx context.Context, organizationURL, token string) (*Clients, error) {
	connection := azuredevops.NewPatConnection(organizationURL, token)

	gitClient, err := git.NewClient(ctx, connection)
	if err != nil {
		return nil, err
	}

	buildClient, err := build.NewClient(ctx, connection)
	if err != nil {
		return nil, err
	}

	policyClient, err := policy.NewClient(ctx, connection)
	if err != nil {
		return nil, err
	}

	coreClient, err := core.NewClient(ctx, connection)
	if err != nil {
		return nil, err
	}

	return &Clients{
		Git:    gitClient,
		Build:  buildClient,
		Policy: policyClient,
		Core:   coreClient,
	}, nil
}
