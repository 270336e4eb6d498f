// Package entities instantiates the generic collection once per Ourganize
// entity type and bundles the instances into a registry with a shared
// lifecycle.
package entities

import (
	"context"
	"errors"
	"fmt"

	"github.com/ourganize/ourganize-cli/internal/client/gateway"
	"github.com/ourganize/ourganize-cli/internal/client/localstore"
	"github.com/ourganize/ourganize-cli/internal/client/models"
	"github.com/ourganize/ourganize-cli/internal/client/repository"
	"github.com/ourganize/ourganize-cli/internal/logging"
)

// Registry holds one collection per entity type. Construct it once at
// application start; reset it via ClearAll at logout.
type Registry struct {
	Educations     *repository.Collection[models.UserEducation]
	Experiences    *repository.Collection[models.UserExperience]
	Skills         *repository.Collection[models.UserSkill]
	SocialAccounts *repository.Collection[models.UserSocialAccount]
	Modules        *repository.Collection[models.UserModule]
	Organizations  *repository.Collection[models.Organization]
	Workspaces     *repository.Collection[models.Workspace]
	Projects       *repository.Collection[models.Project]
	ProjectDetails *repository.Collection[models.ProjectDetail]
}

// NewRegistry wires every collection to the shared gateway and store.
func NewRegistry(gw gateway.Client, store *localstore.Store, log logging.Logger) *Registry {
	return &Registry{
		Educations:     repository.New[models.UserEducation]("user_educations", educationDocs, gw, store, log),
		Experiences:    repository.New[models.UserExperience]("user_experiences", experienceDocs, gw, store, log),
		Skills:         repository.New[models.UserSkill]("user_skills", skillDocs, gw, store, log),
		SocialAccounts: repository.New[models.UserSocialAccount]("user_social_accounts", socialAccountDocs, gw, store, log),
		Modules:        repository.New[models.UserModule]("user_modules", moduleDocs, gw, store, log),
		Organizations:  repository.New[models.Organization]("organizations", organizationDocs, gw, store, log),
		Workspaces:     repository.New[models.Workspace]("workspaces", workspaceDocs, gw, store, log),
		Projects:       repository.New[models.Project]("projects", projectDocs, gw, store, log),
		ProjectDetails: repository.New[models.ProjectDetail]("project_details", projectDetailDocs, gw, store, log),
	}
}

// ClearAll empties every in-memory collection and its cache table. Errors
// are collected so one failing table does not keep the rest populated.
func (r *Registry) ClearAll(ctx context.Context) error {
	return errors.Join(
		r.Educations.Clear(ctx),
		r.Experiences.Clear(ctx),
		r.Skills.Clear(ctx),
		r.SocialAccounts.Clear(ctx),
		r.Modules.Clear(ctx),
		r.Organizations.Clear(ctx),
		r.Workspaces.Clear(ctx),
		r.Projects.Clear(ctx),
		r.ProjectDetails.Clear(ctx),
	)
}

// SetModuleEnabled flips a module's enabled flag. Toggling is an ordinary
// update with the flag inverted; the server echoes the persisted module.
func (r *Registry) SetModuleEnabled(ctx context.Context, id string, enabled bool) (models.UserModule, error) {
	var current *models.UserModule
	for _, m := range r.Modules.Items() {
		if m.ID == id {
			current = &m
			break
		}
	}
	if current == nil {
		return models.UserModule{}, fmt.Errorf("module %s not loaded", id)
	}

	input := models.UserModuleInput{
		Name:      current.Name,
		Slug:      current.Slug,
		IsEnabled: enabled,
	}
	return r.Modules.Update(ctx, id, input)
}
