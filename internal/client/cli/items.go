package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ourganize/ourganize-cli/internal/client/models"
	"github.com/ourganize/ourganize-cli/internal/client/repository"
)

// Collection kinds accepted by the list/add/edit/del commands.
const (
	kindEducations  = "educations"
	kindExperiences = "experiences"
	kindSkills      = "skills"
	kindSocials     = "socials"
	kindModules     = "modules"
	kindOrgs        = "orgs"
	kindWorkspaces  = "workspaces"
	kindProjects    = "projects"
	kindDetails     = "details"
)

func normalizeKind(kind string) string {
	switch kind {
	case "edu", "education", kindEducations:
		return kindEducations
	case "exp", "experience", kindExperiences:
		return kindExperiences
	case "skill", kindSkills:
		return kindSkills
	case "social", kindSocials:
		return kindSocials
	case "module", kindModules:
		return kindModules
	case "org", "organizations", kindOrgs:
		return kindOrgs
	case "ws", "workspace", kindWorkspaces:
		return kindWorkspaces
	case "project", kindProjects:
		return kindProjects
	case "detail", kindDetails:
		return kindDetails
	}
	return ""
}

// listItems loads a collection and prints one line per record. When the
// remote fetch fails, whatever the cache holds is shown instead and the
// error is still reported.
func listItems[T repository.Entity](ctx context.Context, c *repository.Collection[T], force bool, render func(T) string) error {
	items, err := c.Load(ctx, force)
	if err != nil {
		printlnFn("Could not reach the server, showing cached data:", err.Error())
		items = c.Items()
	}
	if len(items) == 0 {
		printlnFn("(empty)")
		return err
	}
	for _, it := range items {
		printlnFn(render(it))
	}
	return err
}

func createItem[T repository.Entity](ctx context.Context, c *repository.Collection[T], input any) error {
	item, err := c.Create(ctx, input)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}
	printlnFn("Created record", item.EntityID())
	return nil
}

func updateItem[T repository.Entity](ctx context.Context, c *repository.Collection[T], id string, input any) error {
	item, err := c.Update(ctx, id, input)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Updated record", item.EntityID())
	return nil
}

func deleteItem[T repository.Entity](ctx context.Context, c *repository.Collection[T], id string) error {
	if err := c.Remove(ctx, id); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}
	printlnFn("Deleted record", id)
	return nil
}

// List prints the records of one collection.
func (a *App) List(ctx context.Context, kind string, force bool) error {
	switch normalizeKind(kind) {
	case kindEducations:
		return listItems(ctx, a.registry.Educations, force, func(e models.UserEducation) string {
			return fmt.Sprintf("%s  %s in %s at %s (%s)", e.ID, e.Degree, e.FieldOfStudy, e.Institution, dateSpan(e.StartDate, e.EndDate, e.IsCurrent))
		})
	case kindExperiences:
		return listItems(ctx, a.registry.Experiences, force, func(e models.UserExperience) string {
			span := e.DateRange
			if span == "" {
				span = dateSpan(e.StartDate, e.EndDate, e.IsCurrent)
			}
			return fmt.Sprintf("%s  %s at %s (%s)", e.ID, e.Position, e.Company, span)
		})
	case kindSkills:
		return listItems(ctx, a.registry.Skills, force, func(s models.UserSkill) string {
			mark := ""
			if s.IsPrimary {
				mark = " *"
			}
			return fmt.Sprintf("%s  %s (%s)%s", s.ID, s.Name, s.Level, mark)
		})
	case kindSocials:
		return listItems(ctx, a.registry.SocialAccounts, force, func(s models.UserSocialAccount) string {
			return fmt.Sprintf("%s  %s: %s", s.ID, s.Provider, s.URL)
		})
	case kindModules:
		return listItems(ctx, a.registry.Modules, force, func(m models.UserModule) string {
			state := "off"
			if m.IsEnabled {
				state = "on"
			}
			return fmt.Sprintf("%s  %s [%s]", m.ID, m.Name, state)
		})
	case kindOrgs:
		return listItems(ctx, a.registry.Organizations, force, func(o models.Organization) string {
			return fmt.Sprintf("%s  %s (%s)", o.ID, o.Name, o.Slug)
		})
	case kindWorkspaces:
		return listItems(ctx, a.registry.Workspaces, force, func(w models.Workspace) string {
			return fmt.Sprintf("%s  %s (org %s)", w.ID, w.Name, w.OrganizationID)
		})
	case kindProjects:
		return listItems(ctx, a.registry.Projects, force, func(p models.Project) string {
			return fmt.Sprintf("%s  %s [%s] (workspace %s)", p.ID, p.Name, p.Status, p.WorkspaceID)
		})
	case kindDetails:
		return listItems(ctx, a.registry.ProjectDetails, force, func(d models.ProjectDetail) string {
			return fmt.Sprintf("%s  project %s: %s", d.ID, d.ProjectID, d.Content)
		})
	}
	printlnFn("Unknown kind:", kind)
	return nil
}

// Add prompts for the fields of one record and creates it.
func (a *App) Add(ctx context.Context, kind string) error {
	switch normalizeKind(kind) {
	case kindEducations:
		in, err := a.promptEducation()
		if err != nil {
			return err
		}
		return createItem(ctx, a.registry.Educations, in)
	case kindExperiences:
		in, err := a.promptExperience()
		if err != nil {
			return err
		}
		return createItem(ctx, a.registry.Experiences, in)
	case kindSkills:
		in, err := a.promptSkill()
		if err != nil {
			return err
		}
		return createItem(ctx, a.registry.Skills, in)
	case kindSocials:
		in, err := a.promptSocialAccount()
		if err != nil {
			return err
		}
		return createItem(ctx, a.registry.SocialAccounts, in)
	case kindModules:
		in, err := a.promptModule()
		if err != nil {
			return err
		}
		return createItem(ctx, a.registry.Modules, in)
	case kindOrgs:
		in, err := a.promptOrganization()
		if err != nil {
			return err
		}
		return createItem(ctx, a.registry.Organizations, in)
	case kindWorkspaces:
		in, err := a.promptWorkspace()
		if err != nil {
			return err
		}
		return createItem(ctx, a.registry.Workspaces, in)
	case kindProjects:
		in, err := a.promptProject()
		if err != nil {
			return err
		}
		return createItem(ctx, a.registry.Projects, in)
	case kindDetails:
		in, err := a.promptProjectDetail()
		if err != nil {
			return err
		}
		return createItem(ctx, a.registry.ProjectDetails, in)
	}
	printlnFn("Unknown kind:", kind)
	return nil
}

// Edit prompts for a record id and replacement fields, then updates it.
func (a *App) Edit(ctx context.Context, kind string) error {
	id, err := getSimpleText(a.reader, "Enter record id", os.Stdout)
	if err != nil {
		return err
	}

	switch normalizeKind(kind) {
	case kindEducations:
		in, err := a.promptEducation()
		if err != nil {
			return err
		}
		return updateItem(ctx, a.registry.Educations, id, in)
	case kindExperiences:
		in, err := a.promptExperience()
		if err != nil {
			return err
		}
		return updateItem(ctx, a.registry.Experiences, id, in)
	case kindSkills:
		in, err := a.promptSkill()
		if err != nil {
			return err
		}
		return updateItem(ctx, a.registry.Skills, id, in)
	case kindSocials:
		in, err := a.promptSocialAccount()
		if err != nil {
			return err
		}
		return updateItem(ctx, a.registry.SocialAccounts, id, in)
	case kindModules:
		in, err := a.promptModule()
		if err != nil {
			return err
		}
		return updateItem(ctx, a.registry.Modules, id, in)
	case kindOrgs:
		in, err := a.promptOrganization()
		if err != nil {
			return err
		}
		return updateItem(ctx, a.registry.Organizations, id, in)
	case kindWorkspaces:
		in, err := a.promptWorkspace()
		if err != nil {
			return err
		}
		return updateItem(ctx, a.registry.Workspaces, id, in)
	case kindProjects:
		in, err := a.promptProject()
		if err != nil {
			return err
		}
		return updateItem(ctx, a.registry.Projects, id, in)
	case kindDetails:
		in, err := a.promptProjectDetail()
		if err != nil {
			return err
		}
		return updateItem(ctx, a.registry.ProjectDetails, id, in)
	}
	printlnFn("Unknown kind:", kind)
	return nil
}

// Delete prompts for a record id and removes it.
func (a *App) Delete(ctx context.Context, kind string) error {
	id, err := getSimpleText(a.reader, "Enter record id to delete", os.Stdout)
	if err != nil {
		return err
	}

	switch normalizeKind(kind) {
	case kindEducations:
		return deleteItem(ctx, a.registry.Educations, id)
	case kindExperiences:
		return deleteItem(ctx, a.registry.Experiences, id)
	case kindSkills:
		return deleteItem(ctx, a.registry.Skills, id)
	case kindSocials:
		return deleteItem(ctx, a.registry.SocialAccounts, id)
	case kindModules:
		return deleteItem(ctx, a.registry.Modules, id)
	case kindOrgs:
		return deleteItem(ctx, a.registry.Organizations, id)
	case kindWorkspaces:
		return deleteItem(ctx, a.registry.Workspaces, id)
	case kindProjects:
		return deleteItem(ctx, a.registry.Projects, id)
	case kindDetails:
		return deleteItem(ctx, a.registry.ProjectDetails, id)
	}
	printlnFn("Unknown kind:", kind)
	return nil
}

// Toggle flips the enabled flag of one feature module.
func (a *App) Toggle(ctx context.Context) error {
	if err := a.List(ctx, kindModules, false); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter module id", os.Stdout)
	if err != nil {
		return err
	}
	enabled, err := GetBool(a.reader, "Enable the module?", true, os.Stdout)
	if err != nil {
		return err
	}

	m, err := a.registry.SetModuleEnabled(ctx, id, enabled)
	if err != nil {
		printlnFn("Toggle failed:", err.Error())
		return err
	}
	state := "disabled"
	if m.IsEnabled {
		state = "enabled"
	}
	printlnFn("Module", m.Name, state)
	return nil
}

func dateSpan(start, end string, current bool) string {
	if current {
		return start + " - present"
	}
	if end == "" {
		return start
	}
	return start + " - " + end
}
