package cli

import (
	"os"

	"github.com/ourganize/ourganize-cli/internal/client/models"
)

// Interactive field prompts, one per collection kind. Add and Edit share
// them; the server validates the result either way.

func (a *App) promptEducation() (models.UserEducationInput, error) {
	var in models.UserEducationInput
	var err error

	if in.Institution, err = getSimpleText(a.reader, "Institution", os.Stdout); err != nil {
		return in, err
	}
	if in.Degree, err = getSimpleText(a.reader, "Degree", os.Stdout); err != nil {
		return in, err
	}
	if in.FieldOfStudy, err = getSimpleText(a.reader, "Field of study", os.Stdout); err != nil {
		return in, err
	}
	if in.StartDate, err = getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout); err != nil {
		return in, err
	}
	if in.IsCurrent, err = GetBool(a.reader, "Currently studying here?", false, os.Stdout); err != nil {
		return in, err
	}
	if !in.IsCurrent {
		if in.EndDate, err = getSimpleText(a.reader, "End date (YYYY-MM-DD)", os.Stdout); err != nil {
			return in, err
		}
	}
	in.Description, err = GetMultiline(a.reader, "Description", os.Stdout)
	return in, err
}

func (a *App) promptExperience() (models.UserExperienceInput, error) {
	var in models.UserExperienceInput
	var err error

	if in.Company, err = getSimpleText(a.reader, "Company", os.Stdout); err != nil {
		return in, err
	}
	if in.Position, err = getSimpleText(a.reader, "Position", os.Stdout); err != nil {
		return in, err
	}
	if in.StartDate, err = getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout); err != nil {
		return in, err
	}
	if in.IsCurrent, err = GetBool(a.reader, "Currently working here?", false, os.Stdout); err != nil {
		return in, err
	}
	if !in.IsCurrent {
		if in.EndDate, err = getSimpleText(a.reader, "End date (YYYY-MM-DD)", os.Stdout); err != nil {
			return in, err
		}
	}
	in.Description, err = GetMultiline(a.reader, "Description", os.Stdout)
	return in, err
}

func (a *App) promptSkill() (models.UserSkillInput, error) {
	var in models.UserSkillInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Skill name", os.Stdout); err != nil {
		return in, err
	}
	if in.Level, err = getSimpleText(a.reader, "Level (beginner/intermediate/advanced/expert)", os.Stdout); err != nil {
		return in, err
	}
	in.IsPrimary, err = GetBool(a.reader, "Primary skill?", false, os.Stdout)
	return in, err
}

func (a *App) promptSocialAccount() (models.UserSocialAccountInput, error) {
	var in models.UserSocialAccountInput
	var err error

	if in.Provider, err = getSimpleText(a.reader, "Provider (e.g. github, linkedin)", os.Stdout); err != nil {
		return in, err
	}
	if in.URL, err = getSimpleText(a.reader, "Profile URL", os.Stdout); err != nil {
		return in, err
	}
	if in.Username, err = getSimpleText(a.reader, "Username", os.Stdout); err != nil {
		return in, err
	}
	in.IsPrimary, err = GetBool(a.reader, "Primary account?", false, os.Stdout)
	return in, err
}

func (a *App) promptModule() (models.UserModuleInput, error) {
	var in models.UserModuleInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Module name", os.Stdout); err != nil {
		return in, err
	}
	if in.Slug, err = getSimpleText(a.reader, "Module slug", os.Stdout); err != nil {
		return in, err
	}
	in.IsEnabled, err = GetBool(a.reader, "Enabled?", true, os.Stdout)
	return in, err
}

func (a *App) promptOrganization() (models.OrganizationInput, error) {
	var in models.OrganizationInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Organization name", os.Stdout); err != nil {
		return in, err
	}
	if in.Slug, err = getSimpleText(a.reader, "Slug (empty for server default)", os.Stdout); err != nil {
		return in, err
	}
	in.Description, err = GetMultiline(a.reader, "Description", os.Stdout)
	return in, err
}

func (a *App) promptWorkspace() (models.WorkspaceInput, error) {
	var in models.WorkspaceInput
	var err error

	if in.OrganizationID, err = getSimpleText(a.reader, "Organization id", os.Stdout); err != nil {
		return in, err
	}
	if in.Name, err = getSimpleText(a.reader, "Workspace name", os.Stdout); err != nil {
		return in, err
	}
	in.Description, err = GetMultiline(a.reader, "Description", os.Stdout)
	return in, err
}

func (a *App) promptProject() (models.ProjectInput, error) {
	var in models.ProjectInput
	var err error

	if in.WorkspaceID, err = getSimpleText(a.reader, "Workspace id", os.Stdout); err != nil {
		return in, err
	}
	if in.Name, err = getSimpleText(a.reader, "Project name", os.Stdout); err != nil {
		return in, err
	}
	if in.Status, err = getSimpleText(a.reader, "Status (e.g. active, archived)", os.Stdout); err != nil {
		return in, err
	}
	in.Description, err = GetMultiline(a.reader, "Description", os.Stdout)
	return in, err
}

func (a *App) promptProjectDetail() (models.ProjectDetailInput, error) {
	var in models.ProjectDetailInput
	var err error

	if in.ProjectID, err = getSimpleText(a.reader, "Project id", os.Stdout); err != nil {
		return in, err
	}
	in.Content, err = GetMultiline(a.reader, "Content", os.Stdout)
	return in, err
}
