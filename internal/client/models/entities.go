package models

// Every entity below carries a server-assigned id and an owning-user
// reference. Ids are never generated on the client: a record only enters the
// local cache after the server has echoed it back.
//
// EntityID, OwnerID and IndexKey implement the repository's Entity contract.
// IndexKey returns the value of the entity's semantic secondary index, which
// the local store keeps in a dedicated indexed column.

func boolIndex(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// UserEducation is one education record of a user's CV.
type UserEducation struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	IsCurrent    bool   `json:"is_current"`
	Description  string `json:"description,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (e UserEducation) EntityID() string { return e.ID }
func (e UserEducation) OwnerID() string  { return e.UserID }
func (e UserEducation) IndexKey() string { return boolIndex(e.IsCurrent) }

// UserEducationInput carries the writable education fields.
type UserEducationInput struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	IsCurrent    bool   `json:"is_current"`
	Description  string `json:"description,omitempty"`
}

// UserExperience is one work-experience record. DateRange is computed by the
// server from the start/end dates and echoed back for display.
type UserExperience struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description,omitempty"`
	DateRange   string `json:"date_range,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (e UserExperience) EntityID() string { return e.ID }
func (e UserExperience) OwnerID() string  { return e.UserID }
func (e UserExperience) IndexKey() string { return boolIndex(e.IsCurrent) }

type UserExperienceInput struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description,omitempty"`
}

// UserSkill is one skill record with a proficiency level.
type UserSkill struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Level     string `json:"level"`
	IsPrimary bool   `json:"is_primary"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (s UserSkill) EntityID() string { return s.ID }
func (s UserSkill) OwnerID() string  { return s.UserID }
func (s UserSkill) IndexKey() string { return boolIndex(s.IsPrimary) }

type UserSkillInput struct {
	Name      string `json:"name"`
	Level     string `json:"level"`
	IsPrimary bool   `json:"is_primary"`
}

// UserSocialAccount links a user profile to an external network.
type UserSocialAccount struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Provider  string `json:"provider"`
	URL       string `json:"url"`
	Username  string `json:"username,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (a UserSocialAccount) EntityID() string { return a.ID }
func (a UserSocialAccount) OwnerID() string  { return a.UserID }
func (a UserSocialAccount) IndexKey() string { return boolIndex(a.IsPrimary) }

type UserSocialAccountInput struct {
	Provider  string `json:"provider"`
	URL       string `json:"url"`
	Username  string `json:"username,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// UserModule is a feature module a user has attached to their profile.
// Toggling a module is an ordinary update with the flag flipped.
type UserModule struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsEnabled bool   `json:"is_enabled"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m UserModule) EntityID() string { return m.ID }
func (m UserModule) OwnerID() string  { return m.UserID }
func (m UserModule) IndexKey() string { return boolIndex(m.IsEnabled) }

type UserModuleInput struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsEnabled bool   `json:"is_enabled"`
}

// Organization is the root of the project-management hierarchy:
// organization → workspace → project → project detail.
type Organization struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (o Organization) EntityID() string { return o.ID }
func (o Organization) OwnerID() string  { return o.UserID }
func (o Organization) IndexKey() string { return o.Slug }

type OrganizationInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// Workspace groups projects inside an organization. Its secondary index is
// the parent organization id.
type Workspace struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func (w Workspace) EntityID() string { return w.ID }
func (w Workspace) OwnerID() string  { return w.UserID }
func (w Workspace) IndexKey() string { return w.OrganizationID }

type WorkspaceInput struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
}

// Project belongs to a workspace; its secondary index is the parent
// workspace id.
type Project struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (p Project) EntityID() string { return p.ID }
func (p Project) OwnerID() string  { return p.UserID }
func (p Project) IndexKey() string { return p.WorkspaceID }

type ProjectInput struct {
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectDetail holds the at-most-one detail record of a project; its
// secondary index is the parent project id.
type ProjectDetail struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProjectID string `json:"project_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (d ProjectDetail) EntityID() string { return d.ID }
func (d ProjectDetail) OwnerID() string  { return d.UserID }
func (d ProjectDetail) IndexKey() string { return d.ProjectID }

type ProjectDetailInput struct {
	ProjectID string `json:"project_id"`
	Content   string `json:"content"`
}
