package entities

import "github.com/ourganize/ourganize-cli/internal/client/repository"

// GraphQL documents for the entity collections. Responses echo the full
// persisted entity, including server-computed fields, so the client never
// fabricates record state.

var educationDocs = repository.Documents{
	List: `query GetUserEducations {
  userEducations {
    id user_id institution degree field_of_study start_date end_date is_current description created_at updated_at
  }
}`,
	ListField: "userEducations",

	Create: `mutation CreateUserEducation($input: UserEducationInput!) {
  createUserEducation(input: $input) {
    id user_id institution degree field_of_study start_date end_date is_current description created_at updated_at
  }
}`,
	CreateField: "createUserEducation",

	Update: `mutation UpdateUserEducation($id: ID!, $input: UserEducationInput!) {
  updateUserEducation(id: $id, input: $input) {
    id user_id institution degree field_of_study start_date end_date is_current description created_at updated_at
  }
}`,
	UpdateField: "updateUserEducation",

	Delete: `mutation DeleteUserEducation($id: ID!) {
  deleteUserEducation(id: $id)
}`,
	DeleteField: "deleteUserEducation",
}

var experienceDocs = repository.Documents{
	List: `query GetUserExperiences {
  userExperiences {
    id user_id company position start_date end_date is_current description date_range created_at updated_at
  }
}`,
	ListField: "userExperiences",

	Create: `mutation CreateUserExperience($input: UserExperienceInput!) {
  createUserExperience(input: $input) {
    id user_id company position start_date end_date is_current description date_range created_at updated_at
  }
}`,
	CreateField: "createUserExperience",

	Update: `mutation UpdateUserExperience($id: ID!, $input: UserExperienceInput!) {
  updateUserExperience(id: $id, input: $input) {
    id user_id company position start_date end_date is_current description date_range created_at updated_at
  }
}`,
	UpdateField: "updateUserExperience",

	Delete: `mutation DeleteUserExperience($id: ID!) {
  deleteUserExperience(id: $id)
}`,
	DeleteField: "deleteUserExperience",
}

var skillDocs = repository.Documents{
	List: `query GetUserSkills {
  userSkills {
    id user_id name level is_primary created_at updated_at
  }
}`,
	ListField: "userSkills",

	Create: `mutation CreateUserSkill($input: UserSkillInput!) {
  createUserSkill(input: $input) {
    id user_id name level is_primary created_at updated_at
  }
}`,
	CreateField: "createUserSkill",

	Update: `mutation UpdateUserSkill($id: ID!, $input: UserSkillInput!) {
  updateUserSkill(id: $id, input: $input) {
    id user_id name level is_primary created_at updated_at
  }
}`,
	UpdateField: "updateUserSkill",

	Delete: `mutation DeleteUserSkill($id: ID!) {
  deleteUserSkill(id: $id)
}`,
	DeleteField: "deleteUserSkill",
}

var socialAccountDocs = repository.Documents{
	List: `query GetUserSocialAccounts {
  userSocialAccounts {
    id user_id provider url username is_primary created_at updated_at
  }
}`,
	ListField: "userSocialAccounts",

	Create: `mutation CreateUserSocialAccount($input: UserSocialAccountInput!) {
  createUserSocialAccount(input: $input) {
    id user_id provider url username is_primary created_at updated_at
  }
}`,
	CreateField: "createUserSocialAccount",

	Update: `mutation UpdateUserSocialAccount($id: ID!, $input: UserSocialAccountInput!) {
  updateUserSocialAccount(id: $id, input: $input) {
    id user_id provider url username is_primary created_at updated_at
  }
}`,
	UpdateField: "updateUserSocialAccount",

	Delete: `mutation DeleteUserSocialAccount($id: ID!) {
  deleteUserSocialAccount(id: $id)
}`,
	DeleteField: "deleteUserSocialAccount",
}

var moduleDocs = repository.Documents{
	List: `query GetUserModules {
  userModules {
    id user_id name slug is_enabled created_at updated_at
  }
}`,
	ListField: "userModules",

	Create: `mutation CreateUserModule($input: UserModuleInput!) {
  createUserModule(input: $input) {
    id user_id name slug is_enabled created_at updated_at
  }
}`,
	CreateField: "createUserModule",

	Update: `mutation UpdateUserModule($id: ID!, $input: UserModuleInput!) {
  updateUserModule(id: $id, input: $input) {
    id user_id name slug is_enabled created_at updated_at
  }
}`,
	UpdateField: "updateUserModule",

	Delete: `mutation DeleteUserModule($id: ID!) {
  deleteUserModule(id: $id)
}`,
	DeleteField: "deleteUserModule",
}

var organizationDocs = repository.Documents{
	List: `query GetOrganizations {
  organizations {
    id user_id name slug description logo_url created_at updated_at
  }
}`,
	ListField: "organizations",

	Create: `mutation CreateOrganization($input: OrganizationInput!) {
  createOrganization(input: $input) {
    id user_id name slug description logo_url created_at updated_at
  }
}`,
	CreateField: "createOrganization",

	Update: `mutation UpdateOrganization($id: ID!, $input: OrganizationInput!) {
  updateOrganization(id: $id, input: $input) {
    id user_id name slug description logo_url created_at updated_at
  }
}`,
	UpdateField: "updateOrganization",

	Delete: `mutation DeleteOrganization($id: ID!) {
  deleteOrganization(id: $id)
}`,
	DeleteField: "deleteOrganization",
}

var workspaceDocs = repository.Documents{
	List: `query GetWorkspaces {
  workspaces {
    id user_id organization_id name description created_at updated_at
  }
}`,
	ListField: "workspaces",

	Create: `mutation CreateWorkspace($input: WorkspaceInput!) {
  createWorkspace(input: $input) {
    id user_id organization_id name description created_at updated_at
  }
}`,
	CreateField: "createWorkspace",

	Update: `mutation UpdateWorkspace($id: ID!, $input: WorkspaceInput!) {
  updateWorkspace(id: $id, input: $input) {
    id user_id organization_id name description created_at updated_at
  }
}`,
	UpdateField: "updateWorkspace",

	Delete: `mutation DeleteWorkspace($id: ID!) {
  deleteWorkspace(id: $id)
}`,
	DeleteField: "deleteWorkspace",
}

var projectDocs = repository.Documents{
	List: `query GetProjects {
  projects {
    id user_id workspace_id name status description created_at updated_at
  }
}`,
	ListField: "projects",

	Create: `mutation CreateProject($input: ProjectInput!) {
  createProject(input: $input) {
    id user_id workspace_id name status description created_at updated_at
  }
}`,
	CreateField: "createProject",

	Update: `mutation UpdateProject($id: ID!, $input: ProjectInput!) {
  updateProject(id: $id, input: $input) {
    id user_id workspace_id name status description created_at updated_at
  }
}`,
	UpdateField: "updateProject",

	Delete: `mutation DeleteProject($id: ID!) {
  deleteProject(id: $id)
}`,
	DeleteField: "deleteProject",
}

var projectDetailDocs = repository.Documents{
	List: `query GetProjectDetails {
  projectDetails {
    id user_id project_id content created_at updated_at
  }
}`,
	ListField: "projectDetails",

	Create: `mutation CreateProjectDetail($input: ProjectDetailInput!) {
  createProjectDetail(input: $input) {
    id user_id project_id content created_at updated_at
  }
}`,
	CreateField: "createProjectDetail",

	Update: `mutation UpdateProjectDetail($id: ID!, $input: ProjectDetailInput!) {
  updateProjectDetail(id: $id, input: $input) {
    id user_id project_id content created_at updated_at
  }
}`,
	UpdateField: "updateProjectDetail",

	Delete: `mutation DeleteProjectDetail($id: ID!) {
  deleteProjectDetail(id: $id)
}`,
	DeleteField: "deleteProjectDetail",
}
