package linear

import "context"

// ProjectCreateOptions carry the fields of a new project. Name and at
// least one team are required.
type ProjectCreateOptions struct {
	Name        string
	Teams       []string
	Description string
	State       string
	Lead        string
	TargetDate  string
}

// ProjectUpdateOptions carry a partial project update with the tri-state
// contract on pointer fields.
type ProjectUpdateOptions struct {
	Name        *string
	Description *string
	State       *string
	Lead        *string
	TargetDate  *string
}

type projectPayload struct {
	Success bool         `json:"success"`
	Project *projectNode `json:"project"`
}

// ListProjects lists projects in the workspace.
func (s *Service) ListProjects(ctx context.Context, limit int) ([]Project, error) {
	variables := map[string]any{
		"first":  pageSize(limit),
		"after":  nil,
		"filter": nil,
	}
	var projects []Project
	for {
		var resp struct {
			Projects connection[projectNode] `json:"projects"`
		}
		if err := s.client.Do(ctx, queryProjects, variables, &resp); err != nil {
			return nil, err
		}
		for _, n := range resp.Projects.Nodes {
			projects = append(projects, projectFromNode(n))
			if limit > 0 && len(projects) >= limit {
				return projects, nil
			}
		}
		if !resp.Projects.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.Projects.PageInfo.EndCursor
	}
	return projects, nil
}

// GetProject fetches one project by name or opaque ID.
func (s *Service) GetProject(ctx context.Context, ref string) (*Project, error) {
	id, err := s.res.ResolveProject(ctx, ref)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Project *projectNode `json:"project"`
	}
	if err := s.client.Do(ctx, queryProject, map[string]any{"id": id}, &resp); err != nil {
		if isEntityNotFound(err) {
			return nil, &NotFoundError{Field: "project", Value: ref}
		}
		return nil, err
	}
	if resp.Project == nil {
		return nil, &NotFoundError{Field: "project", Value: ref}
	}
	project := projectFromNode(*resp.Project)
	return &project, nil
}

// CreateProject creates a project on the given teams.
func (s *Service) CreateProject(ctx context.Context, opts ProjectCreateOptions) (*Project, error) {
	if opts.Name == "" {
		return nil, validationf("project name is required")
	}
	if len(opts.Teams) == 0 {
		return nil, validationf("project requires at least one team")
	}
	teamIDs := make([]string, len(opts.Teams))
	for i, team := range opts.Teams {
		id, err := s.res.ResolveTeam(ctx, team)
		if err != nil {
			return nil, err
		}
		teamIDs[i] = id
	}
	input := Input{}
	input.Set("name", opts.Name)
	input.Set("teamIds", teamIDs)
	input.SetNonEmpty("description", opts.Description)
	input.SetNonEmpty("state", opts.State)
	input.SetNonEmpty("targetDate", opts.TargetDate)
	if opts.Lead != "" {
		leadID, err := s.res.ResolveUser(ctx, opts.Lead)
		if err != nil {
			return nil, err
		}
		input.Set("leadId", leadID)
	}
	var resp struct {
		ProjectCreate projectPayload `json:"projectCreate"`
	}
	if err := s.client.Do(ctx, mutationProjectCreate, map[string]any{"input": input}, &resp); err != nil {
		return nil, remoteErr("create project", opts.Name, err)
	}
	if !resp.ProjectCreate.Success || resp.ProjectCreate.Project == nil {
		return nil, remoteErr("create project", opts.Name, nil)
	}
	project := projectFromNode(*resp.ProjectCreate.Project)
	return &project, nil
}

// UpdateProject applies a partial update to the referenced project.
func (s *Service) UpdateProject(ctx context.Context, ref string, opts ProjectUpdateOptions) (*Project, error) {
	if opts.Name != nil && *opts.Name == "" {
		return nil, validationf("project name cannot be cleared")
	}
	id, err := s.res.ResolveProject(ctx, ref)
	if err != nil {
		return nil, err
	}
	input := Input{}
	if opts.Name != nil {
		input.Set("name", *opts.Name)
	}
	if opts.Description != nil {
		if *opts.Description == "" {
			input.Clear("description")
		} else {
			input.Set("description", *opts.Description)
		}
	}
	if opts.State != nil {
		input.Set("state", *opts.State)
	}
	if opts.TargetDate != nil {
		if *opts.TargetDate == "" {
			input.Clear("targetDate")
		} else {
			input.Set("targetDate", *opts.TargetDate)
		}
	}
	if opts.Lead != nil {
		if *opts.Lead == "" {
			input.Clear("leadId")
		} else {
			leadID, err := s.res.ResolveUser(ctx, *opts.Lead)
			if err != nil {
				return nil, err
			}
			input.Set("leadId", leadID)
		}
	}
	if input.Empty() {
		return nil, validationf("nothing to update")
	}
	var resp struct {
		ProjectUpdate projectPayload `json:"projectUpdate"`
	}
	vars := map[string]any{"id": id, "input": input}
	if err := s.client.Do(ctx, mutationProjectUpdate, vars, &resp); err != nil {
		return nil, remoteErr("update project", ref, err)
	}
	if !resp.ProjectUpdate.Success || resp.ProjectUpdate.Project == nil {
		return nil, remoteErr("update project", ref, nil)
	}
	project := projectFromNode(*resp.ProjectUpdate.Project)
	return &project, nil
}

// DeleteProject moves the referenced project to trash.
func (s *Service) DeleteProject(ctx context.Context, ref string) error {
	id, err := s.res.ResolveProject(ctx, ref)
	if err != nil {
		return err
	}
	var resp struct {
		ProjectDelete struct {
			Success bool `json:"success"`
		} `json:"projectDelete"`
	}
	if err := s.client.Do(ctx, mutationProjectDelete, map[string]any{"id": id}, &resp); err != nil {
		return remoteErr("delete project", ref, err)
	}
	if !resp.ProjectDelete.Success {
		return remoteErr("delete project", ref, nil)
	}
	return nil
}
