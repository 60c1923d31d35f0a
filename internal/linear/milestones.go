package linear

import "context"

// MilestoneCreateOptions carry the fields of a new project milestone.
type MilestoneCreateOptions struct {
	Name        string
	Project     string
	Description string
	TargetDate  string
}

// MilestoneUpdateOptions carry a partial milestone update.
type MilestoneUpdateOptions struct {
	Name        *string
	Description *string
	TargetDate  *string
}

type milestonePayload struct {
	Success          bool           `json:"success"`
	ProjectMilestone *milestoneNode `json:"projectMilestone"`
}

// ListMilestones lists the milestones of a project.
func (s *Service) ListMilestones(ctx context.Context, projectRef string, limit int) ([]Milestone, error) {
	if projectRef == "" {
		return nil, validationf("milestone listing requires a project")
	}
	projectID, err := s.res.ResolveProject(ctx, projectRef)
	if err != nil {
		return nil, err
	}
	variables := map[string]any{
		"projectId": projectID,
		"first":     pageSize(limit),
		"after":     nil,
	}
	var milestones []Milestone
	for {
		var resp struct {
			Project *struct {
				ID                string                    `json:"id"`
				ProjectMilestones connection[milestoneNode] `json:"projectMilestones"`
			} `json:"project"`
		}
		if err := s.client.Do(ctx, queryProjectMilestones, variables, &resp); err != nil {
			return nil, err
		}
		if resp.Project == nil {
			return nil, &NotFoundError{Field: "project", Value: projectRef}
		}
		for _, n := range resp.Project.ProjectMilestones.Nodes {
			milestones = append(milestones, milestoneFromNode(n))
			if limit > 0 && len(milestones) >= limit {
				return milestones, nil
			}
		}
		if !resp.Project.ProjectMilestones.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.Project.ProjectMilestones.PageInfo.EndCursor
	}
	return milestones, nil
}

// GetMilestone fetches one milestone by name (scoped to a project) or by
// opaque ID.
func (s *Service) GetMilestone(ctx context.Context, ref, projectRef string) (*Milestone, error) {
	projectID := ""
	if projectRef != "" {
		var err error
		if projectID, err = s.res.ResolveProject(ctx, projectRef); err != nil {
			return nil, err
		}
	}
	id, err := s.res.ResolveMilestone(ctx, ref, projectID)
	if err != nil {
		return nil, err
	}
	var resp struct {
		ProjectMilestone *milestoneNode `json:"projectMilestone"`
	}
	if err := s.client.Do(ctx, queryProjectMilestone, map[string]any{"id": id}, &resp); err != nil {
		if isEntityNotFound(err) {
			return nil, &NotFoundError{Field: "milestone", Value: ref}
		}
		return nil, err
	}
	if resp.ProjectMilestone == nil {
		return nil, &NotFoundError{Field: "milestone", Value: ref}
	}
	milestone := milestoneFromNode(*resp.ProjectMilestone)
	return &milestone, nil
}

// CreateMilestone creates a milestone on the referenced project.
func (s *Service) CreateMilestone(ctx context.Context, opts MilestoneCreateOptions) (*Milestone, error) {
	if opts.Name == "" {
		return nil, validationf("milestone name is required")
	}
	if opts.Project == "" {
		return nil, validationf("milestone project is required")
	}
	projectID, err := s.res.ResolveProject(ctx, opts.Project)
	if err != nil {
		return nil, err
	}
	input := Input{}
	input.Set("name", opts.Name)
	input.Set("projectId", projectID)
	input.SetNonEmpty("description", opts.Description)
	input.SetNonEmpty("targetDate", opts.TargetDate)
	var resp struct {
		ProjectMilestoneCreate milestonePayload `json:"projectMilestoneCreate"`
	}
	if err := s.client.Do(ctx, mutationMilestoneCreate, map[string]any{"input": input}, &resp); err != nil {
		return nil, remoteErr("create milestone", opts.Name, err)
	}
	if !resp.ProjectMilestoneCreate.Success || resp.ProjectMilestoneCreate.ProjectMilestone == nil {
		return nil, remoteErr("create milestone", opts.Name, nil)
	}
	milestone := milestoneFromNode(*resp.ProjectMilestoneCreate.ProjectMilestone)
	return &milestone, nil
}

// UpdateMilestone applies a partial update to a milestone referenced by
// name (scoped to a project) or opaque ID.
func (s *Service) UpdateMilestone(ctx context.Context, ref, projectRef string, opts MilestoneUpdateOptions) (*Milestone, error) {
	if opts.Name != nil && *opts.Name == "" {
		return nil, validationf("milestone name cannot be cleared")
	}
	projectID := ""
	if projectRef != "" {
		var err error
		if projectID, err = s.res.ResolveProject(ctx, projectRef); err != nil {
			return nil, err
		}
	}
	id, err := s.res.ResolveMilestone(ctx, ref, projectID)
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
	if opts.TargetDate != nil {
		if *opts.TargetDate == "" {
			input.Clear("targetDate")
		} else {
			input.Set("targetDate", *opts.TargetDate)
		}
	}
	if input.Empty() {
		return nil, validationf("nothing to update")
	}
	var resp struct {
		ProjectMilestoneUpdate milestonePayload `json:"projectMilestoneUpdate"`
	}
	vars := map[string]any{"id": id, "input": input}
	if err := s.client.Do(ctx, mutationMilestoneUpdate, vars, &resp); err != nil {
		return nil, remoteErr("update milestone", ref, err)
	}
	if !resp.ProjectMilestoneUpdate.Success || resp.ProjectMilestoneUpdate.ProjectMilestone == nil {
		return nil, remoteErr("update milestone", ref, nil)
	}
	milestone := milestoneFromNode(*resp.ProjectMilestoneUpdate.ProjectMilestone)
	return &milestone, nil
}

// DeleteMilestone deletes a milestone referenced by name (scoped to a
// project) or opaque ID.
func (s *Service) DeleteMilestone(ctx context.Context, ref, projectRef string) error {
	projectID := ""
	if projectRef != "" {
		var err error
		if projectID, err = s.res.ResolveProject(ctx, projectRef); err != nil {
			return err
		}
	}
	id, err := s.res.ResolveMilestone(ctx, ref, projectID)
	if err != nil {
		return err
	}
	var resp struct {
		ProjectMilestoneDelete struct {
			Success bool `json:"success"`
		} `json:"projectMilestoneDelete"`
	}
	if err := s.client.Do(ctx, mutationMilestoneDelete, map[string]any{"id": id}, &resp); err != nil {
		return remoteErr("delete milestone", ref, err)
	}
	if !resp.ProjectMilestoneDelete.Success {
		return remoteErr("delete milestone", ref, nil)
	}
	return nil
}
