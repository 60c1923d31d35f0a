package linear

import "context"

// ListUsers lists workspace members.
func (s *Service) ListUsers(ctx context.Context, limit int) ([]User, error) {
	variables := map[string]any{
		"first":  pageSize(limit),
		"after":  nil,
		"filter": nil,
	}
	var users []User
	for {
		var resp struct {
			Users connection[userNode] `json:"users"`
		}
		if err := s.client.Do(ctx, queryUsers, variables, &resp); err != nil {
			return nil, err
		}
		for _, n := range resp.Users.Nodes {
			users = append(users, *userFromNode(&n))
			if limit > 0 && len(users) >= limit {
				return users, nil
			}
		}
		if !resp.Users.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.Users.PageInfo.EndCursor
	}
	return users, nil
}

// GetUser fetches one user by email, name, or opaque ID.
func (s *Service) GetUser(ctx context.Context, ref string) (*User, error) {
	id, err := s.res.ResolveUser(ctx, ref)
	if err != nil {
		return nil, err
	}
	var resp struct {
		User *userNode `json:"user"`
	}
	if err := s.client.Do(ctx, queryUser, map[string]any{"id": id}, &resp); err != nil {
		if isEntityNotFound(err) {
			return nil, &NotFoundError{Field: "user", Value: ref}
		}
		return nil, err
	}
	if resp.User == nil {
		return nil, &NotFoundError{Field: "user", Value: ref}
	}
	return userFromNode(resp.User), nil
}

// Me fetches the authenticated user.
func (s *Service) Me(ctx context.Context) (*User, error) {
	var resp struct {
		Viewer userNode `json:"viewer"`
	}
	if err := s.client.Do(ctx, queryViewer, nil, &resp); err != nil {
		return nil, err
	}
	user := userFromNode(&resp.Viewer)
	user.IsMe = true
	return user, nil
}
