package linear

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/linctl-dev/linctl/internal/logger"
)

// Resolver converts human-readable references (team keys, project names,
// label names, issue identifiers, user emails) into the API's opaque UUIDs.
// References already in opaque shape are used as-is without a lookup.
//
// Every resolution is an explicit ordered list of strategies tried in
// sequence until one yields an unambiguous result. Zero matches across all
// strategies is a NotFoundError; multiple matches that no tie-break rule
// separates is an AmbiguousError listing every candidate.
type Resolver struct {
	client *Client
}

// NewResolver creates a resolver backed by the given client.
func NewResolver(client *Client) *Resolver {
	return &Resolver{client: client}
}

// match is one candidate produced by a strategy. rank orders candidates for
// tie-breaking: a strictly lowest rank wins, equal ranks stay ambiguous.
type match struct {
	id    string
	label string
	rank  int
}

// strategy is one step of a resolution chain.
type strategy struct {
	name string
	run  func(ctx context.Context) ([]match, error)
}

func (r *Resolver) resolve(ctx context.Context, field, value string, strategies []strategy) (string, error) {
	log := logger.GetLogger().WithFields(map[string]interface{}{
		"field": field,
		"value": value,
	})
	for _, s := range strategies {
		matches, err := s.run(ctx)
		if err != nil {
			return "", err
		}
		switch len(matches) {
		case 0:
			continue
		case 1:
			log.Debugf("resolved via %s to %s", s.name, matches[0].id)
			return matches[0].id, nil
		}
		if best, ok := tieBreak(matches); ok {
			log.Debugf("resolved via %s tie-break to %s", s.name, best.id)
			return best.id, nil
		}
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.label
		}
		sort.Strings(candidates)
		return "", &AmbiguousError{Field: field, Value: value, Candidates: candidates}
	}
	return "", &NotFoundError{Field: field, Value: value}
}

// tieBreak returns the candidate with the strictly lowest rank, if any.
func tieBreak(matches []match) (match, bool) {
	best := matches[0]
	unique := true
	for _, m := range matches[1:] {
		switch {
		case m.rank < best.rank:
			best = m
			unique = true
		case m.rank == best.rank:
			unique = false
		}
	}
	return best, unique
}

// ResolveTeam resolves a team reference: opaque ID, key, or name.
func (r *Resolver) ResolveTeam(ctx context.Context, ref string) (string, error) {
	if IsOpaque(ref) {
		return ref, nil
	}
	byFilter := func(filter map[string]any) func(context.Context) ([]match, error) {
		return func(ctx context.Context) ([]match, error) {
			var resp struct {
				Teams connection[teamNode] `json:"teams"`
			}
			vars := map[string]any{"first": 50, "filter": filter}
			if err := r.client.Do(ctx, queryTeams, vars, &resp); err != nil {
				return nil, err
			}
			matches := make([]match, 0, len(resp.Teams.Nodes))
			for _, n := range resp.Teams.Nodes {
				matches = append(matches, match{id: n.ID, label: n.Key + " (" + n.Name + ")"})
			}
			return matches, nil
		}
	}
	return r.resolve(ctx, "team", ref, []strategy{
		{name: "team by key", run: byFilter(map[string]any{"key": map[string]any{"eqIgnoreCase": ref}})},
		{name: "team by name", run: byFilter(map[string]any{"name": map[string]any{"eqIgnoreCase": ref}})},
	})
}

// ResolveProject resolves a project reference: opaque ID or name. Exact
// name match is tried before substring match.
func (r *Resolver) ResolveProject(ctx context.Context, ref string) (string, error) {
	if IsOpaque(ref) {
		return ref, nil
	}
	byFilter := func(filter map[string]any) func(context.Context) ([]match, error) {
		return func(ctx context.Context) ([]match, error) {
			var resp struct {
				Projects connection[projectNode] `json:"projects"`
			}
			vars := map[string]any{"first": 50, "filter": filter}
			if err := r.client.Do(ctx, queryProjects, vars, &resp); err != nil {
				return nil, err
			}
			matches := make([]match, 0, len(resp.Projects.Nodes))
			for _, n := range resp.Projects.Nodes {
				matches = append(matches, match{id: n.ID, label: n.Name})
			}
			return matches, nil
		}
	}
	return r.resolve(ctx, "project", ref, []strategy{
		{name: "project by name", run: byFilter(map[string]any{"name": map[string]any{"eqIgnoreCase": ref}})},
		{name: "project by name substring", run: byFilter(map[string]any{"name": map[string]any{"containsIgnoreCase": ref}})},
	})
}

// ResolveUser resolves a user reference: opaque ID, "me", email, or name.
func (r *Resolver) ResolveUser(ctx context.Context, ref string) (string, error) {
	if IsOpaque(ref) {
		return ref, nil
	}
	if strings.EqualFold(ref, "me") || ref == "@me" {
		return r.Viewer(ctx)
	}
	byFilter := func(filter map[string]any) func(context.Context) ([]match, error) {
		return func(ctx context.Context) ([]match, error) {
			var resp struct {
				Users connection[userNode] `json:"users"`
			}
			vars := map[string]any{"first": 50, "filter": filter}
			if err := r.client.Do(ctx, queryUsers, vars, &resp); err != nil {
				return nil, err
			}
			matches := make([]match, 0, len(resp.Users.Nodes))
			for _, n := range resp.Users.Nodes {
				label := n.Name
				if n.Email != "" {
					label += " <" + n.Email + ">"
				}
				matches = append(matches, match{id: n.ID, label: label})
			}
			return matches, nil
		}
	}
	return r.resolve(ctx, "user", ref, []strategy{
		{name: "user by email", run: byFilter(map[string]any{"email": map[string]any{"eqIgnoreCase": ref}})},
		{name: "user by display name", run: byFilter(map[string]any{"displayName": map[string]any{"eqIgnoreCase": ref}})},
		{name: "user by name", run: byFilter(map[string]any{"name": map[string]any{"containsIgnoreCase": ref}})},
	})
}

// Viewer returns the authenticated user's ID.
func (r *Resolver) Viewer(ctx context.Context) (string, error) {
	var resp struct {
		Viewer userNode `json:"viewer"`
	}
	if err := r.client.Do(ctx, queryViewer, nil, &resp); err != nil {
		return "", err
	}
	return resp.Viewer.ID, nil
}

// ResolveIssue resolves an issue reference ("ABC-123" or opaque ID) to the
// issue's UUID. The API accepts either form on its issue query, so a single
// lookup suffices for identifiers.
func (r *Resolver) ResolveIssue(ctx context.Context, ref string) (string, error) {
	if IsOpaque(ref) {
		return ref, nil
	}
	var resp struct {
		Issue *struct {
			ID string `json:"id"`
		} `json:"issue"`
	}
	if err := r.client.Do(ctx, queryIssue, map[string]any{"id": ref}, &resp); err != nil {
		// The API answers a bad identifier with an entity-not-found
		// GraphQL error rather than a null issue.
		if isEntityNotFound(err) {
			return "", &NotFoundError{Field: "issue", Value: ref}
		}
		return "", err
	}
	if resp.Issue == nil || resp.Issue.ID == "" {
		return "", &NotFoundError{Field: "issue", Value: ref}
	}
	return resp.Issue.ID, nil
}

// ResolveState resolves a workflow state name within a team.
func (r *Resolver) ResolveState(ctx context.Context, ref, teamID string) (string, error) {
	if IsOpaque(ref) {
		return ref, nil
	}
	byComparator := func(comparator string) func(context.Context) ([]match, error) {
		return func(ctx context.Context) ([]match, error) {
			filter := map[string]any{
				"name": map[string]any{comparator: ref},
			}
			if teamID != "" {
				filter["team"] = map[string]any{"id": map[string]any{"eq": teamID}}
			}
			var resp struct {
				WorkflowStates connection[State] `json:"workflowStates"`
			}
			if err := r.client.Do(ctx, queryWorkflowStates, map[string]any{"filter": filter}, &resp); err != nil {
				return nil, err
			}
			matches := make([]match, 0, len(resp.WorkflowStates.Nodes))
			for _, n := range resp.WorkflowStates.Nodes {
				matches = append(matches, match{id: n.ID, label: n.Name + " (" + n.Type + ")"})
			}
			return matches, nil
		}
	}
	return r.resolve(ctx, "state", ref, []strategy{
		{name: "state by name", run: byComparator("eqIgnoreCase")},
		{name: "state by name prefix", run: byComparator("startsWithIgnoreCase")},
	})
}

// ResolveMilestone resolves a project milestone name within a project.
func (r *Resolver) ResolveMilestone(ctx context.Context, ref, projectID string) (string, error) {
	if IsOpaque(ref) {
		return ref, nil
	}
	if projectID == "" {
		return "", validationf("resolving milestone %q requires a project", ref)
	}
	return r.resolve(ctx, "milestone", ref, []strategy{
		{name: "milestone by name", run: func(ctx context.Context) ([]match, error) {
			var resp struct {
				Project *struct {
					ProjectMilestones connection[milestoneNode] `json:"projectMilestones"`
				} `json:"project"`
			}
			vars := map[string]any{"projectId": projectID, "first": 100}
			if err := r.client.Do(ctx, queryProjectMilestones, vars, &resp); err != nil {
				return nil, err
			}
			if resp.Project == nil {
				return nil, nil
			}
			var matches []match
			for _, n := range resp.Project.ProjectMilestones.Nodes {
				if strings.EqualFold(n.Name, ref) {
					matches = append(matches, match{id: n.ID, label: n.Name})
				}
			}
			return matches, nil
		}},
	})
}

// Cycle rank for tie-breaking: active beats next beats previous beats
// anything else. Computed from the cycle's window since the API does not
// return liveness flags on the node itself.
func cycleRank(n cycleNode, now time.Time) int {
	starts, errS := time.Parse(time.RFC3339, n.StartsAt)
	ends, errE := time.Parse(time.RFC3339, n.EndsAt)
	if errS != nil || errE != nil {
		return 3
	}
	switch {
	case !now.Before(starts) && now.Before(ends):
		return 0 // active
	case now.Before(starts):
		return 1 // next
	default:
		return 2 // previous
	}
}

// ResolveCycle resolves a cycle reference: opaque ID, cycle number, or
// name. Lookups fall back from team-scoped to global, preferring
// active > next > previous on ties.
func (r *Resolver) ResolveCycle(ctx context.Context, ref, teamID string) (string, error) {
	if IsOpaque(ref) {
		return ref, nil
	}
	now := time.Now()
	byFilter := func(filter map[string]any) func(context.Context) ([]match, error) {
		return func(ctx context.Context) ([]match, error) {
			var resp struct {
				Cycles connection[cycleNode] `json:"cycles"`
			}
			vars := map[string]any{"first": 50, "filter": filter}
			if err := r.client.Do(ctx, queryCycles, vars, &resp); err != nil {
				return nil, err
			}
			matches := make([]match, 0, len(resp.Cycles.Nodes))
			for _, n := range resp.Cycles.Nodes {
				label := "cycle " + strconv.Itoa(int(n.Number))
				if n.Name != "" {
					label += " (" + n.Name + ")"
				}
				if n.Team != nil {
					label += " [" + n.Team.Key + "]"
				}
				matches = append(matches, match{id: n.ID, label: label, rank: cycleRank(n, now)})
			}
			return matches, nil
		}
	}

	var nameFilter map[string]any
	if number, err := strconv.Atoi(ref); err == nil {
		nameFilter = map[string]any{"number": map[string]any{"eq": number}}
	} else {
		nameFilter = map[string]any{"name": map[string]any{"eqIgnoreCase": ref}}
	}

	var strategies []strategy
	if teamID != "" {
		scoped := map[string]any{"team": map[string]any{"id": map[string]any{"eq": teamID}}}
		for k, v := range nameFilter {
			scoped[k] = v
		}
		strategies = append(strategies, strategy{name: "cycle in team", run: byFilter(scoped)})
	}
	strategies = append(strategies, strategy{name: "cycle global", run: byFilter(nameFilter)})
	return r.resolve(ctx, "cycle", ref, strategies)
}

// ResolveLabels resolves a set of label names in one round trip. When
// teamID is known, labels scoped to other teams are ignored and a
// team-scoped label beats a workspace label of the same name.
func (r *Resolver) ResolveLabels(ctx context.Context, names []string, teamID string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	lookup := make([]string, 0, len(names))
	resolved := make(map[string]string, len(names))
	for _, name := range names {
		if IsOpaque(name) {
			resolved[name] = name
			continue
		}
		lookup = append(lookup, name)
	}
	if len(lookup) > 0 {
		ors := make([]map[string]any, len(lookup))
		for i, name := range lookup {
			ors[i] = map[string]any{"name": map[string]any{"eqIgnoreCase": name}}
		}
		var resp struct {
			IssueLabels connection[labelNode] `json:"issueLabels"`
		}
		vars := map[string]any{"first": 100, "filter": map[string]any{"or": ors}}
		if err := r.client.Do(ctx, queryLabels, vars, &resp); err != nil {
			return nil, err
		}
		for _, name := range lookup {
			var matches []match
			for _, n := range resp.IssueLabels.Nodes {
				if !strings.EqualFold(n.Name, name) {
					continue
				}
				rank := 1 // workspace label
				if n.Team != nil {
					if teamID != "" && n.Team.ID != teamID {
						continue
					}
					rank = 0 // team label wins over workspace label
				}
				label := n.Name
				if n.Team != nil {
					label += " [" + n.Team.Key + "]"
				}
				matches = append(matches, match{id: n.ID, label: label, rank: rank})
			}
			switch len(matches) {
			case 0:
				return nil, &NotFoundError{Field: "label", Value: name}
			case 1:
				resolved[name] = matches[0].id
			default:
				if best, ok := tieBreak(matches); ok {
					resolved[name] = best.id
					continue
				}
				candidates := make([]string, len(matches))
				for i, m := range matches {
					candidates[i] = m.label
				}
				sort.Strings(candidates)
				return nil, &AmbiguousError{Field: "label", Value: name, Candidates: candidates}
			}
		}
	}
	ids := make([]string, len(names))
	for i, name := range names {
		ids[i] = resolved[name]
	}
	return ids, nil
}

// IssueRefs is the sparse set of human references attached to a single
// issue create or update.
type IssueRefs struct {
	Team      string
	Project   string
	Assignee  string
	State     string
	Parent    string
	Cycle     string
	Milestone string
	Labels    []string
}

// ResolvedIssueRefs holds the opaque IDs for whichever references were
// supplied; unset references stay empty.
type ResolvedIssueRefs struct {
	TeamID      string
	ProjectID   string
	AssigneeID  string
	StateID     string
	ParentID    string
	CycleID     string
	MilestoneID string
	LabelIDs    []string
}

// ResolveIssueRefs batches the independent lookups of one request. The team
// resolves first because it scopes states, cycles, and labels; everything
// else runs concurrently. Milestones chain behind their project.
func (r *Resolver) ResolveIssueRefs(ctx context.Context, refs IssueRefs) (*ResolvedIssueRefs, error) {
	out := &ResolvedIssueRefs{}

	if refs.Team != "" {
		teamID, err := r.ResolveTeam(ctx, refs.Team)
		if err != nil {
			return nil, err
		}
		out.TeamID = teamID
	}

	g, gctx := errgroup.WithContext(ctx)
	if refs.Project != "" || refs.Milestone != "" {
		g.Go(func() error {
			if refs.Project != "" {
				projectID, err := r.ResolveProject(gctx, refs.Project)
				if err != nil {
					return err
				}
				out.ProjectID = projectID
			}
			if refs.Milestone != "" {
				milestoneID, err := r.ResolveMilestone(gctx, refs.Milestone, out.ProjectID)
				if err != nil {
					return err
				}
				out.MilestoneID = milestoneID
			}
			return nil
		})
	}
	if refs.Assignee != "" {
		g.Go(func() error {
			assigneeID, err := r.ResolveUser(gctx, refs.Assignee)
			if err != nil {
				return err
			}
			out.AssigneeID = assigneeID
			return nil
		})
	}
	if refs.State != "" {
		g.Go(func() error {
			stateID, err := r.ResolveState(gctx, refs.State, out.TeamID)
			if err != nil {
				return err
			}
			out.StateID = stateID
			return nil
		})
	}
	if refs.Parent != "" {
		g.Go(func() error {
			parentID, err := r.ResolveIssue(gctx, refs.Parent)
			if err != nil {
				return err
			}
			out.ParentID = parentID
			return nil
		})
	}
	if refs.Cycle != "" {
		g.Go(func() error {
			cycleID, err := r.ResolveCycle(gctx, refs.Cycle, out.TeamID)
			if err != nil {
				return err
			}
			out.CycleID = cycleID
			return nil
		})
	}
	if len(refs.Labels) > 0 {
		g.Go(func() error {
			labelIDs, err := r.ResolveLabels(gctx, refs.Labels, out.TeamID)
			if err != nil {
				return err
			}
			out.LabelIDs = labelIDs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
