package linear

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const issueID = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"

func issueNodePayload() map[string]any {
	return map[string]any{
		"id":         issueID,
		"identifier": "ENG-1",
		"title":      "Fix login redirect",
		"team":       map[string]any{"id": teamEngID, "key": "ENG", "name": "Engineering"},
		"labels":     conn(map[string]any{"id": labelBugID, "name": "bug"}),
	}
}

func TestCreateIssueValidation(t *testing.T) {
	svc := newFakeAPI(t).newService()
	ctx := context.Background()

	tests := []struct {
		name string
		opts IssueCreateOptions
		want string
	}{
		{
			name: "missing title",
			opts: IssueCreateOptions{Team: "ENG"},
			want: "title is required",
		},
		{
			name: "missing team",
			opts: IssueCreateOptions{Title: "Something"},
			want: "team is required",
		},
		{
			name: "priority out of range",
			opts: IssueCreateOptions{Team: "ENG", Title: "Something", Priority: intPtr(9)},
			want: "priority must be between 0 and 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateIssue(ctx, tt.opts)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCreateIssueSendsOnlySetFields(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Teams", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"teams": conn(map[string]any{"id": teamEngID, "key": "ENG", "name": "Engineering"})}
	})
	f.handle("IssueCreate", func(t *testing.T, vars map[string]any) any {
		input, ok := vars["input"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, teamEngID, input["teamId"])
		assert.Equal(t, "Fix login redirect", input["title"])
		assert.Len(t, input, 2, "unset optionals never reach the wire")
		return map[string]any{"issueCreate": map[string]any{
			"success": true,
			"issue":   issueNodePayload(),
		}}
	})

	issue, err := f.newService().CreateIssue(context.Background(), IssueCreateOptions{
		Team:  "ENG",
		Title: "Fix login redirect",
	})
	require.NoError(t, err)
	assert.Equal(t, "ENG-1", issue.Identifier)
	assert.Equal(t, "ENG", issue.TeamKey)
}

func TestUpdateIssueTriState(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issue", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issue": issueNodePayload()}
	})
	f.handle("IssueUpdate", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, issueID, vars["id"])
		input, ok := vars["input"].(map[string]any)
		require.True(t, ok)

		// The title changes, the description clears with an explicit
		// null, and everything untouched stays off the wire.
		assert.Equal(t, "New title", input["title"])
		desc, present := input["description"]
		assert.True(t, present)
		assert.Nil(t, desc)
		assert.Len(t, input, 2)

		return map[string]any{"issueUpdate": map[string]any{
			"success": true,
			"issue":   issueNodePayload(),
		}}
	})

	_, err := f.newService().UpdateIssue(context.Background(), "ENG-1", IssueUpdateOptions{
		Title:       strPtr("New title"),
		Description: strPtr(""),
	})
	require.NoError(t, err)
}

func TestUpdateIssueLabelModeAdding(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issue", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issue": issueNodePayload()}
	})
	f.handle("Labels", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issueLabels": conn(
			map[string]any{"id": labelWideID, "name": "urgent"},
		)}
	})
	f.handle("IssueUpdate", func(t *testing.T, vars map[string]any) any {
		input := vars["input"].(map[string]any)
		assert.Equal(t, []any{labelBugID, labelWideID}, input["labelIds"], "adding keeps existing labels first")
		return map[string]any{"issueUpdate": map[string]any{
			"success": true,
			"issue":   issueNodePayload(),
		}}
	})

	_, err := f.newService().UpdateIssue(context.Background(), "ENG-1", IssueUpdateOptions{
		Labels:    []string{"urgent"},
		LabelMode: LabelModeAdding,
	})
	require.NoError(t, err)
}

func TestUpdateIssueLabelModeOverwriting(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issue", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issue": issueNodePayload()}
	})
	f.handle("Labels", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issueLabels": conn(
			map[string]any{"id": labelWideID, "name": "urgent"},
		)}
	})
	f.handle("IssueUpdate", func(t *testing.T, vars map[string]any) any {
		input := vars["input"].(map[string]any)
		assert.Equal(t, []any{labelWideID}, input["labelIds"], "overwriting discards existing labels")
		return map[string]any{"issueUpdate": map[string]any{
			"success": true,
			"issue":   issueNodePayload(),
		}}
	})

	_, err := f.newService().UpdateIssue(context.Background(), "ENG-1", IssueUpdateOptions{
		Labels:    []string{"urgent"},
		LabelMode: LabelModeOverwriting,
	})
	require.NoError(t, err)
}

func TestUpdateIssueOverwriteLabelsEmptyClears(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issue", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issue": issueNodePayload()}
	})
	f.handle("IssueUpdate", func(t *testing.T, vars map[string]any) any {
		input := vars["input"].(map[string]any)
		labelIDs, present := input["labelIds"]
		require.True(t, present)
		assert.Equal(t, []any{}, labelIDs, "a clear travels as an empty array, not null")
		return map[string]any{"issueUpdate": map[string]any{
			"success": true,
			"issue":   issueNodePayload(),
		}}
	})

	_, err := f.newService().UpdateIssue(context.Background(), "ENG-1", IssueUpdateOptions{
		Labels:    []string{},
		LabelMode: LabelModeOverwriting,
	})
	require.NoError(t, err)
}

func TestUpdateIssueNothingToUpdate(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issue", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issue": issueNodePayload()}
	})

	_, err := f.newService().UpdateIssue(context.Background(), "ENG-1", IssueUpdateOptions{})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestGetIssueNotFound(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issue", func(t *testing.T, vars map[string]any) any {
		return errorResponse{Message: "Entity not found: Issue - Could not find referenced Issue."}
	})

	_, err := f.newService().GetIssue(context.Background(), "ENG-999")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "issue", notFound.Field)
	assert.Equal(t, "ENG-999", notFound.Value)
}

func TestListIssuesPaginates(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issues", func(t *testing.T, vars map[string]any) any {
		if vars["after"] == nil {
			return map[string]any{"issues": map[string]any{
				"nodes":    []any{map[string]any{"id": issueID, "identifier": "ENG-1", "title": "First"}},
				"pageInfo": map[string]any{"hasNextPage": true, "endCursor": "cursor-1"},
			}}
		}
		assert.Equal(t, "cursor-1", vars["after"])
		return map[string]any{"issues": conn(map[string]any{"id": issueID, "identifier": "ENG-2", "title": "Second"})}
	})

	issues, err := f.newService().ListIssues(context.Background(), IssueListOptions{})
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "ENG-1", issues[0].Identifier)
	assert.Equal(t, "ENG-2", issues[1].Identifier)
}

func TestListIssuesHonorsLimit(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issues", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, float64(1), vars["first"], "the page size follows the limit")
		return map[string]any{"issues": map[string]any{
			"nodes":    []any{map[string]any{"id": issueID, "identifier": "ENG-1", "title": "First"}},
			"pageInfo": map[string]any{"hasNextPage": true, "endCursor": "cursor-1"},
		}}
	})

	issues, err := f.newService().ListIssues(context.Background(), IssueListOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, issues, 1)
	assert.Equal(t, 1, f.callCount("Issues"), "the limit stops pagination")
}

func TestDeleteIssue(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issue", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issue": map[string]any{"id": issueID}}
	})
	f.handle("IssueDelete", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, issueID, vars["id"])
		return map[string]any{"issueDelete": map[string]any{"success": true}}
	})

	require.NoError(t, f.newService().DeleteIssue(context.Background(), "ENG-1"))
}

func TestIssueCreateDeleteRoundTrip(t *testing.T) {
	f := newFakeAPI(t)
	var nodes []any
	f.handle("Teams", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"teams": conn(map[string]any{"id": teamEngID, "key": "ENG", "name": "Engineering"})}
	})
	f.handle("IssueCreate", func(t *testing.T, vars map[string]any) any {
		node := map[string]any{
			"id":         issueID,
			"identifier": "ENG-9",
			"title":      vars["input"].(map[string]any)["title"],
		}
		nodes = append(nodes, node)
		return map[string]any{"issueCreate": map[string]any{"success": true, "issue": node}}
	})
	f.handle("Issues", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issues": conn(nodes...)}
	})
	f.handle("Issue", func(t *testing.T, vars map[string]any) any {
		if len(nodes) == 0 {
			return errorResponse{Message: "Entity not found: Issue"}
		}
		return map[string]any{"issue": nodes[0]}
	})
	f.handle("IssueDelete", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, issueID, vars["id"])
		nodes = nil
		return map[string]any{"issueDelete": map[string]any{"success": true}}
	})

	svc := f.newService()
	ctx := context.Background()

	created, err := svc.CreateIssue(ctx, IssueCreateOptions{Team: "ENG", Title: "Ephemeral"})
	require.NoError(t, err)

	issues, err := svc.ListIssues(ctx, IssueListOptions{})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, created.Identifier, issues[0].Identifier)

	require.NoError(t, svc.DeleteIssue(ctx, "ENG-9"))

	issues, err = svc.ListIssues(ctx, IssueListOptions{})
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestDeleteIssueReportedFailure(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Issue", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issue": map[string]any{"id": issueID}}
	})
	f.handle("IssueDelete", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issueDelete": map[string]any{"success": false}}
	})

	err := f.newService().DeleteIssue(context.Background(), "ENG-1")

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "delete issue", remote.Operation)
	assert.Equal(t, "ENG-1", remote.Identifier)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
