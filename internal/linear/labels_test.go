package linear

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLabelsTeamFilterIncludesWorkspace(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Teams", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"teams": conn(map[string]any{"id": teamEngID, "key": "ENG", "name": "Engineering"})}
	})
	f.handle("Labels", func(t *testing.T, vars map[string]any) any {
		ors, ok := filterField(vars, "or").([]any)
		require.True(t, ok, "a team listing filters team-or-workspace")
		require.Len(t, ors, 2)
		return map[string]any{"issueLabels": conn(
			map[string]any{"id": labelBugID, "name": "bug", "team": map[string]any{"id": teamEngID, "key": "ENG"}},
			map[string]any{"id": labelWideID, "name": "urgent"},
		)}
	})

	labels, err := f.newService().ListLabels(context.Background(), LabelListOptions{Team: "ENG"})
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "ENG", labels[0].TeamKey)
	assert.Empty(t, labels[1].TeamKey)
}

func TestCreateLabelWorkspaceWide(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("IssueLabelCreate", func(t *testing.T, vars map[string]any) any {
		input := vars["input"].(map[string]any)
		assert.Equal(t, "bug", input["name"])
		assert.NotContains(t, input, "teamId")
		return map[string]any{"issueLabelCreate": map[string]any{
			"success":    true,
			"issueLabel": map[string]any{"id": labelWideID, "name": "bug"},
		}}
	})

	label, err := f.newService().CreateLabel(context.Background(), LabelCreateOptions{Name: "bug"})
	require.NoError(t, err)
	assert.Equal(t, labelWideID, label.ID)
}

func TestUpdateLabelClearsDescription(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("IssueLabelUpdate", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, labelBugID, vars["id"])
		input := vars["input"].(map[string]any)
		desc, present := input["description"]
		assert.True(t, present)
		assert.Nil(t, desc)
		return map[string]any{"issueLabelUpdate": map[string]any{
			"success":    true,
			"issueLabel": map[string]any{"id": labelBugID, "name": "bug"},
		}}
	})

	_, err := f.newService().UpdateLabel(context.Background(), labelBugID, "", LabelUpdateOptions{
		Description: strPtr(""),
	})
	require.NoError(t, err)
}

func TestDeleteLabelByName(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Labels", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"issueLabels": conn(map[string]any{"id": labelBugID, "name": "bug"})}
	})
	f.handle("IssueLabelDelete", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, labelBugID, vars["id"])
		return map[string]any{"issueLabelDelete": map[string]any{"success": true}}
	})

	require.NoError(t, f.newService().DeleteLabel(context.Background(), "bug", ""))
}
