package linear

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const milestoneID = "eeeeeeee-eeee-4eee-8eee-eeeeeeeeeeee"

func milestoneProjectHandlers(f *fakeAPI) {
	f.handle("Projects", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"projects": conn(map[string]any{"id": projectID, "name": "Mobile app"})}
	})
	f.handle("ProjectMilestones", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, projectID, vars["projectId"])
		return map[string]any{"project": map[string]any{
			"id": projectID,
			"projectMilestones": conn(
				map[string]any{"id": milestoneID, "name": "Beta", "project": map[string]any{"name": "Mobile app"}},
			),
		}}
	})
}

func TestListMilestonesRequiresProject(t *testing.T) {
	svc := newFakeAPI(t).newService()

	_, err := svc.ListMilestones(context.Background(), "", 0)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestListMilestones(t *testing.T) {
	f := newFakeAPI(t)
	milestoneProjectHandlers(f)

	milestones, err := f.newService().ListMilestones(context.Background(), "Mobile app", 0)
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	assert.Equal(t, "Beta", milestones[0].Name)
	assert.Equal(t, "Mobile app", milestones[0].ProjectName)
}

func TestGetMilestoneByNameInProject(t *testing.T) {
	f := newFakeAPI(t)
	milestoneProjectHandlers(f)
	f.handle("ProjectMilestone", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, milestoneID, vars["id"])
		return map[string]any{"projectMilestone": map[string]any{
			"id": milestoneID, "name": "Beta", "targetDate": "2026-10-01",
		}}
	})

	milestone, err := f.newService().GetMilestone(context.Background(), "beta", "Mobile app")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", milestone.TargetDate)
}

func TestCreateMilestone(t *testing.T) {
	f := newFakeAPI(t)
	milestoneProjectHandlers(f)
	f.handle("ProjectMilestoneCreate", func(t *testing.T, vars map[string]any) any {
		input := vars["input"].(map[string]any)
		assert.Equal(t, "Beta", input["name"])
		assert.Equal(t, projectID, input["projectId"])
		assert.NotContains(t, input, "description")
		return map[string]any{"projectMilestoneCreate": map[string]any{
			"success":          true,
			"projectMilestone": map[string]any{"id": milestoneID, "name": "Beta"},
		}}
	})

	milestone, err := f.newService().CreateMilestone(context.Background(), MilestoneCreateOptions{
		Name:    "Beta",
		Project: "Mobile app",
	})
	require.NoError(t, err)
	assert.Equal(t, milestoneID, milestone.ID)
}

func TestUpdateMilestoneClearsTargetDate(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("ProjectMilestoneUpdate", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, milestoneID, vars["id"])
		input := vars["input"].(map[string]any)
		date, present := input["targetDate"]
		assert.True(t, present)
		assert.Nil(t, date)
		return map[string]any{"projectMilestoneUpdate": map[string]any{
			"success":          true,
			"projectMilestone": map[string]any{"id": milestoneID, "name": "Beta"},
		}}
	})

	_, err := f.newService().UpdateMilestone(context.Background(), milestoneID, "", MilestoneUpdateOptions{
		TargetDate: strPtr(""),
	})
	require.NoError(t, err)
}
