package linear

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectID = "88888888-8888-4888-8888-888888888888"

func TestCreateProjectResolvesTeamsAndLead(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Teams", func(t *testing.T, vars map[string]any) any {
		switch filterField(vars, "key", "eqIgnoreCase") {
		case "ENG":
			return map[string]any{"teams": conn(map[string]any{"id": teamEngID, "key": "ENG", "name": "Engineering"})}
		case "OPS":
			return map[string]any{"teams": conn(map[string]any{"id": teamOpsID, "key": "OPS", "name": "Operations"})}
		}
		return map[string]any{"teams": conn()}
	})
	f.handle("Viewer", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"viewer": map[string]any{"id": userSamID, "name": "Sam Doe"}}
	})
	f.handle("ProjectCreate", func(t *testing.T, vars map[string]any) any {
		input := vars["input"].(map[string]any)
		assert.Equal(t, "Mobile app", input["name"])
		assert.Equal(t, []any{teamEngID, teamOpsID}, input["teamIds"])
		assert.Equal(t, userSamID, input["leadId"])
		return map[string]any{"projectCreate": map[string]any{
			"success": true,
			"project": map[string]any{"id": projectID, "name": "Mobile app"},
		}}
	})

	project, err := f.newService().CreateProject(context.Background(), ProjectCreateOptions{
		Name:  "Mobile app",
		Teams: []string{"ENG", "OPS"},
		Lead:  "me",
	})
	require.NoError(t, err)
	assert.Equal(t, projectID, project.ID)
}

func TestCreateProjectValidation(t *testing.T) {
	svc := newFakeAPI(t).newService()
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, ProjectCreateOptions{Teams: []string{"ENG"}})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = svc.CreateProject(ctx, ProjectCreateOptions{Name: "Mobile app"})
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, err.Error(), "at least one team")
}

func TestUpdateProjectClearsLead(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("ProjectUpdate", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, projectID, vars["id"])
		input := vars["input"].(map[string]any)
		lead, present := input["leadId"]
		assert.True(t, present)
		assert.Nil(t, lead)
		return map[string]any{"projectUpdate": map[string]any{
			"success": true,
			"project": map[string]any{"id": projectID, "name": "Mobile app"},
		}}
	})

	_, err := f.newService().UpdateProject(context.Background(), projectID, ProjectUpdateOptions{
		Lead: strPtr(""),
	})
	require.NoError(t, err)
}

func TestDeleteProjectByName(t *testing.T) {
	f := newFakeAPI(t)
	f.handle("Projects", func(t *testing.T, vars map[string]any) any {
		return map[string]any{"projects": conn(map[string]any{"id": projectID, "name": "Mobile app"})}
	})
	f.handle("ProjectDelete", func(t *testing.T, vars map[string]any) any {
		assert.Equal(t, projectID, vars["id"])
		return map[string]any{"projectDelete": map[string]any{"success": true}}
	})

	require.NoError(t, f.newService().DeleteProject(context.Background(), "Mobile app"))
}
