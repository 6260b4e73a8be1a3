package cli

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskdeck/internal/client/client"
	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_UnknownAndUsage(t *testing.T) {
	h := newHarness(t, &fakeAPI{})
	h.signIn(t, regular())

	assert.Equal(t, "Unknown command: frobnicate (type 'help')\n", h.run(t, "frobnicate"))
	assert.Equal(t, "Usage: task <task-id>\n", h.run(t, "task"))
	assert.Equal(t, "Usage: member-del <project-id> <user-id>\n", h.run(t, "member-del p1"))
	assert.Empty(t, h.api.calls)
}

func TestDispatch_ExitAndQuit(t *testing.T) {
	h := newHarness(t, &fakeAPI{})
	assert.True(t, h.app.dispatch(context.Background(), "exit"))
	assert.True(t, h.app.dispatch(context.Background(), "  QUIT "))
	assert.False(t, h.app.dispatch(context.Background(), "   "))
}

func TestGuard_LoginRequired(t *testing.T) {
	h := newHarness(t, &fakeAPI{})

	for _, line := range []string{"projects", "tasks", "whoami", "search x", "users"} {
		assert.Equal(t, "Please log in first (redirected to /login).\n", h.run(t, line), line)
	}
	assert.Empty(t, h.api.calls)
}

func TestGuard_AdminRequired(t *testing.T) {
	h := newHarness(t, &fakeAPI{users: []models.User{*admin()}})
	h.signIn(t, regular())

	assert.Equal(t, "Administrators only (redirected to /dashboard).\n", h.run(t, "users"))
	assert.Empty(t, h.api.calls)

	h.store.SetUser(admin())
	out := h.run(t, "users")
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "ann@example.com")
	assert.Equal(t, []string{"ListUsers"}, h.api.calls)
}

func TestGuard_PasswordResetBlocksCommands(t *testing.T) {
	api := &fakeAPI{user: regular()}
	h := newHarness(t, api, "old-pass", "new-pass", "new-pass")
	h.signIn(t, regular())
	require.NoError(t, h.store.SetPasswordResetRequired(context.Background(), true))

	assert.Equal(t, "A password change is required: run 'passwd'.\n", h.run(t, "projects"))

	out := h.run(t, "passwd")
	assert.Contains(t, out, "Password changed.")
	assert.Equal(t, "old-pass", *api.lastUserUpdate.CurrentPassword)
	assert.Equal(t, "new-pass", *api.lastUserUpdate.NewPassword)
	assert.False(t, h.store.PasswordResetRequired())

	api.projects = []models.Project{}
	assert.Equal(t, "No projects.\n", h.run(t, "projects"))
}

func TestLogin(t *testing.T) {
	api := &fakeAPI{auth: &models.AuthResponse{AccessToken: "tok"}, user: regular()}
	h := newHarness(t, api, "ann@example.com", "secret")

	out := h.run(t, "login")
	assert.Contains(t, out, "Signed in as Ann")
	assert.Equal(t, []string{"Login ann@example.com", "CurrentUser"}, api.calls)
	assert.True(t, h.store.IsAuthenticated(context.Background()))
}

func TestLogin_Failure(t *testing.T) {
	api := &fakeAPI{authErr: &client.APIError{StatusCode: 401, Message: "Invalid credentials"}}
	h := newHarness(t, api, "ann@example.com", "wrong")

	out := h.run(t, "login")
	assert.Contains(t, out, "error: login error: Invalid credentials\n")
	assert.NotContains(t, out, "run 'login'")
	assert.False(t, h.store.IsAuthenticated(context.Background()))
}

func TestRegister_PasswordMismatch(t *testing.T) {
	api := &fakeAPI{}
	h := newHarness(t, api, "ann@example.com", "", "one", "two")

	out := h.run(t, "register")
	assert.Contains(t, out, "error: passwords do not match")
	assert.Empty(t, api.calls)
}

func TestLogout(t *testing.T) {
	h := newHarness(t, &fakeAPI{})
	h.signIn(t, regular())

	assert.Contains(t, h.run(t, "logout"), "Signed out.")
	assert.False(t, h.store.IsAuthenticated(context.Background()))
	assert.Nil(t, h.store.User())
}

func TestErrorsAreReported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unavailable", err: client.ErrUnavailable, want: "error: server unavailable\n"},
		{name: "not found", err: &client.APIError{StatusCode: 404, Message: "Project not found"}, want: "error: Project not found\n"},
		{name: "unauthorized", err: &client.APIError{StatusCode: 401, Message: "Not authenticated"}, want: "error: Not authenticated (run 'login' to sign in again)\n"},
		{name: "timeout", err: context.DeadlineExceeded, want: "error: request canceled or timed out\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, &fakeAPI{err: tt.err})
			h.signIn(t, regular())
			assert.Equal(t, tt.want, h.run(t, "project p1"))
		})
	}
}

func TestHelp_DependsOnSession(t *testing.T) {
	h := newHarness(t, &fakeAPI{})

	out := h.run(t, "help")
	assert.Contains(t, out, "login")
	assert.NotContains(t, out, "projects")

	h.signIn(t, regular())
	out = h.run(t, "help")
	assert.Contains(t, out, "task-add <project-id>")
	assert.NotContains(t, out, "register")
	assert.NotContains(t, out, "user-add")

	h.store.SetUser(admin())
	assert.Contains(t, h.run(t, "help"), "user-add")
}

func TestProjectAdd(t *testing.T) {
	api := &fakeAPI{}
	h := newHarness(t, api, "", "Apollo", "Moon", "2025-03-10", "2025-03-01", "2025-03-01", "2025-04-01")
	h.signIn(t, regular())

	out := h.run(t, "project-add")
	assert.Contains(t, out, "a value is required")
	assert.Contains(t, out, "the deadline cannot be before the start date")
	assert.Contains(t, out, `Project "Apollo" created (id p-new).`)

	assert.Equal(t, "Apollo", api.lastProject.Name)
	assert.Equal(t, "Moon", api.lastProject.Description)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), api.lastProject.StartDate.Time)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), api.lastProject.Deadline.Time)
}

func TestProjectDelete_Confirmation(t *testing.T) {
	api := &fakeAPI{}
	h := newHarness(t, api, "n", "yes")
	h.signIn(t, regular())

	h.run(t, "project-del p1")
	assert.Empty(t, api.calls)

	assert.Contains(t, h.run(t, "project-del p1"), "Project deleted.")
	assert.Equal(t, []string{"DeleteProject p1"}, api.calls)
}

func TestMemberAddAndRemove(t *testing.T) {
	api := &fakeAPI{}
	h := newHarness(t, api, "u2", "boss", "manager")
	h.signIn(t, regular())

	out := h.run(t, "member-add p1")
	assert.Contains(t, out, `invalid member role "boss"`)
	assert.Contains(t, out, "User u2 added as project_manager.")
	assert.Equal(t, models.MemberCreate{UserID: "u2", Role: models.MemberRoleManager}, api.lastMember)

	assert.Contains(t, h.run(t, "member-del p1 u2"), "Member removed.")
	assert.Equal(t, "RemoveMember p1 u2", api.calls[len(api.calls)-1])
}

func TestTasks_PrintsTree(t *testing.T) {
	parent := "t1"
	api := &fakeAPI{tasks: []models.Task{
		{ID: "t2", Name: "Child", ParentTaskID: &parent, Status: models.StatusPending},
		{ID: "t1", Name: "Parent", Status: models.StatusCompleted},
	}}
	h := newHarness(t, api)
	h.signIn(t, regular())

	out := h.run(t, "tasks p1")
	assert.Equal(t, []string{"ListTasks p1"}, api.calls)
	assert.Regexp(t, `(?m)^t1\s+Parent\s+completed`, out)
	assert.Regexp(t, `(?m)^  t2\s+Child\s+pending`, out)
}

func TestSubtaskAdd_UsesParentProject(t *testing.T) {
	api := &fakeAPI{task: &models.Task{ID: "t1", Name: "Parent", ProjectID: "p9"}}
	h := newHarness(t, api, "Child", "", "2025-01-01", "2025-01-02", "u7")
	h.signIn(t, regular())

	out := h.run(t, "subtask-add t1")
	assert.Contains(t, out, `Subtask "Child" created (id t-sub).`)
	assert.Equal(t, "t1", api.lastParent)
	assert.Equal(t, "p9", api.lastTask.ProjectID)
	require.NotNil(t, api.lastTask.AssignedToID)
	assert.Equal(t, "u7", *api.lastTask.AssignedToID)
}

func TestTaskEdit_SendsOnlyChanges(t *testing.T) {
	start := models.NewTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	end := models.NewTime(time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC))
	api := &fakeAPI{task: &models.Task{ID: "t1", Name: "Write", Status: models.StatusPending, StartDate: start, Deadline: end}}
	// keep name, description, dates; change status; keep assignee
	h := newHarness(t, api, "", "", "", "", "in progress", "")
	h.signIn(t, regular())

	out := h.run(t, "task-edit t1")
	assert.Contains(t, out, "Task updated.")
	require.NotNil(t, api.lastTaskUpdate.Status)
	assert.Equal(t, models.StatusInProgress, *api.lastTaskUpdate.Status)
	assert.Equal(t, models.TaskUpdate{Status: api.lastTaskUpdate.Status}, api.lastTaskUpdate)
}

func TestTaskEdit_NothingToChange(t *testing.T) {
	api := &fakeAPI{task: &models.Task{ID: "t1", Name: "Write", Status: models.StatusPending,
		StartDate: models.NewTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Deadline:  models.NewTime(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))}}
	h := newHarness(t, api, "", "", "", "", "", "")
	h.signIn(t, regular())

	assert.Contains(t, h.run(t, "task-edit t1"), "Nothing to change.")
	assert.Equal(t, []string{"GetTask t1"}, api.calls)
}

func TestCommentAdd_InlineText(t *testing.T) {
	api := &fakeAPI{}
	h := newHarness(t, api)
	h.signIn(t, regular())

	assert.Contains(t, h.run(t, "comment-add t1 looks   good to me"), "Comment added (id c-new).")
	assert.Equal(t, models.CommentCreate{TaskID: "t1", Content: "looks good to me"}, api.lastComment)
}

func TestSearch_JoinsArguments(t *testing.T) {
	api := &fakeAPI{results: []models.SearchResult{{ID: "s1", Content: "alpha beta"}}}
	h := newHarness(t, api)
	h.signIn(t, regular())

	out := h.run(t, "search alpha beta")
	assert.Equal(t, "alpha beta", api.lastQuery)
	assert.Contains(t, out, "s1")

	api.results = nil
	assert.Equal(t, "Nothing matches \"zzz\".\n", h.run(t, "search zzz"))
}

func TestSampleAdd_Prompted(t *testing.T) {
	api := &fakeAPI{}
	h := newHarness(t, api, "note to self")
	h.signIn(t, regular())

	assert.Contains(t, h.run(t, "sample-add"), "Sample added.")
	assert.Equal(t, []string{"AddSample note to self"}, api.calls)
}

func TestGantt(t *testing.T) {
	api := &fakeAPI{gantt: []models.GanttTask{{
		ID: "t1", Name: "Design", Progress: 1,
		Start: models.NewTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		End:   models.NewTime(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
	}}}
	h := newHarness(t, api)
	h.signIn(t, regular())

	out := h.run(t, "gantt p1")
	assert.Contains(t, out, "2025-01-01 .. 2025-01-05")
	assert.Contains(t, out, "Design |")
	assert.Contains(t, out, "100%")
}

func TestUserEdit(t *testing.T) {
	target := regular()
	api := &fakeAPI{user: target}
	// keep name, promote to admin, deactivate, no new password
	h := newHarness(t, api, "", "admin", "false", "")
	h.signIn(t, admin())

	out := h.run(t, "user-edit u1")
	assert.Contains(t, out, "User updated.")
	assert.Nil(t, api.lastUserUpdate.Name)
	require.NotNil(t, api.lastUserUpdate.Role)
	assert.Equal(t, models.RoleAdmin, *api.lastUserUpdate.Role)
	require.NotNil(t, api.lastUserUpdate.IsActive)
	assert.False(t, *api.lastUserUpdate.IsActive)
	assert.Nil(t, api.lastUserUpdate.Password)
}
