package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/taskdeck/internal/client/client"
	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/dmitrijs2005/taskdeck/internal/client/session"
	"github.com/dmitrijs2005/taskdeck/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements the client.Client methods exercised by the CLI tests.
// Any other call panics through the nil embedded interface.
type fakeAPI struct {
	client.Client

	calls []string

	auth     *models.AuthResponse
	authErr  error
	user     *models.User
	userErr  error
	users    []models.User
	projects []models.Project
	project  *models.Project
	tasks    []models.Task
	task     *models.Task
	gantt    []models.GanttTask
	results  []models.SearchResult
	err      error

	lastUserUpdate models.UserUpdate
	lastTaskUpdate models.TaskUpdate
	lastTask       models.TaskCreate
	lastParent     string
	lastProject    models.ProjectCreate
	lastQuery      string
	lastComment    models.CommentCreate
	lastMember     models.MemberCreate
}

func (f *fakeAPI) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeAPI) Close() error { f.record("Close"); return nil }

func (f *fakeAPI) Login(_ context.Context, username, _ string) (*models.AuthResponse, error) {
	f.record("Login " + username)
	return f.auth, f.authErr
}

func (f *fakeAPI) Register(_ context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	f.record("Register " + data.Username)
	return f.auth, f.authErr
}

func (f *fakeAPI) CurrentUser(context.Context) (*models.User, error) {
	f.record("CurrentUser")
	if f.userErr != nil {
		return nil, f.userErr
	}
	u := *f.user
	return &u, nil
}

func (f *fakeAPI) UpdateCurrentUser(_ context.Context, upd models.UserUpdate) (*models.User, error) {
	f.record("UpdateCurrentUser")
	f.lastUserUpdate = upd
	u := *f.user
	if upd.Name != nil {
		u.Name = upd.Name
	}
	return &u, f.err
}

func (f *fakeAPI) ListUsers(context.Context) ([]models.User, error) {
	f.record("ListUsers")
	return f.users, f.err
}

func (f *fakeAPI) GetUser(_ context.Context, id string) (*models.User, error) {
	f.record("GetUser " + id)
	u := *f.user
	return &u, f.err
}

func (f *fakeAPI) UpdateUser(_ context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	f.record("UpdateUser " + id)
	f.lastUserUpdate = upd
	return f.user, f.err
}

func (f *fakeAPI) ListProjects(context.Context) ([]models.Project, error) {
	f.record("ListProjects")
	return f.projects, f.err
}

func (f *fakeAPI) CreateProject(_ context.Context, in models.ProjectCreate) (*models.Project, error) {
	f.record("CreateProject")
	f.lastProject = in
	return &models.Project{ID: "p-new", Name: in.Name}, f.err
}

func (f *fakeAPI) GetProject(_ context.Context, id string) (*models.Project, error) {
	f.record("GetProject " + id)
	if f.err != nil {
		return nil, f.err
	}
	return f.project, nil
}

func (f *fakeAPI) DeleteProject(_ context.Context, id string) error {
	f.record("DeleteProject " + id)
	return f.err
}

func (f *fakeAPI) AddMember(_ context.Context, projectID string, in models.MemberCreate) (*models.ProjectMember, error) {
	f.record("AddMember " + projectID)
	f.lastMember = in
	return &models.ProjectMember{ProjectID: projectID, UserID: in.UserID, Role: in.Role}, f.err
}

func (f *fakeAPI) RemoveMember(_ context.Context, projectID, userID string) error {
	f.record("RemoveMember " + projectID + " " + userID)
	return f.err
}

func (f *fakeAPI) ListTasks(_ context.Context, projectID string) ([]models.Task, error) {
	f.record("ListTasks " + projectID)
	return f.tasks, f.err
}

func (f *fakeAPI) CreateTask(_ context.Context, in models.TaskCreate) (*models.Task, error) {
	f.record("CreateTask")
	f.lastTask = in
	return &models.Task{ID: "t-new", Name: in.Name}, f.err
}

func (f *fakeAPI) CreateSubtask(_ context.Context, parentID string, in models.TaskCreate) (*models.Task, error) {
	f.record("CreateSubtask " + parentID)
	f.lastParent = parentID
	f.lastTask = in
	return &models.Task{ID: "t-sub", Name: in.Name}, f.err
}

func (f *fakeAPI) GetTask(_ context.Context, id string) (*models.Task, error) {
	f.record("GetTask " + id)
	if f.err != nil {
		return nil, f.err
	}
	t := *f.task
	return &t, nil
}

func (f *fakeAPI) UpdateTask(_ context.Context, id string, upd models.TaskUpdate) (*models.Task, error) {
	f.record("UpdateTask " + id)
	f.lastTaskUpdate = upd
	return f.task, f.err
}

func (f *fakeAPI) DeleteTask(_ context.Context, id string) error {
	f.record("DeleteTask " + id)
	return f.err
}

func (f *fakeAPI) Gantt(_ context.Context, projectID string) ([]models.GanttTask, error) {
	f.record("Gantt " + projectID)
	return f.gantt, f.err
}

func (f *fakeAPI) CreateComment(_ context.Context, in models.CommentCreate) (*models.Comment, error) {
	f.record("CreateComment")
	f.lastComment = in
	return &models.Comment{ID: "c-new", TaskID: in.TaskID, Content: in.Content}, f.err
}

func (f *fakeAPI) Search(_ context.Context, q string) ([]models.SearchResult, error) {
	f.record("Search")
	f.lastQuery = q
	return f.results, f.err
}

func (f *fakeAPI) AddSample(_ context.Context, info string) error {
	f.record("AddSample " + info)
	return f.err
}

// ---- harness ----

type harness struct {
	app   *App
	api   *fakeAPI
	store *session.Store
	out   *bytes.Buffer
}

func newHarness(t *testing.T, api *fakeAPI, input ...string) *harness {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(db)
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(input, "\n") + "\n")

	return &harness{
		app:   newApp(api, store, logging.Nop(), in, out),
		api:   api,
		store: store,
		out:   out,
	}
}

// signIn stores a token and loads u, as a completed login would.
func (h *harness) signIn(t *testing.T, u *models.User) {
	t.Helper()
	require.NoError(t, h.store.SaveLogin(context.Background(), &models.AuthResponse{AccessToken: "tok"}))
	h.store.SetUser(u)
}

func (h *harness) run(t *testing.T, line string) string {
	t.Helper()
	h.out.Reset()
	h.app.dispatch(context.Background(), line)
	return h.out.String()
}

func regular() *models.User {
	name := "Ann"
	return &models.User{ID: "u1", Username: "ann@example.com", Name: &name, Role: models.RoleUser, IsActive: true}
}

func admin() *models.User {
	u := regular()
	u.Role = models.RoleAdmin
	return u
}
