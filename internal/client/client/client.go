package client

import (
	"context"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
)

// Client is the contract of the task-management backend. Every method maps
// to exactly one REST call.
type Client interface {
	Close() error

	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)

	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateCurrentUser(ctx context.Context, upd models.UserUpdate) (*models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListSamples(ctx context.Context) ([]models.Sample, error)
	AddSample(ctx context.Context, info string) error
	DeleteSample(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]models.SearchResult, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, in models.ProjectCreate) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, upd models.ProjectUpdate) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListMembers(ctx context.Context, projectID string) ([]models.ProjectMember, error)
	AddMember(ctx context.Context, projectID string, in models.MemberCreate) (*models.ProjectMember, error)
	RemoveMember(ctx context.Context, projectID, userID string) error

	ListTasks(ctx context.Context, projectID string) ([]models.Task, error)
	CreateTask(ctx context.Context, in models.TaskCreate) (*models.Task, error)
	CreateSubtask(ctx context.Context, parentID string, in models.TaskCreate) (*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	Gantt(ctx context.Context, projectID string) ([]models.GanttTask, error)

	ListComments(ctx context.Context, taskID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, in models.CommentCreate) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// TokenSource yields the bearer token for authenticated calls. An empty
// token means the Authorization header is omitted.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always returns itself.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) { return string(s), nil }
