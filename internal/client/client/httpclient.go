package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/dmitrijs2005/taskdeck/internal/common"
	"github.com/dmitrijs2005/taskdeck/internal/logging"
	"github.com/google/uuid"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// HTTPClient talks to the backend's REST API.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	log       logging.Logger
	userAgent string
	requestID func() string
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) { c.userAgent = ua }
}

// New returns a client bound to baseURL. tokens may be nil, in which case no
// call carries an Authorization header.
func New(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %v", ErrInvalidArgument, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q must be an absolute http(s) url", ErrInvalidArgument, baseURL)
	}
	if tokens == nil {
		tokens = StaticToken("")
	}

	c := &HTTPClient{
		baseURL:   strings.TrimRight(u.String(), "/"),
		http:      &http.Client{},
		tokens:    tokens,
		log:       logging.Nop(),
		userAgent: "taskdeck",
		requestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) BaseURL() string { return c.baseURL }

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// --- auth ---

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/token", "", strings.NewReader(form.Encode()), contentTypeForm, false)
	if err != nil {
		return nil, err
	}
	var out models.AuthResponse
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	body, err := encodeJSON(data)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/signup", "", body, contentTypeJSON, false)
	if err != nil {
		return nil, err
	}
	var out models.AuthResponse
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- current user ---

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.call(ctx, http.MethodGet, "/api/v1/userinfo/", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateCurrentUser(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	var out models.User
	if err := c.call(ctx, http.MethodPatch, "/api/v1/userinfo/", "", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- users ---

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, c, "/api/v1/users/", "")
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	p, err := resourcePath("/api/v1/users/", id)
	if err != nil {
		return nil, err
	}
	var out models.User
	if err := c.call(ctx, http.MethodGet, p, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error) {
	var out models.User
	if err := c.call(ctx, http.MethodPost, "/api/v1/users/", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	p, err := resourcePath("/api/v1/users/", id)
	if err != nil {
		return nil, err
	}
	var out models.User
	if err := c.call(ctx, http.MethodPatch, p, "", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.deleteResource(ctx, "/api/v1/users/", id)
}

// --- samples & search ---

type resultsEnvelope[T any] struct {
	Results []T `json:"results"`
}

func (c *HTTPClient) ListSamples(ctx context.Context) ([]models.Sample, error) {
	var env resultsEnvelope[models.Sample]
	if err := c.call(ctx, http.MethodGet, "/api/v1/sample/", "", nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Results), nil
}

func (c *HTTPClient) AddSample(ctx context.Context, info string) error {
	return c.call(ctx, http.MethodPost, "/api/v1/sample/", "", map[string]string{"info": info}, nil)
}

func (c *HTTPClient) DeleteSample(ctx context.Context, id string) error {
	return c.deleteResource(ctx, "/api/v1/sample/", id)
}

func (c *HTTPClient) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	var env resultsEnvelope[models.SearchResult]
	q := encodeQuery(url.Values{"q": {query}})
	if err := c.call(ctx, http.MethodGet, "/api/v1/search/", q, nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Results), nil
}

// --- projects ---

func (c *HTTPClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	return list[models.Project](ctx, c, "/api/v1/projects/", "")
}

func (c *HTTPClient) CreateProject(ctx context.Context, in models.ProjectCreate) (*models.Project, error) {
	var out models.Project
	if err := c.call(ctx, http.MethodPost, "/api/v1/projects/", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, id string) (*models.Project, error) {
	p, err := resourcePath("/api/v1/projects/", id)
	if err != nil {
		return nil, err
	}
	var out models.Project
	if err := c.call(ctx, http.MethodGet, p, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProject(ctx context.Context, id string, upd models.ProjectUpdate) (*models.Project, error) {
	p, err := resourcePath("/api/v1/projects/", id)
	if err != nil {
		return nil, err
	}
	var out models.Project
	if err := c.call(ctx, http.MethodPut, p, "", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id string) error {
	return c.deleteResource(ctx, "/api/v1/projects/", id)
}

func (c *HTTPClient) ListMembers(ctx context.Context, projectID string) ([]models.ProjectMember, error) {
	p, err := resourcePath("/api/v1/projects/", projectID)
	if err != nil {
		return nil, err
	}
	return list[models.ProjectMember](ctx, c, p+"/members", "")
}

// AddMember adds a user to the project. in.ProjectID is overwritten with
// projectID.
func (c *HTTPClient) AddMember(ctx context.Context, projectID string, in models.MemberCreate) (*models.ProjectMember, error) {
	p, err := resourcePath("/api/v1/projects/", projectID)
	if err != nil {
		return nil, err
	}
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: user id is empty", ErrInvalidArgument)
	}
	in.ProjectID = projectID

	var out models.ProjectMember
	if err := c.call(ctx, http.MethodPost, p+"/members", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RemoveMember(ctx context.Context, projectID, userID string) error {
	p, err := resourcePath("/api/v1/projects/", projectID)
	if err != nil {
		return err
	}
	return c.deleteResource(ctx, p+"/members/", userID)
}

// --- tasks ---

// ListTasks returns the caller's tasks, restricted to one project when
// projectID is not empty.
func (c *HTTPClient) ListTasks(ctx context.Context, projectID string) ([]models.Task, error) {
	q := ""
	if projectID != "" {
		q = encodeQuery(url.Values{"project_id": {projectID}})
	}
	return list[models.Task](ctx, c, "/api/v1/tasks/", q)
}

func (c *HTTPClient) CreateTask(ctx context.Context, in models.TaskCreate) (*models.Task, error) {
	var out models.Task
	if err := c.call(ctx, http.MethodPost, "/api/v1/tasks/", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSubtask is CreateTask with parent_task_id set to parentID.
func (c *HTTPClient) CreateSubtask(ctx context.Context, parentID string, in models.TaskCreate) (*models.Task, error) {
	if parentID == "" {
		return nil, fmt.Errorf("%w: parent task id is empty", ErrInvalidArgument)
	}
	in.ParentTaskID = &parentID
	return c.CreateTask(ctx, in)
}

func (c *HTTPClient) GetTask(ctx context.Context, id string) (*models.Task, error) {
	p, err := resourcePath("/api/v1/tasks/", id)
	if err != nil {
		return nil, err
	}
	var out models.Task
	if err := c.call(ctx, http.MethodGet, p, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error) {
	p, err := resourcePath("/api/v1/tasks/", id)
	if err != nil {
		return nil, err
	}
	var out models.Task
	if err := c.call(ctx, http.MethodPut, p, "", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.deleteResource(ctx, "/api/v1/tasks/", id)
}

func (c *HTTPClient) Gantt(ctx context.Context, projectID string) ([]models.GanttTask, error) {
	p, err := resourcePath("/api/v1/gantt/", projectID)
	if err != nil {
		return nil, err
	}
	var env struct {
		Tasks []models.GanttTask `json:"tasks"`
	}
	if err := c.call(ctx, http.MethodGet, p, "", nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Tasks), nil
}

// --- comments ---

func (c *HTTPClient) ListComments(ctx context.Context, taskID string) ([]models.Comment, error) {
	p, err := resourcePath("/api/v1/comments/", taskID)
	if err != nil {
		return nil, err
	}
	return list[models.Comment](ctx, c, p, "")
}

func (c *HTTPClient) CreateComment(ctx context.Context, in models.CommentCreate) (*models.Comment, error) {
	if in.TaskID == "" {
		return nil, fmt.Errorf("%w: task id is empty", ErrInvalidArgument)
	}
	var out models.Comment
	if err := c.call(ctx, http.MethodPost, "/api/v1/comments/", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, id string) error {
	return c.deleteResource(ctx, "/api/v1/comments/", id)
}

// --- plumbing ---

func list[T any](ctx context.Context, c *HTTPClient, path, rawQuery string) ([]T, error) {
	var out []T
	if err := c.call(ctx, http.MethodGet, path, rawQuery, nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (c *HTTPClient) deleteResource(ctx context.Context, prefix, id string) error {
	p, err := resourcePath(prefix, id)
	if err != nil {
		return err
	}
	return c.call(ctx, http.MethodDelete, p, "", nil, nil)
}

// call issues an authenticated JSON request. in is encoded as the body when
// not nil; the response is decoded into out when not nil.
func (c *HTTPClient) call(ctx context.Context, method, path, rawQuery string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := encodeJSON(in)
		if err != nil {
			return err
		}
		body = b
	}
	req, err := c.newRequest(ctx, method, path, rawQuery, body, contentTypeJSON, true)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, rawQuery string, body io.Reader, contentType string, auth bool) (*http.Request, error) {
	target := c.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(common.RequestIDHeader, c.requestID())

	if auth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerScheme+" "+token)
		}
	}
	return req, nil
}

func (c *HTTPClient) send(req *http.Request, out any) error {
	ctx := req.Context()
	log := c.log.With(
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(common.RequestIDHeader),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Warn(ctx, "request failed", "error", err)
		return ErrUnavailable
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp)
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "error", apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)
	msg := errorMessage(resp.Header.Get("Content-Type"), body)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg, Response: resp}
}

// errorMessage extracts the detail field of a JSON error body, falling back
// to the compact JSON itself. Non-JSON bodies are returned as text.
func errorMessage(contentType string, body []byte) string {
	text := strings.TrimSpace(string(body))
	if !isJSON(contentType) || text == "" {
		return text
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil {
			return detail
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err == nil {
		return compact.String()
	}
	return text
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == contentTypeJSON || strings.HasSuffix(mediaType, "+json")
}

func encodeJSON(v any) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return buf, nil
}

// encodeQuery encodes spaces as %20 rather than '+'.
func encodeQuery(v url.Values) string {
	return strings.ReplaceAll(v.Encode(), "+", "%20")
}

func resourcePath(prefix, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%w: empty id for %s", ErrInvalidArgument, prefix)
	}
	return prefix + url.PathEscape(id), nil
}

var _ Client = (*HTTPClient)(nil)
