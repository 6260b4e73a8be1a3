package models

type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   Time            `json:"start_date"`
	Deadline    Time            `json:"deadline"`
	Status      Status          `json:"status"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   Time            `json:"created_at"`
	UpdatedAt   Time            `json:"updated_at"`
	Members     []ProjectMember `json:"members,omitempty"`
	Tasks       []Task          `json:"tasks,omitempty"`
}

type ProjectCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   Time   `json:"start_date"`
	Deadline    Time   `json:"deadline"`
}

// ProjectUpdate replaces the project's fields (PUT); Status is optional.
type ProjectUpdate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   Time    `json:"start_date"`
	Deadline    Time    `json:"deadline"`
	Status      *Status `json:"status,omitempty"`
}

// ProjectMember associates a user with a project.
type ProjectMember struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id"`
	UserID    string     `json:"user_id"`
	Role      MemberRole `json:"role"`
	CreatedAt Time       `json:"created_at"`
}

type MemberCreate struct {
	ProjectID string     `json:"project_id"`
	UserID    string     `json:"user_id"`
	Role      MemberRole `json:"role"`
}
