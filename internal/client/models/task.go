package models

// Task belongs to a project and optionally to a parent task.
type Task struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ProjectID    string  `json:"project_id"`
	ParentTaskID *string `json:"parent_task_id,omitempty"`
	StartDate    Time    `json:"start_date"`
	Deadline     Time    `json:"deadline"`
	AssignedToID *string `json:"assigned_to_id"`
	CreatedByID  string  `json:"created_by_id"`
	Status       Status  `json:"status"`
	CreatedAt    Time    `json:"created_at"`
	UpdatedAt    Time    `json:"updated_at"`
	Subtasks     []Task  `json:"subtasks,omitempty"`
}

func (t Task) IsSubtask() bool { return t.ParentTaskID != nil && *t.ParentTaskID != "" }

type TaskCreate struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ProjectID    string  `json:"project_id"`
	StartDate    Time    `json:"start_date"`
	Deadline     Time    `json:"deadline"`
	AssignedToID *string `json:"assigned_to_id,omitempty"`
	ParentTaskID *string `json:"parent_task_id,omitempty"`
}

// TaskUpdate is a partial update; nil fields are not sent.
type TaskUpdate struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	ProjectID    *string `json:"project_id,omitempty"`
	StartDate    *Time   `json:"start_date,omitempty"`
	Deadline     *Time   `json:"deadline,omitempty"`
	Status       *Status `json:"status,omitempty"`
	AssignedToID *string `json:"assigned_to_id,omitempty"`
}
