package models

// GanttTask is one bar of a project's Gantt chart. Progress is in [0, 1].
type GanttTask struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Start        Time     `json:"start"`
	End          Time     `json:"end"`
	Progress     float64  `json:"progress"`
	Dependencies []string `json:"dependencies,omitempty"`
}
