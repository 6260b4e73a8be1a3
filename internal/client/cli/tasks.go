package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/dmitrijs2005/taskdeck/internal/client/services"
)

func (a *App) listTasks(ctx context.Context, args []string) error {
	projectID := ""
	if len(args) > 0 {
		projectID = args[0]
	}
	tasks, err := a.api.ListTasks(ctx, projectID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		printEmpty(a.out, "tasks")
		return nil
	}
	a.printTaskTree(services.BuildTaskTree(tasks), "")
	return nil
}

func (a *App) showTask(ctx context.Context, args []string) error {
	t, err := a.api.GetTask(ctx, args[0])
	if err != nil {
		return err
	}
	a.printTask(t)
	return nil
}

// readTask prompts for the fields of a new task in projectID.
func (a *App) readTask(projectID string) (models.TaskCreate, error) {
	in := models.TaskCreate{ProjectID: projectID}

	var err error
	if in.Name, err = GetRequiredText(a.reader, "Name", a.out); err != nil {
		return in, err
	}
	if in.Description, err = GetSimpleText(a.reader, "Description", a.out); err != nil {
		return in, err
	}
	if in.StartDate, in.Deadline, err = a.readSchedule(models.Time{}, models.Time{}); err != nil {
		return in, err
	}
	assignee, err := GetSimpleText(a.reader, "Assignee user ID (optional)", a.out)
	if err != nil {
		return in, err
	}
	if assignee != "" {
		in.AssignedToID = &assignee
	}
	return in, nil
}

func (a *App) addTask(ctx context.Context, args []string) error {
	in, err := a.readTask(args[0])
	if err != nil {
		return err
	}
	t, err := a.api.CreateTask(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task %q created (id %s).\n", t.Name, t.ID)
	return nil
}

func (a *App) addSubtask(ctx context.Context, args []string) error {
	parent, err := a.api.GetTask(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "New subtask of %q\n", parent.Name)

	in, err := a.readTask(parent.ProjectID)
	if err != nil {
		return err
	}
	t, err := a.api.CreateSubtask(ctx, parent.ID, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Subtask %q created (id %s).\n", t.Name, t.ID)
	return nil
}

// editTask sends only the fields that changed.
func (a *App) editTask(ctx context.Context, args []string) error {
	t, err := a.api.GetTask(ctx, args[0])
	if err != nil {
		return err
	}

	var upd models.TaskUpdate

	name, err := GetDefaultText(a.reader, "Name", t.Name, a.out)
	if err != nil {
		return err
	}
	if name != t.Name {
		upd.Name = &name
	}
	description, err := GetDefaultText(a.reader, "Description", t.Description, a.out)
	if err != nil {
		return err
	}
	if description != t.Description {
		upd.Description = &description
	}
	start, deadline, err := a.readSchedule(t.StartDate, t.Deadline)
	if err != nil {
		return err
	}
	if !start.Equal(t.StartDate.Time) {
		upd.StartDate = &start
	}
	if !deadline.Equal(t.Deadline.Time) {
		upd.Deadline = &deadline
	}
	status, err := a.readStatus(t.Status)
	if err != nil {
		return err
	}
	if status != t.Status {
		upd.Status = &status
	}
	assignee, err := GetDefaultText(a.reader, "Assignee user ID", deref(t.AssignedToID), a.out)
	if err != nil {
		return err
	}
	if assignee != deref(t.AssignedToID) {
		upd.AssignedToID = &assignee
	}

	if upd == (models.TaskUpdate{}) {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}
	if _, err := a.api.UpdateTask(ctx, t.ID, upd); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Task updated.")
	return nil
}

func (a *App) deleteTask(ctx context.Context, args []string) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete task %s?", args[0]), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteTask(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Task deleted.")
	return nil
}

func (a *App) listComments(ctx context.Context, args []string) error {
	comments, err := a.api.ListComments(ctx, args[0])
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		printEmpty(a.out, "comments")
		return nil
	}
	for _, c := range comments {
		fmt.Fprintf(a.out, "[%s] %s, %s:\n  %s\n", c.ID, c.UserID, ago(c.CreatedAt), c.Content)
	}
	return nil
}

func (a *App) addComment(ctx context.Context, args []string) error {
	content := strings.Join(args[1:], " ")
	if content == "" {
		var err error
		if content, err = GetRequiredText(a.reader, "Comment", a.out); err != nil {
			return err
		}
	}
	c, err := a.api.CreateComment(ctx, models.CommentCreate{TaskID: args[0], Content: content})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Comment added (id %s).\n", c.ID)
	return nil
}

func (a *App) deleteComment(ctx context.Context, args []string) error {
	if err := a.api.DeleteComment(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Comment deleted.")
	return nil
}
