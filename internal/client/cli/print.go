package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/dmitrijs2005/taskdeck/internal/client/services"
	"github.com/dustin/go-humanize"
)

// now is a test seam for relative timestamps.
var now = time.Now

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *App) status(s models.Status) string {
	return services.ColoredStatus(s, a.color)
}

// ago renders t relative to now, e.g. "3 days ago".
func ago(t models.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t.Time, now(), "ago", "from now")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (a *App) printUser(u *models.User) {
	tw := a.table()
	fmt.Fprintf(tw, "ID:\t%s\n", u.ID)
	fmt.Fprintf(tw, "Username:\t%s\n", u.Username)
	fmt.Fprintf(tw, "Name:\t%s\n", orDash(deref(u.Name)))
	fmt.Fprintf(tw, "Role:\t%s\n", u.Role)
	fmt.Fprintf(tw, "Active:\t%s\n", yesNo(u.IsActive))
	if u.PasswordResetRequired {
		fmt.Fprintf(tw, "Password reset:\t%s\n", "required")
	}
	_ = tw.Flush()
}

func (a *App) printProject(p *models.Project) {
	tw := a.table()
	fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Description:\t%s\n", orDash(p.Description))
	fmt.Fprintf(tw, "Status:\t%s\n", a.status(p.Status))
	fmt.Fprintf(tw, "Start:\t%s\n", formatDate(p.StartDate))
	fmt.Fprintf(tw, "Deadline:\t%s\n", formatDate(p.Deadline))
	fmt.Fprintf(tw, "Active:\t%s\n", yesNo(p.IsActive))
	fmt.Fprintf(tw, "Updated:\t%s\n", ago(p.UpdatedAt))
	_ = tw.Flush()
}

func (a *App) printTask(t *models.Task) {
	tw := a.table()
	fmt.Fprintf(tw, "ID:\t%s\n", t.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", t.Name)
	fmt.Fprintf(tw, "Description:\t%s\n", orDash(t.Description))
	fmt.Fprintf(tw, "Project:\t%s\n", t.ProjectID)
	if t.IsSubtask() {
		fmt.Fprintf(tw, "Parent task:\t%s\n", *t.ParentTaskID)
	}
	fmt.Fprintf(tw, "Status:\t%s\n", a.status(t.Status))
	fmt.Fprintf(tw, "Start:\t%s\n", formatDate(t.StartDate))
	fmt.Fprintf(tw, "Deadline:\t%s\n", formatDate(t.Deadline))
	fmt.Fprintf(tw, "Assignee:\t%s\n", orDash(deref(t.AssignedToID)))
	_ = tw.Flush()

	if len(t.Subtasks) > 0 {
		fmt.Fprintln(a.out, "Subtasks:")
		a.printTaskTree(services.BuildTaskTree(t.Subtasks), "  ")
	}
}

func (a *App) printTaskTree(nodes []*services.TaskNode, indent string) {
	tw := a.table()
	services.Walk(nodes, func(n *services.TaskNode, depth int) {
		t := n.Task
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\n",
			indent, strings.Repeat("  ", depth), t.ID, t.Name, a.status(t.Status), formatDate(t.Deadline))
	})
	_ = tw.Flush()
}

func printEmpty(w io.Writer, what string) {
	fmt.Fprintf(w, "No %s.\n", what)
}
