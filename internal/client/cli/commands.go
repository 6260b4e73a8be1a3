package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/taskdeck/internal/client/client"
	"github.com/dmitrijs2005/taskdeck/internal/client/session"
)

type access int

const (
	accessPublic access = iota
	accessLogin
	accessAdmin
)

type command struct {
	name    string
	usage   string
	summary string
	access  access
	minArgs int
	// resetOK commands stay available while a password change is pending.
	resetOK bool
	run     func(ctx context.Context, args []string) error
}

func (a *App) commandTable() []*command {
	return []*command{
		{name: "help", summary: "show available commands", resetOK: true, run: a.help},
		{name: "register", summary: "create an account and sign in", run: a.register},
		{name: "login", summary: "sign in", run: a.login},
		{name: "logout", summary: "sign out and forget the stored token", access: accessLogin, resetOK: true, run: a.logout},
		{name: "whoami", summary: "show the signed-in user", access: accessLogin, resetOK: true, run: a.whoami},
		{name: "profile", summary: "change your display name", access: accessLogin, run: a.profile},
		{name: "passwd", summary: "change your password", access: accessLogin, resetOK: true, run: a.passwd},

		{name: "users", summary: "list users", access: accessAdmin, run: a.listUsers},
		{name: "user-add", summary: "create a user", access: accessAdmin, run: a.addUser},
		{name: "user-edit", usage: "<user-id>", summary: "edit a user", access: accessAdmin, minArgs: 1, run: a.editUser},
		{name: "user-del", usage: "<user-id>", summary: "delete a user", access: accessAdmin, minArgs: 1, run: a.deleteUser},

		{name: "projects", summary: "list projects", access: accessLogin, run: a.listProjects},
		{name: "project", usage: "<project-id>", summary: "show a project", access: accessLogin, minArgs: 1, run: a.showProject},
		{name: "project-add", summary: "create a project", access: accessLogin, run: a.addProject},
		{name: "project-edit", usage: "<project-id>", summary: "edit a project", access: accessLogin, minArgs: 1, run: a.editProject},
		{name: "project-del", usage: "<project-id>", summary: "delete a project", access: accessLogin, minArgs: 1, run: a.deleteProject},
		{name: "members", usage: "<project-id>", summary: "list project members", access: accessLogin, minArgs: 1, run: a.listMembers},
		{name: "member-add", usage: "<project-id>", summary: "add a member to a project", access: accessLogin, minArgs: 1, run: a.addMember},
		{name: "member-del", usage: "<project-id> <user-id>", summary: "remove a member from a project", access: accessLogin, minArgs: 2, run: a.removeMember},
		{name: "gantt", usage: "<project-id>", summary: "draw the project timeline", access: accessLogin, minArgs: 1, run: a.gantt},

		{name: "tasks", usage: "[project-id]", summary: "list tasks, optionally of one project", access: accessLogin, run: a.listTasks},
		{name: "task", usage: "<task-id>", summary: "show a task", access: accessLogin, minArgs: 1, run: a.showTask},
		{name: "task-add", usage: "<project-id>", summary: "create a task", access: accessLogin, minArgs: 1, run: a.addTask},
		{name: "subtask-add", usage: "<parent-task-id>", summary: "create a subtask", access: accessLogin, minArgs: 1, run: a.addSubtask},
		{name: "task-edit", usage: "<task-id>", summary: "edit a task", access: accessLogin, minArgs: 1, run: a.editTask},
		{name: "task-del", usage: "<task-id>", summary: "delete a task", access: accessLogin, minArgs: 1, run: a.deleteTask},

		{name: "comments", usage: "<task-id>", summary: "list comments of a task", access: accessLogin, minArgs: 1, run: a.listComments},
		{name: "comment-add", usage: "<task-id> [text]", summary: "comment on a task", access: accessLogin, minArgs: 1, run: a.addComment},
		{name: "comment-del", usage: "<comment-id>", summary: "delete a comment", access: accessLogin, minArgs: 1, run: a.deleteComment},

		{name: "samples", summary: "list samples", access: accessLogin, run: a.listSamples},
		{name: "sample-add", usage: "[text]", summary: "add a sample", access: accessLogin, run: a.addSample},
		{name: "sample-del", usage: "<sample-id>", summary: "delete a sample", access: accessLogin, minArgs: 1, run: a.deleteSample},
		{name: "search", usage: "<query>", summary: "full-text search over samples", access: accessLogin, minArgs: 1, run: a.search},
	}
}

func (a *App) lookup(name string) *command {
	for _, c := range a.commands {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (a *App) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	if name == "exit" || name == "quit" {
		fmt.Fprintln(a.out, "Bye!")
		return true
	}

	cmd := a.lookup(name)
	if cmd == nil {
		fmt.Fprintf(a.out, "Unknown command: %s (type 'help')\n", fields[0])
		return false
	}
	if !a.allowed(ctx, cmd) {
		return false
	}
	if len(args) < cmd.minArgs {
		fmt.Fprintf(a.out, "Usage: %s %s\n", cmd.name, cmd.usage)
		return false
	}

	if err := cmd.run(ctx, args); err != nil {
		a.reportError(ctx, cmd, err)
	}
	return false
}

// allowed applies the route guards to cmd and explains any refusal.
func (a *App) allowed(ctx context.Context, cmd *command) bool {
	if cmd.access == accessPublic {
		return true
	}
	if r := session.RequireLogin(ctx, a.store); !r.Allowed() {
		fmt.Fprintf(a.out, "Please log in first (redirected to %s).\n", r)
		return false
	}
	if a.store.PasswordResetRequired() && !cmd.resetOK {
		fmt.Fprintln(a.out, "A password change is required: run 'passwd'.")
		return false
	}
	if cmd.access == accessAdmin {
		if r := session.RequireAdmin(a.store); !r.Allowed() {
			fmt.Fprintf(a.out, "Administrators only (redirected to %s).\n", r)
			return false
		}
	}
	return true
}

func (a *App) reportError(ctx context.Context, cmd *command, err error) {
	a.log.Debug(ctx, "command failed", "command", cmd.name, "error", err)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(a.out, "error: request canceled or timed out")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "error: server unavailable")
	case errors.Is(err, client.ErrUnauthorized) && cmd.access != accessPublic:
		fmt.Fprintf(a.out, "error: %s (run 'login' to sign in again)\n", err)
	default:
		fmt.Fprintf(a.out, "error: %s\n", err)
	}
}

func (a *App) help(ctx context.Context, _ []string) error {
	loggedIn := a.store.IsAuthenticated(ctx)
	admin := session.RequireAdmin(a.store).Allowed()

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Available commands:")
	for _, c := range a.commands {
		switch {
		case c.access == accessAdmin && !admin:
			continue
		case c.access != accessPublic && !loggedIn:
			continue
		case c.access == accessPublic && loggedIn && c.name != "help":
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\n", strings.TrimSpace(c.name+" "+c.usage), c.summary)
	}
	fmt.Fprintf(tw, "  %s\t%s\n", "exit | quit", "leave the program")
	return tw.Flush()
}
