package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/dmitrijs2005/taskdeck/internal/client/services"
)

func (a *App) listProjects(ctx context.Context, _ []string) error {
	projects, err := a.api.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		printEmpty(a.out, "projects")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tSTART\tDEADLINE")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, a.status(p.Status), formatDate(p.StartDate), formatDate(p.Deadline))
	}
	return tw.Flush()
}

func (a *App) showProject(ctx context.Context, args []string) error {
	p, err := a.api.GetProject(ctx, args[0])
	if err != nil {
		return err
	}
	a.printProject(p)
	return nil
}

// readStatus accepts the wire values and "in progress" with a space.
func (a *App) readStatus(def models.Status) (models.Status, error) {
	for {
		v, err := GetDefaultText(a.reader, "Status (pending/in_progress/completed)", def.String(), a.out)
		if err != nil {
			return "", err
		}
		st, err := models.ParseStatus(strings.ReplaceAll(strings.ToLower(v), " ", "_"))
		if err == nil {
			return st, nil
		}
		fmt.Fprintln(a.out, err)
	}
}

// readSchedule asks for a start date and a deadline that is not before it.
func (a *App) readSchedule(start, deadline models.Time) (models.Time, models.Time, error) {
	for {
		s, err := GetDate(a.reader, "Start date", start, a.out)
		if err != nil {
			return models.Time{}, models.Time{}, err
		}
		d, err := GetDate(a.reader, "Deadline", deadline, a.out)
		if err != nil {
			return models.Time{}, models.Time{}, err
		}
		if !d.Before(s.Time) {
			return s, d, nil
		}
		fmt.Fprintln(a.out, "the deadline cannot be before the start date")
	}
}

func (a *App) addProject(ctx context.Context, _ []string) error {
	name, err := GetRequiredText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	start, deadline, err := a.readSchedule(models.Time{}, models.Time{})
	if err != nil {
		return err
	}

	p, err := a.api.CreateProject(ctx, models.ProjectCreate{Name: name, Description: description, StartDate: start, Deadline: deadline})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Project %q created (id %s).\n", p.Name, p.ID)
	return nil
}

func (a *App) editProject(ctx context.Context, args []string) error {
	p, err := a.api.GetProject(ctx, args[0])
	if err != nil {
		return err
	}

	name, err := GetDefaultText(a.reader, "Name", p.Name, a.out)
	if err != nil {
		return err
	}
	description, err := GetDefaultText(a.reader, "Description", p.Description, a.out)
	if err != nil {
		return err
	}
	start, deadline, err := a.readSchedule(p.StartDate, p.Deadline)
	if err != nil {
		return err
	}
	status, err := a.readStatus(p.Status)
	if err != nil {
		return err
	}

	upd := models.ProjectUpdate{Name: name, Description: description, StartDate: start, Deadline: deadline, Status: &status}
	if _, err := a.api.UpdateProject(ctx, p.ID, upd); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project updated.")
	return nil
}

func (a *App) deleteProject(ctx context.Context, args []string) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete project %s and all its tasks?", args[0]), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteProject(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project deleted.")
	return nil
}

func (a *App) listMembers(ctx context.Context, args []string) error {
	members, err := a.api.ListMembers(ctx, args[0])
	if err != nil {
		return err
	}
	if len(members) == 0 {
		printEmpty(a.out, "members")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "USER\tROLE\tSINCE")
	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.UserID, m.Role, ago(m.CreatedAt))
	}
	return tw.Flush()
}

func (a *App) addMember(ctx context.Context, args []string) error {
	userID, err := GetRequiredText(a.reader, "User ID", a.out)
	if err != nil {
		return err
	}

	var role models.MemberRole
	for {
		v, err := GetDefaultText(a.reader, "Role (manager/member)", "member", a.out)
		if err != nil {
			return err
		}
		if role, err = models.ParseMemberRole(v); err == nil {
			break
		}
		fmt.Fprintln(a.out, err)
	}

	m, err := a.api.AddMember(ctx, args[0], models.MemberCreate{UserID: userID, Role: role})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s added as %s.\n", m.UserID, m.Role)
	return nil
}

func (a *App) removeMember(ctx context.Context, args []string) error {
	if err := a.api.RemoveMember(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Member removed.")
	return nil
}

func (a *App) gantt(ctx context.Context, args []string) error {
	tasks, err := a.api.Gantt(ctx, args[0])
	if err != nil {
		return err
	}
	return services.RenderGantt(a.out, tasks, a.width)
}
