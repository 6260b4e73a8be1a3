package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
)

func (a *App) listUsers(ctx context.Context, _ []string) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		printEmpty(a.out, "users")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tROLE\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, orDash(deref(u.Name)), u.Role, yesNo(u.IsActive))
	}
	return tw.Flush()
}

func (a *App) readRole(def models.Role) (models.Role, error) {
	for {
		v, err := GetDefaultText(a.reader, "Role (user/admin)", def.String(), a.out)
		if err != nil {
			return "", err
		}
		r, err := models.ParseRole(v)
		if err == nil {
			return r, nil
		}
		fmt.Fprintln(a.out, err)
	}
}

func (a *App) addUser(ctx context.Context, _ []string) error {
	email, err := GetRequiredText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	fullName, err := GetRequiredText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	role, err := a.readRole(models.RoleUser)
	if err != nil {
		return err
	}

	u, err := a.api.CreateUser(ctx, models.UserCreate{Email: email, FullName: fullName, Role: role})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s created (id %s).\n", u.Username, u.ID)
	return nil
}

func (a *App) editUser(ctx context.Context, args []string) error {
	u, err := a.api.GetUser(ctx, args[0])
	if err != nil {
		return err
	}

	var upd models.UserUpdate

	name, err := GetDefaultText(a.reader, "Name", deref(u.Name), a.out)
	if err != nil {
		return err
	}
	if name != deref(u.Name) {
		upd.Name = &name
	}

	role, err := a.readRole(u.Role)
	if err != nil {
		return err
	}
	if role != u.Role {
		upd.Role = &role
	}

	activeText, err := GetDefaultText(a.reader, "Active (true/false)", strconv.FormatBool(u.IsActive), a.out)
	if err != nil {
		return err
	}
	active, err := strconv.ParseBool(activeText)
	if err != nil {
		return fmt.Errorf("active must be true or false: %w", err)
	}
	if active != u.IsActive {
		upd.IsActive = &active
	}

	password, err := GetSimpleText(a.reader, "New password (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if password != "" {
		upd.Password = &password
	}

	if upd == (models.UserUpdate{}) {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}
	if _, err := a.api.UpdateUser(ctx, u.ID, upd); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User updated.")
	return nil
}

func (a *App) deleteUser(ctx context.Context, args []string) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete user %s?", args[0]), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteUser(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User deleted.")
	return nil
}
