package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/dmitrijs2005/taskdeck/internal/common"
)

var errPasswordMismatch = errors.New("passwords do not match")

// readNewPassword asks for a password twice.
func (a *App) readNewPassword(prompt string) (string, error) {
	pw, err := GetPassword(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)

	again, err := GetPassword(a.reader, "Repeat password", a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(again)

	if string(pw) != string(again) {
		return "", errPasswordMismatch
	}
	return string(pw), nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	email, err := GetRequiredText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Name (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := a.readNewPassword("Password")
	if err != nil {
		return err
	}

	data := models.RegisterData{Username: email, Password: password}
	if name != "" {
		data.Name = &name
	}
	u, err := a.auth.Register(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created. Signed in as %s\n", u.DisplayName())
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	email, err := GetRequiredText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", u.DisplayName())
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.printUser(u)
	return nil
}

func (a *App) profile(ctx context.Context, _ []string) error {
	current := ""
	if u := a.store.User(); u != nil && u.Name != nil {
		current = *u.Name
	}
	name, err := GetDefaultText(a.reader, "Name", current, a.out)
	if err != nil {
		return err
	}
	u, err := a.auth.UpdateProfile(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Profile updated: %s\n", u.DisplayName())
	return nil
}

func (a *App) passwd(ctx context.Context, _ []string) error {
	current, err := GetPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := a.readNewPassword("New password")
	if err != nil {
		return err
	}
	if err := a.auth.ChangePassword(ctx, string(current), next); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}
