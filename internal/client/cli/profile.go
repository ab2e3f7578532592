package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/foodcourt/internal/client/api"
)

// Profile shows the current user and optionally updates the editable
// fields. Empty answers keep the current values.
func (a *App) Profile(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		return errors.New("please log in first")
	}

	fmt.Printf("Name:  %s\nEmail: %s\nPhone: %s\nRole:  %s\n",
		user.Name, user.Email, user.PhoneNumber, user.Role)

	answer, err := getSimpleText(a.reader, "Edit profile? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		return nil
	}

	name, err := getSimpleText(a.reader, "Name ["+user.Name+"]", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone ["+user.PhoneNumber+"]", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = user.Name
	}
	if phone == "" {
		phone = user.PhoneNumber
	}

	req := api.ProfileUpdate{
		Name:              name,
		Email:             user.Email,
		ProfilePictureURL: user.ProfilePictureURL,
		PhoneNumber:       phone,
	}
	if err := a.api.UpdateProfile(ctx, req); err != nil {
		return err
	}

	// Refresh the cached profile so the session reflects the change.
	updated, err := a.api.CurrentUser(ctx)
	if err == nil {
		*user = *updated
	}
	fmt.Println("Profile updated.")
	return nil
}
