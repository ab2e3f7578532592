package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/foodcourt/internal/client/api"
	"github.com/dmitrijs2005/foodcourt/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and creates a new user account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	req := api.RegisterRequest{
		Name:           name,
		Email:          email,
		Password:       password,
		PasswordRepeat: password,
		Role:           "user",
		PhoneNumber:    phone,
	}
	if err := a.api.Register(ctx, req); err != nil {
		return err
	}

	fmt.Println("Account created. You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates through the session store.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return errors.New("invalid email or password")
		}
		return err
	}

	fmt.Printf("Welcome back, %s!\n", a.session.User().Name)
	return nil
}

// Logout clears the session. It always succeeds locally; remote
// invalidation runs detached inside the session store.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}
