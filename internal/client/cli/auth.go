package cli

import (
	"context"
	"errors"
	"os"

	"github.com/ourganize/ourganize-cli/internal/client/models"
	"github.com/ourganize/ourganize-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates an account.
// A successful registration also signs the user in, matching the server's
// behavior of returning a token with the new account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	user, err := a.sess.Register(ctx, models.RegisterInput{
		Name:                 name,
		Email:                email,
		Password:             string(password),
		PasswordConfirmation: string(confirmation),
	})
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			printlnFn("Registration rejected:", err.Error())
		} else {
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn("Welcome,", user.Name+"! A verification link was sent to", user.Email)
	return nil
}

// Login prompts for credentials and authenticates against the API. The
// password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.sess.Login(ctx, models.LoginInput{Email: email, Password: string(password)})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrValidation):
			printlnFn("Login rejected:", err.Error())
		case errors.Is(err, common.ErrUnavailable):
			printlnFn("Server unavailable, cached data from the last session is still readable.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn("Welcome back,", user.Name)
	if !user.IsEmailVerified() {
		printlnFn("Your email address is not verified yet. Use 'resend' to request a new link.")
	}
	return nil
}

// Logout ends the session. Local caches and the stored credential are wiped
// even when the server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sess.Logout(ctx); err != nil {
		printlnFn("Logout finished with errors:", err.Error())
		return err
	}
	printlnFn("Logged out, local data cleared.")
	return nil
}

// WhoAmI prints the resolved identity.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.sess.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn("Id:      ", u.ID)
	printlnFn("Name:    ", u.Name)
	printlnFn("Email:   ", u.Email)
	if u.Profession != nil {
		printlnFn("Profession:", u.Profession.Name)
	}
	if u.IsEmailVerified() {
		printlnFn("Verified: yes")
	} else {
		printlnFn("Verified: no")
	}
	return nil
}

// Refresh refetches the identity from the server, bypassing the settled
// session state.
func (a *App) Refresh(ctx context.Context) error {
	user, err := a.sess.FetchIdentity(ctx, true)
	if err != nil {
		printlnFn("Refresh failed:", err.Error())
		return err
	}
	if user == nil {
		printlnFn("Session is no longer valid, please log in again.")
		return nil
	}
	printlnFn("Identity refreshed for", user.Email)
	return nil
}
