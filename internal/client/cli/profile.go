package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ourganize/ourganize-cli/internal/client/models"
	"github.com/ourganize/ourganize-cli/internal/client/session"
	"github.com/ourganize/ourganize-cli/internal/common"
)

// Profile shows the current profile and prompts for updates. Empty input
// keeps the current value; the profession is picked by id from the lookup
// list.
func (a *App) Profile(ctx context.Context) error {
	u := a.sess.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", u.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = u.Name
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", u.Email), os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = u.Email
	}

	if err := a.Professions(ctx); err != nil {
		return err
	}
	professionID := u.ProfessionID
	if picked, err := getSimpleText(a.reader, "Profession id (empty to keep)", os.Stdout); err != nil {
		return err
	} else if picked != "" {
		professionID = &picked
	}

	updated, err := a.sess.UpdateProfile(ctx, models.UpdateProfileInput{
		Name:         name,
		Email:        email,
		ProfessionID: professionID,
	})
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			printlnFn("Profile rejected:", err.Error())
		} else {
			printlnFn("Profile update failed:", err.Error())
		}
		return err
	}

	printlnFn("Profile saved for", updated.Email)
	if !updated.IsEmailVerified() {
		printlnFn("The new email address needs verification; a link was sent.")
	}
	return nil
}

// Professions prints the profession lookup list.
func (a *App) Professions(ctx context.Context) error {
	list, err := a.sess.Professions(ctx)
	if err != nil {
		printlnFn("Could not load professions:", err.Error())
		return err
	}
	for _, p := range list {
		printlnFn(p.ID, "-", p.Name)
	}
	return nil
}

// Social prints the OAuth redirect URL the user must open in a browser.
func (a *App) Social(ctx context.Context, provider string) error {
	url, err := session.SocialRedirectURL(a.config.SiteBaseURL, provider)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Open this URL in your browser to continue:", url)
	return nil
}

// Verify submits the parameters of a signed verification link.
func (a *App) Verify(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Verification id", os.Stdout)
	if err != nil {
		return err
	}
	hash, err := getSimpleText(a.reader, "Verification hash", os.Stdout)
	if err != nil {
		return err
	}
	expiresRaw, err := getSimpleText(a.reader, "Expires (unix timestamp)", os.Stdout)
	if err != nil {
		return err
	}
	expires, err := strconv.ParseInt(expiresRaw, 10, 64)
	if err != nil {
		printlnFn("Expires must be a number.")
		return err
	}
	signature, err := getSimpleText(a.reader, "Signature", os.Stdout)
	if err != nil {
		return err
	}

	status, err := a.sess.VerifyEmail(ctx, models.VerifyEmailInput{
		ID: id, Hash: hash, Expires: expires, Signature: signature,
	})
	if err != nil {
		printlnFn("Verification failed:", err.Error())
		return err
	}
	printlnFn(status.Message)
	return nil
}

// ResendVerification asks the server to send a fresh verification link.
func (a *App) ResendVerification(ctx context.Context) error {
	status, err := a.sess.ResendVerificationEmail(ctx)
	if err != nil {
		printlnFn("Could not resend the verification email:", err.Error())
		return err
	}
	printlnFn(status.Message)
	return nil
}

// DeleteAccount removes the account after an explicit confirmation. All
// local data is wiped with it.
func (a *App) DeleteAccount(ctx context.Context) error {
	ok, err := GetBool(a.reader, "Delete the account and all its data? This cannot be undone.", false, os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.sess.DeleteAccount(ctx); err != nil {
		printlnFn("Account deletion failed:", err.Error())
		return err
	}
	printlnFn("Account deleted, local data cleared.")
	return nil
}
