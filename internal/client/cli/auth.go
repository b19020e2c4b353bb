package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/conduit/internal/client/collection"
	"github.com/dmitrijs2005/conduit/internal/client/models"
)

// getPassword is an indirection used to facilitate testing. It points to the
// terminal password prompt and can be swapped in tests.
var getPassword = GetPassword

var errNotSignedIn = errors.New("you are not signed in")

// Register prompts for a username, email and password, creates the account
// and switches to the personal feed.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	user, err := a.session.Signup(ctx, username, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Username)
	return a.feed.SetFilter(ctx, collection.Personal())
}

// Login prompts for credentials, offering the last email used on this
// machine, and switches to the personal feed on success.
func (a *App) Login(ctx context.Context) error {
	email, err := GetTextWithDefault(a.reader, "Email", a.session.LastEmail(ctx), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s.\n", user.Username)
	return a.feed.SetFilter(ctx, collection.Personal())
}

// Logout forgets the saved credential and goes back to the global feed.
// With --forget the last login email and any other local data go too.
func (a *App) Logout(ctx context.Context, args []string) error {
	forget := false
	switch {
	case len(args) == 1 && args[0] == "--forget":
		forget = true
	case len(args) != 0:
		return usageError("logout [--forget]")
	}

	if forget {
		if err := a.session.Forget(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Local data removed.")
	} else {
		if !a.isLoggedIn() {
			return errNotSignedIn
		}
		if err := a.session.Logout(ctx); err != nil {
			return err
		}
	}
	return a.feed.SetFilter(ctx, collection.Global())
}

// Whoami prints the signed-in user. With -v it also lists what is stored
// locally.
func (a *App) Whoami(ctx context.Context, args []string) error {
	verbose := false
	switch {
	case len(args) == 1 && args[0] == "-v":
		verbose = true
	case len(args) != 0:
		return usageError("whoami [-v]")
	}

	if !a.isLoggedIn() {
		if !verbose {
			return errNotSignedIn
		}
		fmt.Fprintln(a.out, "Not signed in.")
	} else if u, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "%s <%s>\n", u.Username, u.Email)
		if u.Bio != "" {
			fmt.Fprintln(a.out, u.Bio)
		}
	} else {
		fmt.Fprintln(a.out, "Signed in; your profile is still loading.")
	}

	if !verbose {
		return nil
	}
	stored, err := a.session.Stored(ctx)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(stored))
	for k := range stored {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(a.out, "Stored locally:")
	for _, k := range keys {
		fmt.Fprintf(a.out, "  %s = %s\n", k, stored[k])
	}
	return nil
}

// Settings edits the account. Every prompt defaults to the current value;
// an empty password keeps the existing one.
func (a *App) Settings(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotSignedIn
	}
	u, ok := a.session.User()
	if !ok {
		return errors.New("your profile is still loading, try again")
	}
	upd := models.UpdateFrom(u)

	var err error
	if upd.Image, err = GetTextWithDefault(a.reader, "URL of profile picture", upd.Image, a.out); err != nil {
		return err
	}
	if upd.Username, err = GetTextWithDefault(a.reader, "Username", upd.Username, a.out); err != nil {
		return err
	}
	bio, err := GetMultiline(a.reader, "Short bio about you (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	if bio != "" {
		upd.Bio = bio
	}
	if upd.Email, err = GetTextWithDefault(a.reader, "Email", upd.Email, a.out); err != nil {
		return err
	}
	if upd.Password, err = getPassword(a.out, "New password (empty keeps the current one)"); err != nil {
		return err
	}

	user, err := a.session.UpdateUser(ctx, upd)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Settings saved for %s.\n", user.Username)
	return nil
}
