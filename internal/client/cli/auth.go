package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/alertaverde/internal/client/client"
	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/client/notify"
	"github.com/dmitrijs2005/alertaverde/internal/client/services"
	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/validatex"
)

const (
	msgServerError    = "Error connecting to the server."
	msgBadCredentials = "Incorrect e-mail or password!"
)

var (
	errWeakPassword     = errors.New("password too weak")
	errPasswordMismatch = errors.New("passwords do not match")
	errInvalidEmail     = errors.New("invalid e-mail")
)

// Register prompts for name, e-mail, password (twice) and an optional
// default city, then creates the account. Logging in is a separate step.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	name = Sanitize(name)

	email, err := getSimpleText(a.reader, "Enter e-mail", a.out)
	if err != nil {
		return err
	}
	if !validatex.Email(email) {
		a.notifier.Show("Enter a valid e-mail address.", notify.Error)
		return errInvalidEmail
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	score := PasswordStrength(password)
	fmt.Fprintf(a.out, "Password strength: %s\n", strengthLabel(score))
	if score < minPasswordStrength {
		a.notifier.Show("Password too weak. Mix upper and lower case, digits and symbols.", notify.Error)
		return errWeakPassword
	}

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		a.notifier.Show("Passwords do not match.", notify.Error)
		return errPasswordMismatch
	}

	city, err := getSimpleText(a.reader, fmt.Sprintf("Default city (empty for %s)", a.config.DefaultCity), a.out)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{
		Name:        name,
		Email:       email,
		Password:    string(password),
		DefaultCity: Sanitize(city),
	}
	if err := a.auth.Register(ctx, req); err != nil {
		a.log.Warn(ctx, "registration failed", "error", err)
		a.notifier.Show(errorMessage(err, "Error registering user."), notify.Error)
		return err
	}

	a.notifier.Show("Registration successful! Log in to continue.", notify.Success)
	return nil
}

// Login authenticates, persists the session and loads the dashboard: the
// weather for the user's default city and the crop list.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter e-mail", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		a.notifier.Show(errorMessage(err, msgBadCredentials), notify.Error)
		return err
	}

	a.setUser(user)
	a.setMode(ModeOnline)
	a.notifier.Show(fmt.Sprintf("Welcome, %s!", user.Name), notify.Success)

	a.dashboard(ctx)
	return nil
}

// Restore brings back a stored session at startup. A rejected token clears
// the session; an unreachable backend keeps it and works from the cached
// profile in offline mode.
func (a *App) Restore(ctx context.Context) {
	user, err := a.auth.Restore(ctx)
	switch {
	case err == nil:
		a.setUser(user)
		a.setMode(ModeOnline)
		a.notifier.Show(fmt.Sprintf("Welcome back, %s!", user.Name), notify.Success)
		a.dashboard(ctx)

	case errors.Is(err, services.ErrNoSession):

	case errors.Is(err, services.ErrSessionExpired):
		a.notifier.Show("Session expired. Please log in again.", notify.Warning)

	case errors.Is(err, client.ErrUnavailable) && user != nil:
		a.setUser(user)
		a.setMode(ModeOffline)
		a.dashboard(ctx)

	default:
		a.log.Error(ctx, "restore session", "error", err)
	}
}

// Logout forgets the session locally; it never needs the network.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout", "error", err)
		return err
	}
	a.setUser(nil)
	a.notifier.Show("Logged out.", notify.Info)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.currentUser()
	if u == nil {
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\nDefault city: %s\nMode: %s\n", u.Name, u.Email, u.City(a.config.DefaultCity), a.Mode())
	return nil
}

func (a *App) dashboard(ctx context.Context) {
	_ = a.Weather(ctx, "")
	_ = a.Crops(ctx)
}

// errorMessage picks what to tell the user about a backend failure.
func errorMessage(err error, fallback string) string {
	var appErr *common.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return msgServerError
	default:
		return client.MessageOr(err, fallback)
	}
}
