package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sharebox/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login builds credentials from the configured API key, the configured or
// prompted email and a prompted password, then authenticates. A successful
// login replaces the app's session wholesale.
func (a *App) Login(ctx context.Context) error {
	email := a.config.Email
	if email == "" {
		var err error
		email, err = getSimpleText(a.reader, "Enter email", os.Stdout)
		if err != nil {
			return err
		}
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	creds, err := api.NewCredentials(a.config.APIKey, email, password)
	if err != nil {
		printlnFn("Invalid credentials:", err.Error())
		return err
	}

	session, err := newSessionFn(a.config, creds, a.log)
	if err != nil {
		return err
	}

	if _, err := session.Login(ctx); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.session = session
	if u := session.User(); u != nil {
		printlnFn(fmt.Sprintf("Welcome, %s!", u.FullName))
	} else {
		printlnFn("Logged in.")
	}
	return nil
}

// Whoami fetches a fresh user snapshot and prints it with storage usage.
func (a *App) Whoami(ctx context.Context) error {
	u, err := a.session.MyUserData(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("%s <%s>: %d of %d bytes used", u.FullName, u.Email, u.StorageUsed, u.StorageLimit))
	return nil
}
