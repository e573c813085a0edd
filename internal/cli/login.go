package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelkovs/fleetdesk/internal/common"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Invalid email or password")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", user.Email, user.Role)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out")
}
