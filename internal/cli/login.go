package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userreg/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	ok, err := a.store.Authenticate(ctx, userName, password)
	if err != nil {
		a.log.Error(ctx, "authentication error", "username", userName, "error", err)
		fmt.Fprintln(a.out, "Login failed:", err.Error())
		return err
	}

	if !ok {
		fmt.Fprintln(a.out, "Invalid login/password")
		return common.ErrorInvalidLoginPassword
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if a.userName != "" {
		a.log.Debug(ctx, "logged out", "username", a.userName)
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
