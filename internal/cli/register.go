package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userreg/internal/common"
)

func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	ok, err := a.store.Register(ctx, userName, email, password)
	if err != nil {
		a.log.Error(ctx, "registration failed", "username", userName, "error", err)
		fmt.Fprintln(a.out, "Registration failed:", err.Error())
		return err
	}

	if !ok {
		fmt.Fprintln(a.out, "User already exists")
		return common.ErrorAlreadyExists
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}
