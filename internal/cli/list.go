package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {
	if err := a.store.ListAll(ctx, a.out); err != nil {
		a.log.Error(ctx, "listing users failed", "error", err)
		fmt.Fprintln(a.out, "List failed:", err.Error())
		return err
	}
	return nil
}
