package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/storage"
)

type InitCmd struct{}

func (cmd *InitCmd) Run(ctx *Context) error {
	if ctx.Store == nil {
		return fmt.Errorf("no store path configured; set store_path in the config or pass --store")
	}

	sqlStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return fmt.Errorf("init only applies to the sqlite calendar store")
	}

	if err := sqlStore.Init(); err != nil {
		return err
	}

	fmt.Println(okStyle.Render("✓") + " calendar store initialized at " + sqlStore.Path())
	return nil
}
