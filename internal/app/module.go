package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.momo.enabled") {
		closer, err := momo.New(momo.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
		})
		if err != nil {
			slog.Error("failed to init module momo", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Momo"] = closer
		}
	}
}
