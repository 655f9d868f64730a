package cmd

import (
	"os"

	"github.com/histdl/histdl/internal/config"
	"github.com/histdl/histdl/internal/panel"
	"github.com/histdl/histdl/pkg/histlib"
	"github.com/histdl/histdl/pkg/logger"
)

// appEnv bundles the configuration, store and panel every command
// works against. Commands build one per invocation.
type appEnv struct {
	cfg   *config.Config
	log   logger.Logger
	store *histlib.Store
	panel *panel.Panel
}

func newEnv() (*appEnv, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	log := logger.NewLogrus(os.Stderr, cfg.App.Debug)
	store := histlib.NewStore(&histlib.StoreOpts{
		FileName: cfg.History.File,
		PageSize: cfg.History.PageSize,
		Logger:   log,
	})
	loc := panel.NewLocalization()
	loc.SetLanguage(cfg.App.Language)
	p := panel.NewPanel(store, &panel.PanelOpts{
		Localization: loc,
		Logger:       log,
	})
	return &appEnv{cfg: cfg, log: log, store: store, panel: p}, nil
}

// text looks up a localized panel label.
func (e *appEnv) text(key string) string {
	return e.panel.Localization().GetText(key)
}

// applyView reproduces the view the list command would print for the
// given flags, so row numbers entered by the user resolve against the
// same rows they saw.
func (e *appEnv) applyView(search string, pages int, all bool) {
	if all {
		for e.panel.CanLoadMore() {
			e.panel.LoadMore()
		}
	} else {
		for i := 1; i < pages; i++ {
			e.panel.LoadMore()
		}
	}
	e.panel.SetSearch(search)
}
