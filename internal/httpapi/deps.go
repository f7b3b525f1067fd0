package httpapi

import (
	"sync/atomic"

	"interning-engine/internal/config"
	"interning-engine/internal/events"
	"interning-engine/internal/levels"
	"interning-engine/internal/refresh"
	"interning-engine/internal/store"
)

type Deps struct {
	Store *store.DB

	Hub *events.Hub

	Refresher *refresh.Refresher

	Levels *levels.Table

	// Reloadable config snapshot
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
