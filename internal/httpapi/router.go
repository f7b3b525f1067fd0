package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	// Listing view
	lh := ListingHandler{Refresher: d.Refresher, Store: d.Store, Levels: d.Levels}
	mux.HandleFunc("/internships", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.List,
	}))

	// Refresh
	rh := RefreshHandler{Refresher: d.Refresher, CfgVal: d.CfgVal}
	mux.HandleFunc("/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))
	mux.HandleFunc("/refresh/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Status,
	}))

	// Applied flags
	ah := AppliedHandler{Store: d.Store, Hub: d.Hub}
	mux.HandleFunc("/applied/", methodMux(map[string]http.HandlerFunc{
		http.MethodPut: ah.PutByPath, // expects /applied/{company}
	}))

	// UI preferences
	ph := PrefsHandler{Store: d.Store, Hub: d.Hub}
	mux.HandleFunc("/prefs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Get,
		http.MethodPut: ph.Put,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
