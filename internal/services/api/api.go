// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"
	"time"

	"honest/internal/core/lexicon"
	"honest/internal/modkit/httpkit"
	"honest/internal/modkit/swaggerkit"
	"honest/internal/platform/config"
	phttp "honest/internal/platform/net/http"
	"honest/internal/platform/store"

	checkerhttp "honest/internal/services/checker/http"
	checkersvc "honest/internal/services/checker/service"
	sessionhttp "honest/internal/services/session/http"
	sessionsvc "honest/internal/services/session/service"
	settingshttp "honest/internal/services/settings/http"
	settingsrepo "honest/internal/services/settings/repo"
	settingssvc "honest/internal/services/settings/service"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Lexicon       *lexicon.Pack
	Debounce      time.Duration
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	lex := opt.Lexicon
	if lex == nil {
		lex = lexicon.MustLoad()
	}

	checker := checkersvc.New(lex)
	sessions := sessionsvc.NewManager(lex, opt.Debounce)

	r.Get("/healthz", phttp.Handle(func(*stdhttp.Request) phttp.Response {
		return phttp.OK(map[string]string{"status": "ok"})
	}))

	swaggerkit.Mount(r, opt.EnableSwagger)

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		checkerhttp.Register(api, checker)
		if opt.Store != nil && opt.Store.PG != nil {
			settingshttp.Register(api, settingssvc.New(opt.Store.PG, settingsrepo.NewPG()))
		}
	})

	// the websocket endpoint mounts outside the common stack so the
	// request timeout middleware cannot kill long-lived sessions
	sessionhttp.Register(r, "/api/v1/session/ws", sessions)
}
