// @title         Honest API
// @version       0.1.0
// @description   Writing-quality analysis endpoints and live check sessions

package main

import (
	"context"

	"honest/internal/platform/config"
	"honest/internal/platform/logger"
	phttp "honest/internal/platform/net/http"
	"honest/internal/platform/store"

	"honest/internal/services/api"

	"github.com/joho/godotenv"
)

func main() {
	// optional .env for local development, real envs win
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("HONEST_API_")
	pgCfg := root.Prefix("HONEST_PGSQL_")

	l := logger.Get()

	// settings persistence is optional, the analysis API runs without it
	var st *store.Store
	if pgCfg.MayBool("ENABLED", false) {
		var err error
		st, err = store.Open(
			context.Background(),
			store.Config{
				PG: store.PGConfig{
					Enabled:     true,
					URL:         pgCfg.MustString("DBURL"),
					MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
					SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
					LogSQL:      pgCfg.MayBool("LOG_SQL", false),
				},
			},
			store.WithLogger(*l),
		)
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
	}

	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Debounce:      apiCfg.MayDuration("DEBOUNCE", 0),
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
