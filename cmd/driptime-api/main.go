// @title         Driptime API
// @version       0.1.0
// @description   Advance time and head loss calculations for drip irrigation laterals

package main

import (
	"context"

	"driptime/internal/platform/config"
	"driptime/internal/platform/logger"
	phttp "driptime/internal/platform/net/http"

	"driptime/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (DRIPTIME_API_*)
	root := config.New()
	apiCfg := root.Prefix("DRIPTIME_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads DRIPTIME_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
