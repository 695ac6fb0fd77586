// Package api provides the HTTP API for the application
package api

import (
	"driptime/internal/platform/config"
	"driptime/internal/platform/logger"
	phttp "driptime/internal/platform/net/http"

	"driptime/internal/modkit"
	"driptime/internal/modkit/httpkit"
	"driptime/internal/modkit/module"
	"driptime/internal/modkit/swaggerkit"

	advancemod "driptime/internal/services/api/advance/module"
	metamod "driptime/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		advancemod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler live off the versioned prefix
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
