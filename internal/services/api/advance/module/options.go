package module

import (
	"driptime/internal/core/hydraulic"
	"driptime/internal/platform/config"
	advsvc "driptime/internal/services/api/advance/service"
)

// FromConfig reads the service defaults from the ADVANCE_ namespace.
// Unset keys leave the core model defaults in effect.
func FromConfig(cfg config.Conf) advsvc.Options {
	c := cfg.Prefix("ADVANCE_")
	return advsvc.Options{
		DefaultVariant: hydraulic.Variant(c.MayString("VARIANT", string(hydraulic.VariantSegmented))),
		Resolution:     c.MayInt("RESOLUTION", 0),
		TimeDecay:      c.MayFloat64("TIME_DECAY", 0),
		HeadDecay:      c.MayFloat64("HEAD_DECAY", 0),
	}
}
