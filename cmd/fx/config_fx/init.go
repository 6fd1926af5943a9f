package config_fx

import (
	"go.uber.org/fx"

	"cityinfo/internal/config"
)

var Module = fx.Provide(config.Load)
