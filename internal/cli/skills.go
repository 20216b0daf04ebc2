package cli

// Built-in skills register their actions with sdk.DefaultRegistry.
import (
	_ "github.com/viveksalimath/Lemo.ai/internal/skills/timer"
)
