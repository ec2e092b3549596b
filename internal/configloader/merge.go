package configloader

import (
	"maps"

	"github.com/yaklabco/lyqlplay/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Theme: deep merge, with override's colors taking precedence
//   - Debug: can only be switched on by a higher layer
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Language != "" {
		result.Language = override.Language
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.OnError != "" {
		result.OnError = override.OnError
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Debug {
		result.Debug = true
	}

	result.Theme = mergeTheme(base.Theme, override.Theme)

	return &result
}

// mergeTheme returns a new map holding base's colors overlaid with override's.
func mergeTheme(base, override map[string]string) map[string]string {
	result := make(map[string]string, len(base)+len(override))
	maps.Copy(result, base)
	maps.Copy(result, override)
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
