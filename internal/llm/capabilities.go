package llm

import "strings"

// TemperatureRule describes what sampling temperature a model family
// accepts. Rules replace inline model-name checks at call sites: adding a
// model variant means adding a table entry, not touching providers.
type TemperatureRule struct {
	// Fixed, when >= 0, is the only temperature the model accepts;
	// requested values are overridden.
	Fixed float64

	// Max caps the requested temperature. Ignored when Fixed >= 0.
	Max float64
}

// temperatureRules maps model-ID prefixes to sampling constraints.
// Longest matching prefix wins. The gpt-5 family rejects any temperature
// other than the default, so it is pinned.
var temperatureRules = map[string]TemperatureRule{
	"gpt-5":  {Fixed: 1},
	"o1":     {Fixed: 1},
	"o3":     {Fixed: 1},
	"o4":     {Fixed: 1},
	"claude": {Fixed: -1, Max: 1},
	"gemini": {Fixed: -1, Max: 2},
}

// EffectiveTemperature resolves the temperature to actually send for the
// given model. Unknown models pass the requested value through unchanged.
func EffectiveTemperature(modelID string, requested float64) float64 {
	rule, ok := lookupTemperatureRule(modelID)
	if !ok {
		return requested
	}
	if rule.Fixed >= 0 {
		return rule.Fixed
	}
	if rule.Max > 0 && requested > rule.Max {
		return rule.Max
	}
	return requested
}

func lookupTemperatureRule(modelID string) (TemperatureRule, bool) {
	var (
		best    TemperatureRule
		bestLen = -1
	)
	for prefix, rule := range temperatureRules {
		if strings.HasPrefix(modelID, prefix) && len(prefix) > bestLen {
			best = rule
			bestLen = len(prefix)
		}
	}
	return best, bestLen >= 0
}
