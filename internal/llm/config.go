// Package llm provides the structured-extraction client abstraction and
// its Gemini implementation. The rest of the system treats the model as
// an opaque service that accepts a text prompt and returns JSON.
package llm

// ModelTier represents the capability level requested for a call.
type ModelTier string

const (
	// TierLite is for cheap classification-style calls.
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction over page text.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the application.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the
// standard tier when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	clone := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		clone.Models[k] = v
	}
	clone.Models[tier] = model
	return clone
}
