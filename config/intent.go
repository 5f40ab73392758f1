package config

import (
	"ecoavobot/internal/intent"
	"ecoavobot/internal/intent/engine"
)

// IntentMessages returns the configured replies, blanks filled with the built-in ones.
func (c *Config) IntentMessages() intent.Messages {
	return intent.Messages{
		Empty:         c.Messages.Empty,
		TooShort:      c.Messages.TooShort,
		Fallback:      c.Messages.Fallback,
		Apology:       c.Messages.Apology,
		InternalError: c.Messages.InternalError,
	}.WithDefaults()
}

// EngineConfig maps the matching section onto the engine's settings.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Strategy:          c.Matching.Strategy,
		FallbackStrategy:  c.Matching.FallbackStrategy,
		Threshold:         c.Matching.Threshold,
		FallbackThreshold: c.Matching.FallbackThreshold,
		MinMessageLength:  c.Matching.MinMessageLength,
		GreetingTag:       c.Matching.GreetingTag,
		GreetingKeywords:  c.Matching.GreetingKeywords,
		Messages:          c.IntentMessages(),
		Selector:          engine.NewRandomSelector(c.Matching.Seed),
	}
}
