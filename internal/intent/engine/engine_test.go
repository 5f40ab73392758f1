package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoavobot/internal/intent"
)

type firstSelector struct{}

func (firstSelector) Pick(responses []string) (string, bool) {
	if len(responses) == 0 {
		return "", false
	}
	return responses[0], true
}

type emptySelector struct{}

func (emptySelector) Pick([]string) (string, bool) { return "", false }

func testCatalog() intent.Catalog {
	return intent.Catalog{Intents: []intent.Intent{
		{
			Tag:       "greeting",
			Patterns:  []string{"ciao", "buongiorno", "salve come stai"},
			Responses: []string{"Ciao! Come posso aiutarti?"},
		},
		{
			Tag:       "recycling",
			Patterns:  []string{"come posso riciclare la plastica", "dove butto il vetro", "cos'è la raccolta differenziata"},
			Responses: []string{"Separa plastica, vetro e carta.", "Controlla il calendario del tuo comune."},
		},
		{
			Tag:       "energy",
			Patterns:  []string{"come risparmiare energia in casa", "consigli per ridurre la bolletta della luce"},
			Responses: []string{"Usa lampadine LED e spegni lo standby."},
		},
		{
			Tag:       "goodbye",
			Patterns:  []string{"arrivederci", "grazie ciao a presto"},
			Responses: []string{"A presto!"},
		},
	}}
}

func newTestEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Selector = firstSelector{}
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := New(testCatalog(), cfg)
	require.NoError(t, err)
	return e
}

func TestClassifyExactPatternReturnsOwner(t *testing.T) {
	e := newTestEngine(t, nil)

	for _, it := range testCatalog().Intents {
		for _, p := range it.Patterns {
			got := e.Classify(p)
			assert.Equal(t, it.Tag, got.Tag, "pattern %q", p)
			assert.Equal(t, intent.OutcomeMatched, got.Outcome, "pattern %q", p)
			assert.GreaterOrEqual(t, got.Confidence, 0.3, "pattern %q", p)
			assert.InDelta(t, 1.0, got.Confidence, 1e-9, "pattern %q", p)
		}
	}
}

func TestClassifyGreetingScenario(t *testing.T) {
	e := newTestEngine(t, nil)

	got := e.Classify("Ciao!!")

	assert.Equal(t, "greeting", got.Tag)
	assert.GreaterOrEqual(t, got.Confidence, 0.8)
	assert.Equal(t, "Ciao! Come posso aiutarti?", got.Answer)
	assert.Equal(t, StrategyVector, got.Strategy)
}

func TestClassifyGreetingSingleIntentCatalog(t *testing.T) {
	catalog := intent.Catalog{Intents: []intent.Intent{{
		Tag:       "greeting",
		Patterns:  []string{"ciao"},
		Responses: []string{"Ciao! Come posso aiutarti?"},
	}}}
	cfg := DefaultConfig()
	cfg.Selector = firstSelector{}
	e, err := New(catalog, cfg)
	require.NoError(t, err)

	got := e.Classify("Ciao!!")

	assert.Equal(t, "greeting", got.Tag)
	assert.Equal(t, intent.OutcomeMatched, got.Outcome)
	assert.GreaterOrEqual(t, got.Confidence, 0.8)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
	assert.Equal(t, "Ciao! Come posso aiutarti?", got.Answer)
}

func TestClassifyInputValidation(t *testing.T) {
	e := newTestEngine(t, nil)

	tests := []struct {
		name    string
		message string
		outcome intent.Outcome
		answer  string
	}{
		{name: "empty", message: "", outcome: intent.OutcomeEmptyMessage, answer: intent.DefaultEmptyMessage},
		{name: "blank", message: "   \n", outcome: intent.OutcomeEmptyMessage, answer: intent.DefaultEmptyMessage},
		{name: "single char", message: "a", outcome: intent.OutcomeTooShort, answer: intent.DefaultTooShortMessage},
		{name: "single char padded", message: "  è  ", outcome: intent.OutcomeTooShort, answer: intent.DefaultTooShortMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Classify(tt.message)
			assert.Empty(t, got.Tag)
			assert.Zero(t, got.Confidence)
			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.answer, got.Answer)
		})
	}
}

func TestClassifyUnrelatedMessageIsUnresolved(t *testing.T) {
	e := newTestEngine(t, nil)

	got := e.Classify("xyzzy qwerty zork")

	assert.Empty(t, got.Tag)
	assert.Zero(t, got.Confidence)
	assert.Equal(t, intent.OutcomeUnresolved, got.Outcome)
	assert.Equal(t, intent.DefaultFallbackMessage, got.Answer)
}

func TestClassifyEmptyCatalogAlwaysUnresolved(t *testing.T) {
	cfg := DefaultConfig()
	e, err := New(intent.Catalog{}, cfg)
	require.NoError(t, err)

	for _, msg := range []string{"ciao", "come riciclo la plastica?", "a", "", "hey there"} {
		got := e.Classify(msg)
		assert.Empty(t, got.Tag, "message %q", msg)
		assert.Zero(t, got.Confidence, "message %q", msg)
		assert.False(t, got.Outcome == intent.OutcomeMatched, "message %q", msg)
	}
	assert.Zero(t, e.Entries())
}

func TestClassifyKeywordFallback(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.Threshold = 0.95 })

	got := e.Classify("riciclare plastica")

	assert.Equal(t, "recycling", got.Tag)
	assert.Equal(t, intent.OutcomeFallbackMatched, got.Outcome)
	assert.Equal(t, StrategyKeyword, got.Strategy)
	assert.InDelta(t, 1.0, got.Confidence, 1e-12)
	assert.Equal(t, "Separa plastica, vetro e carta.", got.Answer)
}

func TestClassifyFallbackDisabledReportsBestScore(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.Threshold = 0.95
		c.FallbackStrategy = StrategyNone
		c.GreetingKeywords = nil
	})

	got := e.Classify("riciclare plastica")

	assert.Empty(t, got.Tag)
	assert.Equal(t, intent.OutcomeUnresolved, got.Outcome)
	assert.Greater(t, got.Confidence, 0.0)
	assert.Less(t, got.Confidence, 0.95)

	primary, fallback := e.Strategies()
	assert.Equal(t, StrategyVector, primary)
	assert.Equal(t, StrategyNone, fallback)
}

func TestClassifyGreetingWhitelist(t *testing.T) {
	e := newTestEngine(t, nil)

	got := e.Classify("hey!")

	assert.Equal(t, "greeting", got.Tag)
	assert.Equal(t, intent.OutcomeGreetingMatched, got.Outcome)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
	assert.Equal(t, "Ciao! Come posso aiutarti?", got.Answer)

	// One greeting among two unknown-to-the-catalog tokens.
	got = e.Classify("hey tu")
	assert.Equal(t, "greeting", got.Tag)
	assert.Equal(t, intent.OutcomeGreetingMatched, got.Outcome)
	assert.InDelta(t, 0.5, got.Confidence, 1e-9)
}

func TestClassifyGreetingWhitelistNeedsGreetingIntent(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.GreetingTag = "saluti" })

	got := e.Classify("hey!")

	assert.Empty(t, got.Tag)
	assert.Equal(t, intent.OutcomeUnresolved, got.Outcome)
}

func TestClassifyKeywordPrimaryStrategy(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.Strategy = StrategyKeyword
		c.FallbackStrategy = StrategyVector
		c.Threshold = 0.5
	})

	got := e.Classify("Dove butto il vetro?")

	assert.Equal(t, "recycling", got.Tag)
	assert.Equal(t, intent.OutcomeMatched, got.Outcome)
	assert.Equal(t, StrategyKeyword, got.Strategy)
	assert.InDelta(t, 1.0, got.Confidence, 1e-12)
}

func TestClassifyTiesGoToFirstIntent(t *testing.T) {
	catalog := intent.Catalog{Intents: []intent.Intent{
		{Tag: "first", Patterns: []string{"ciao"}, Responses: []string{"uno"}},
		{Tag: "second", Patterns: []string{"ciao"}, Responses: []string{"due"}},
	}}
	cfg := DefaultConfig()
	cfg.Selector = firstSelector{}
	e, err := New(catalog, cfg)
	require.NoError(t, err)

	got := e.Classify("ciao")
	assert.Equal(t, "first", got.Tag)
	assert.Equal(t, "uno", got.Answer)
}

func TestClassifySelectorWithoutAnswerApologizes(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.Selector = emptySelector{} })

	got := e.Classify("ciao")

	assert.Equal(t, "greeting", got.Tag)
	assert.Equal(t, intent.DefaultApologyMessage, got.Answer)
}

func TestClassifyCustomMessages(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.Messages = intent.Messages{Fallback: "Puoi ripetere?"}
	})

	assert.Equal(t, "Puoi ripetere?", e.Classify("xyzzy qwerty").Answer)
	assert.Equal(t, intent.DefaultTooShortMessage, e.Classify("x").Answer)
}

func TestNewRejectsBadInput(t *testing.T) {
	t.Run("unknown strategy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Strategy = "neural"
		_, err := New(testCatalog(), cfg)
		assert.Error(t, err)
	})

	t.Run("unknown fallback strategy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.FallbackStrategy = "neural"
		_, err := New(testCatalog(), cfg)
		assert.Error(t, err)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		for _, th := range []float64{0, -0.1, 1.5} {
			cfg := DefaultConfig()
			cfg.Threshold = th
			_, err := New(testCatalog(), cfg)
			assert.Error(t, err, "threshold %v", th)
		}
	})

	t.Run("min message length below two", func(t *testing.T) {
		for _, n := range []int{0, 1} {
			cfg := DefaultConfig()
			cfg.MinMessageLength = n
			_, err := New(testCatalog(), cfg)
			assert.Error(t, err, "min length %d", n)
		}
	})

	t.Run("invalid catalog", func(t *testing.T) {
		_, err := New(intent.Catalog{Intents: []intent.Intent{{Tag: "x"}}}, DefaultConfig())
		assert.True(t, errors.Is(err, intent.ErrInvalidCatalog))
	})
}

func TestEngineAccessors(t *testing.T) {
	e := newTestEngine(t, nil)

	assert.Equal(t, 10, e.Entries())
	assert.Equal(t, 10, e.Model().Documents())

	intents := e.Intents()
	require.Len(t, intents, 4)
	intents[0].Tag = "mutated"
	assert.Equal(t, "greeting", e.Intents()[0].Tag)
}

func TestClassifyIsSafeForConcurrentUse(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.Selector = NewRandomSelector(42) })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := e.Classify("come posso riciclare la plastica")
				if got.Tag != "recycling" {
					t.Errorf("expected recycling, got %q", got.Tag)
					return
				}
			}
		}()
	}
	wg.Wait()
}
