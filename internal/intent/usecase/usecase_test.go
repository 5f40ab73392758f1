package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ecoavobot/internal/intent"
	"ecoavobot/internal/intent/engine"
	"ecoavobot/internal/intent/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	mu       sync.Mutex
	loadFunc func() (intent.Catalog, error)
}

func (r *mockRepo) Load(ctx context.Context) (intent.Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadFunc()
}

func (r *mockRepo) Source() string { return "mock" }

func (r *mockRepo) set(fn func() (intent.Catalog, error)) {
	r.mu.Lock()
	r.loadFunc = fn
	r.mu.Unlock()
}

type firstSelector struct{}

func (firstSelector) Pick(responses []string) (string, bool) {
	if len(responses) == 0 {
		return "", false
	}
	return responses[0], true
}

type panicSelector struct{}

func (panicSelector) Pick([]string) (string, bool) { panic("selector exploded") }

func ecoCatalog() intent.Catalog {
	return intent.Catalog{Intents: []intent.Intent{
		{Tag: "greeting", Patterns: []string{"ciao", "buongiorno"}, Responses: []string{"Ciao! Come posso aiutarti?"}},
		{Tag: "recycling", Patterns: []string{"come riciclo la plastica", "dove butto il vetro"}, Responses: []string{"Nel contenitore giallo."}},
		{Tag: "reuse", Patterns: []string{"come riutilizzo i barattoli"}, Responses: []string{"Usali come contenitori."}},
	}}
}

func testConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Selector = firstSelector{}
	return cfg
}

func okRepo(c intent.Catalog) *mockRepo {
	return &mockRepo{loadFunc: func() (intent.Catalog, error) { return c, nil }}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Before Reload Is Unresolved", func(t *testing.T) {
		uc, err := usecase.New(okRepo(ecoCatalog()), testConfig(), &mockLogger{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := uc.Classify(ctx, intent.ClassifyInput{Message: "ciao"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Resolved() || out.Confidence != 0 {
			t.Errorf("expected unresolved with zero confidence, got %+v", out)
		}
		if out.Answer != intent.DefaultFallbackMessage {
			t.Errorf("expected fallback answer, got %q", out.Answer)
		}
	})

	t.Run("Matched After Reload", func(t *testing.T) {
		uc, _ := usecase.New(okRepo(ecoCatalog()), testConfig(), &mockLogger{})
		if _, err := uc.Reload(ctx); err != nil {
			t.Fatalf("unexpected reload error: %v", err)
		}
		out, err := uc.Classify(ctx, intent.ClassifyInput{Message: "Ciao!!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tag != "greeting" || out.Answer != "Ciao! Come posso aiutarti?" {
			t.Errorf("unexpected output: %+v", out)
		}
		if out.Confidence < 0.8 {
			t.Errorf("expected confidence >= 0.8, got %v", out.Confidence)
		}
		if out.Outcome != intent.OutcomeMatched {
			t.Errorf("expected matched, got %s", out.Outcome)
		}
	})

	t.Run("Too Short", func(t *testing.T) {
		uc, _ := usecase.New(okRepo(ecoCatalog()), testConfig(), &mockLogger{})
		_, _ = uc.Reload(ctx)
		out, err := uc.Classify(ctx, intent.ClassifyInput{Message: "a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != intent.OutcomeTooShort || out.Tag != "" || out.Confidence != 0 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Panic Becomes Internal Error", func(t *testing.T) {
		cfg := testConfig()
		cfg.Selector = panicSelector{}
		uc, _ := usecase.New(okRepo(ecoCatalog()), cfg, &mockLogger{})
		_, _ = uc.Reload(ctx)

		out, err := uc.Classify(ctx, intent.ClassifyInput{Message: "ciao"})
		if !errors.Is(err, intent.ErrComputationFailed) {
			t.Fatalf("expected ErrComputationFailed, got %v", err)
		}
		if out.Outcome != intent.OutcomeInternalError || out.Answer != intent.DefaultInternalErrorMessage {
			t.Errorf("unexpected output: %+v", out)
		}
		if out.Resolved() {
			t.Errorf("expected no tag, got %q", out.Tag)
		}
	})
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = "unknown"
	if _, err := usecase.New(okRepo(ecoCatalog()), cfg, &mockLogger{}); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestReload(t *testing.T) {
	ctx := context.Background()

	t.Run("Reports Counts", func(t *testing.T) {
		uc, _ := usecase.New(okRepo(ecoCatalog()), testConfig(), &mockLogger{})
		out, err := uc.Reload(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intents != 3 || out.Patterns != 5 {
			t.Errorf("expected 3 intents / 5 patterns, got %+v", out)
		}
	})

	t.Run("Failure Keeps Previous Engine", func(t *testing.T) {
		repo := okRepo(ecoCatalog())
		uc, _ := usecase.New(repo, testConfig(), &mockLogger{})
		if _, err := uc.Reload(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		loadErr := errors.New("disk on fire")
		repo.set(func() (intent.Catalog, error) { return intent.Catalog{}, loadErr })

		if _, err := uc.Reload(ctx); !errors.Is(err, loadErr) {
			t.Fatalf("expected load error, got %v", err)
		}
		out, _ := uc.Classify(ctx, intent.ClassifyInput{Message: "dove butto il vetro"})
		if out.Tag != "recycling" {
			t.Errorf("expected previous engine to answer, got %+v", out)
		}
	})

	t.Run("Invalid Catalog Keeps Previous Engine", func(t *testing.T) {
		repo := okRepo(ecoCatalog())
		uc, _ := usecase.New(repo, testConfig(), &mockLogger{})
		_, _ = uc.Reload(ctx)

		repo.set(func() (intent.Catalog, error) {
			return intent.Catalog{Intents: []intent.Intent{{Tag: "broken"}}}, nil
		})
		if _, err := uc.Reload(ctx); !errors.Is(err, intent.ErrInvalidCatalog) {
			t.Fatalf("expected ErrInvalidCatalog, got %v", err)
		}
		list, _ := uc.ListIntents(ctx, intent.ListIntentsInput{})
		if list.Total != 3 {
			t.Errorf("expected previous 3 intents, got %d", list.Total)
		}
	})

	t.Run("Swap Is Visible", func(t *testing.T) {
		repo := okRepo(ecoCatalog())
		uc, _ := usecase.New(repo, testConfig(), &mockLogger{})
		_, _ = uc.Reload(ctx)

		repo.set(func() (intent.Catalog, error) {
			return intent.Catalog{Intents: []intent.Intent{
				{Tag: "energy", Patterns: []string{"risparmiare energia"}, Responses: []string{"Spegni le luci."}},
			}}, nil
		})
		if _, err := uc.Reload(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, _ := uc.Classify(ctx, intent.ClassifyInput{Message: "come risparmiare energia"})
		if out.Tag != "energy" {
			t.Errorf("expected energy, got %+v", out)
		}
		out, _ = uc.Classify(ctx, intent.ClassifyInput{Message: "dove butto il vetro"})
		if out.Resolved() {
			t.Errorf("expected old intents to be gone, got %+v", out)
		}
	})
}

func TestListIntents(t *testing.T) {
	ctx := context.Background()
	uc, _ := usecase.New(okRepo(ecoCatalog()), testConfig(), &mockLogger{})
	_, _ = uc.Reload(ctx)

	t.Run("All In Catalog Order", func(t *testing.T) {
		out, err := uc.ListIntents(ctx, intent.ListIntentsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"greeting", "recycling", "reuse"}
		if out.Total != len(want) {
			t.Fatalf("expected %d intents, got %d", len(want), out.Total)
		}
		for i, tag := range want {
			if out.Intents[i].Tag != tag {
				t.Errorf("position %d: expected %s, got %s", i, tag, out.Intents[i].Tag)
			}
		}
		if out.Intents[1].PatternCount != 2 || out.Intents[1].ResponseCount != 1 {
			t.Errorf("unexpected counts: %+v", out.Intents[1])
		}
	})

	t.Run("Fuzzy Filter", func(t *testing.T) {
		out, _ := uc.ListIntents(ctx, intent.ListIntentsInput{Query: "rcy"})
		if out.Total != 1 || out.Intents[0].Tag != "recycling" {
			t.Errorf("expected only recycling, got %+v", out.Intents)
		}
	})

	t.Run("No Match", func(t *testing.T) {
		out, _ := uc.ListIntents(ctx, intent.ListIntentsInput{Query: "zzz"})
		if out.Total != 0 {
			t.Errorf("expected no intents, got %+v", out.Intents)
		}
	})
}
