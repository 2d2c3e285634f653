package ai

import (
	"fmt"
	"sync"
	"time"

	"studyblog/config"
	"studyblog/logger"
)

// Factory selects and memoizes the process-wide assist provider. It is
// constructed once by the application entry point and passed to whoever
// needs a provider; there is no package-level instance.
//
// 선택된 provider 의 자격 증명이 없거나 생성에 실패하면 경고만 남기고
// mock provider 로 대체한다. Service() 는 절대 실패하지 않는다.
type Factory struct {
	cfg config.AIConfig

	mu  sync.Mutex
	svc Service
}

// NewFactory returns a factory for the given AI configuration.
func NewFactory(cfg config.AIConfig) *Factory {
	return &Factory{cfg: cfg}
}

// Service returns the configured provider, constructing it on first use.
// Credential absence or construction failure degrades to the mock provider;
// the caller never observes a construction error.
func (f *Factory) Service() Service {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.svc != nil {
		return f.svc
	}

	kind := ProviderKind(f.cfg.Provider)
	if kind == "" {
		kind = ProviderMock
	}

	svc, err := New(kind, f.cfg)
	if err != nil {
		logger.Log.Warnf("ai provider %q unavailable, falling back to mock: %v", kind, err)
		svc = NewMockService(mockDelay(f.cfg))
	}

	logger.Log.Infof("using ai provider %s", svc.Name())
	f.svc = svc
	return f.svc
}

// Reset clears the memoized provider. Exposed for test harnesses.
func (f *Factory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.svc = nil
}

// New constructs a named provider explicitly, bypassing memoization.
// Unlike Factory.Service it reports construction failures to the caller.
func New(kind ProviderKind, cfg config.AIConfig) (Service, error) {
	switch kind {
	case ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	case ProviderAnthropic:
		return NewAnthropicService(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
	case ProviderGemini:
		return NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	case ProviderMock:
		return NewMockService(mockDelay(cfg)), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", kind)
	}
}

func mockDelay(cfg config.AIConfig) time.Duration {
	return time.Duration(cfg.MockDelayMs) * time.Millisecond
}
