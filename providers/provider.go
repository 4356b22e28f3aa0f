package providers

import (
	"net/http"
	"sync"
)

const (
	Twilio         = "TWILIO"
	StubOTP        = "STUB_OTP"
	Eligibility    = "ELIGIBILITY"
	ESign          = "ESIGN"
	PaymentGateway = "PAYMENT_GATEWAY"
)

// BaseProvider contains common fields and methods
type BaseProvider struct {
	Name    string
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// Provider is an interface that all specific providers must implement
type Provider interface {
	GetName() string
}

// ProviderService manages multiple providers
type ProviderService struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

// NewProviderService initializes a new ProviderService
func NewProviderService() *ProviderService {
	return &ProviderService{
		providers: make(map[string]Provider),
	}
}

// AddProvider adds a new provider to the service
func (s *ProviderService) AddProvider(provider Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers[provider.GetName()] = provider
}

// GetProvider retrieves a provider by name
func (s *ProviderService) GetProvider(name string) (Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	provider, exists := s.providers[name]
	return provider, exists
}

func (bp *BaseProvider) GetName() string { return bp.Name }
