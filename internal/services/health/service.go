package health

// Status is the health payload.
type Status struct {
	OK                 bool   `json:"ok"`
	Provider           string `json:"provider"`
	Model              string `json:"model"`
	CredentialPresent  bool   `json:"credentialPresent"`
	GenerationDisabled bool   `json:"generationDisabled,omitempty"`
}

// Service reports process health and whether generation can run.
type Service struct {
	provider      string
	model         string
	credentialSet bool
}

// NewService constructs a new health service.
func NewService(provider, model string, credentialSet bool) *Service {
	return &Service{provider: provider, model: model, credentialSet: credentialSet}
}

// Status returns the health payload. A missing credential leaves the
// process healthy; only generation is unavailable.
func (s *Service) Status() Status {
	return Status{
		OK:                 true,
		Provider:           s.provider,
		Model:              s.model,
		CredentialPresent:  s.credentialSet,
		GenerationDisabled: !s.credentialSet,
	}
}
