package test

import (
	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// VerifierStub validates tokens via function overrides.
type VerifierStub struct {
	VerifyFn  func(token string) (*model.Principal, error)
	Principal *model.Principal
	Err       error
	NameVal   string
}

// Verify returns the configured principal or delegates to the override.
func (s VerifierStub) Verify(token string) (*model.Principal, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Principal != nil {
		return s.Principal, nil
	}
	return &model.Principal{ID: "client-1", Role: model.RoleClient}, nil
}

// Name returns the verifier identifier used in tests.
func (s VerifierStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}
