package auth

import (
	"go.uber.org/fx"

	"github.com/dmarquina/eventbooking/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Provide(newVerifier)

type verifierParams struct {
	fx.In

	Config *config.Config
}

func newVerifier(p verifierParams) Verifier {
	return NewJWTVerifier(p.Config.JWTSecret, Options{})
}
