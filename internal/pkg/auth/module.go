package auth

import (
	"go.uber.org/fx"

	"github.com/RaffaFachrizal29/belivps/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newCredentials),
	fx.Provide(newSessions),
)

type credentialsParams struct {
	fx.In

	Config *config.Config
}

func newCredentials(p credentialsParams) (*Credentials, error) {
	return NewCredentials(p.Config.AdminLogin, p.Config.AdminPassword)
}

func newSessions(p credentialsParams) Sessions {
	return NewSessionStore(p.Config.SessionTTL)
}
