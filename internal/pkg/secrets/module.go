package secrets

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/RaffaFachrizal29/belivps/internal/config"
)

// Module provides the credential sealer via fx.
var Module = fx.Provide(newSealer)

type sealerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSealer(p sealerParams) (Sealer, error) {
	if len(p.Config.CredentialKey) == 0 {
		p.Logger.Warn("credential key not configured, VPS passwords will be stored in plaintext")
		return PlaintextSealer{}, nil
	}
	return NewSecretboxSealer(p.Config.CredentialKey)
}
