package notification

import (
	"github.com/rs/zerolog/log"

	"oficina_prime/internal/usecase/interfaces"
)

// LogNotifier is the default toast channel: structured log lines tagged
// with the outcome. A future UI push channel implements the same contract.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Success(message string) {
	log.Info().Str("toast", "success").Msg(message)
}

func (n *LogNotifier) Failure(message string) {
	log.Warn().Str("toast", "error").Msg(message)
}
