package notify

import (
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/platform/logger"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/ports/notify"
)

// LogNotifier manda os toasts para o log estruturado. No backend não
// há UI; o frontend consome o resultado via resposta HTTP, e o log
// deixa rastro do que o usuário viu.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

var _ notify.Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) Success(msg string) {
	if n == nil || n.log == nil {
		return
	}
	n.log.Info("toast", map[string]any{"kind": "success", "msg": msg})
}

func (n *LogNotifier) Error(msg string) {
	if n == nil || n.log == nil {
		return
	}
	n.log.Warn("toast", map[string]any{"kind": "error", "msg": msg})
}
