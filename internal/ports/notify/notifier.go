package notify

// Notifier abstrai os toasts de sucesso/erro do console.
// O wizard de onboarding só conhece esta interface; assim dá para testar
// o fluxo inteiro sem nenhuma camada de UI.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Noop descarta as notificações (útil em testes que não as inspecionam).
type Noop struct{}

func (Noop) Success(string) {}
func (Noop) Error(string)   {}
