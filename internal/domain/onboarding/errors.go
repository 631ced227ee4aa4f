package onboarding

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound   = errors.New("draft not found")
	ErrBadStage   = errors.New("invalid stage for operation")
	ErrNoPets     = errors.New("draft has no pets")
	ErrSubmitting = errors.New("submission already in progress")
)

// FieldErrors carrega erros de validação campo a campo, para a UI
// destacar exatamente o que faltou (e não um erro genérico).
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// AsFieldErrors extrai FieldErrors de um erro, se for o caso.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
