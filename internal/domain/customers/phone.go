package customers

import "strings"

// NormalizePhone reduz o telefone para só dígitos.
// A máscara brasileira "(11) 99999-1234" é puramente visual; o que
// persiste e o que vai para integrações (WhatsApp) é "11999991234".
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone aplica a máscara de exibição para números BR de 10 ou 11
// dígitos. Qualquer outro tamanho volta como veio.
func FormatPhone(s string) string {
	d := NormalizePhone(s)
	switch len(d) {
	case 11: // celular com nono dígito
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10: // fixo
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return s
	}
}
