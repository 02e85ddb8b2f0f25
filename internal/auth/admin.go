package auth

import (
	"crypto/subtle"
	"strings"
)

// AdminAuthority valida o par fixo de credenciais administrativas.
// É uma capacidade à parte do diretório de moradores: não consulta
// tabela nenhuma e existe exatamente uma credencial, injetada pela
// configuração no boot.
type AdminAuthority struct {
	email    string
	password string
}

// NewAdminAuthority cria a autoridade com o par configurado.
func NewAdminAuthority(email, password string) *AdminAuthority {
	return &AdminAuthority{
		email:    strings.ToLower(strings.TrimSpace(email)),
		password: strings.TrimSpace(password),
	}
}

// Verify compara em tempo constante o par submetido com o sentinela.
// O e-mail é normalizado para minúsculas como o cliente faz.
func (a *AdminAuthority) Verify(email, password string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.email))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return emailOK&passOK == 1
}

// Email devolve o e-mail configurado (para logs e exibição).
func (a *AdminAuthority) Email() string {
	return a.email
}
