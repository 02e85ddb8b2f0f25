package hotline

import (
	"errors"
	"strings"
)

// Hotline é um contato de emergência exibido pelo app.
type Hotline struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Defaults devolve a lista oficial do barangay, usada quando
// HOTLINES não é configurado.
func Defaults() []Hotline {
	return []Hotline{
		{Name: "Barangay Captain", Phone: "09123456789"},
		{Name: "Tibungco Police Station", Phone: "911"},
		{Name: "Health Center", Phone: "09987654321"},
	}
}

// Parse interpreta o formato "Nome=Telefone;Nome=Telefone" do env.
// String vazia devolve lista vazia sem erro.
func Parse(raw string) ([]Hotline, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var hotlines []Hotline
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, phone, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		phone = strings.TrimSpace(phone)
		if !ok || name == "" || phone == "" {
			return nil, errors.New("HOTLINES inválido: " + entry)
		}
		hotlines = append(hotlines, Hotline{Name: name, Phone: phone})
	}
	return hotlines, nil
}
