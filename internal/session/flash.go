package session

import (
	"encoding/base64"
	"encoding/json"
)

type Kind string

const (
	Sucesso Kind = "sucesso"
	Erro    Kind = "erro"
	Alerta  Kind = "alerta"
)

// Mensagem is one toast shown on the next rendered page.
type Mensagem struct {
	Kind  Kind   `json:"k"`
	Texto string `json:"t"`
}

// Class maps the kind onto a bootstrap alert class.
func (m Mensagem) Class() string {
	switch m.Kind {
	case Sucesso:
		return "success"
	case Alerta:
		return "warning"
	default:
		return "danger"
	}
}

func EncodeFlash(msgs []Mensagem) string {
	if len(msgs) == 0 {
		return ""
	}
	raw, err := json.Marshal(msgs)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeFlash is lenient: a mangled cookie just yields no messages.
func DecodeFlash(v string) []Mensagem {
	if v == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var msgs []Mensagem
	if json.Unmarshal(raw, &msgs) != nil {
		return nil
	}
	return msgs
}
