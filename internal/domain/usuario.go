package domain

// Usuario is the logged-in user as returned by the backend. The password never leaves the request that carries it.
type Usuario struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// UsuarioCadastro is the sign-up payload.
type UsuarioCadastro struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type Credenciais struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}
