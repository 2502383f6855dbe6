package utils

import (
	"fmt"
	"strings"
)

// ErroValidacao carrega os nomes dos campos rejeitados antes da persistência.
type ErroValidacao struct {
	Campos []string
}

func (e *ErroValidacao) Error() string {
	return fmt.Sprintf("campos inválidos: %s", strings.Join(e.Campos, ", "))
}
