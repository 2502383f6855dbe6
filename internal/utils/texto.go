package utils

import "strings"

// NormalizarTexto remove espaços das pontas e converte para maiúsculas.
// Aplicado aos campos de texto livre antes da persistência.
func NormalizarTexto(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CampoVazio informa se o campo está em branco após o trim.
func CampoVazio(s string) bool {
	return strings.TrimSpace(s) == ""
}
