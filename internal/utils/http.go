package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// ErrIDInvalido indica parâmetro de rota {id} não numérico ou menor que 1.
var ErrIDInvalido = errors.New("id inválido")

// RespondJSON serializa o payload com o status informado.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondMensagem escreve o corpo padrão {"mensagem": ...}.
func RespondMensagem(w http.ResponseWriter, status int, mensagem string) {
	RespondJSON(w, status, map[string]string{"mensagem": mensagem})
}

// RespondCamposInvalidos padroniza a rejeição de validação com a lista
// dos campos ofensores.
func RespondCamposInvalidos(w http.ResponseWriter, campos []string) {
	RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"mensagem": "campos inválidos",
		"campos":   campos,
	})
}

// ParseID extrai o parâmetro de rota {id}.
func ParseID(r *http.Request) (uint, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, ErrIDInvalido
	}
	return uint(id), nil
}
