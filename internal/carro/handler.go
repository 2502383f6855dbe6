package carro

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RevendaDigital/api-revenda/internal/utils"

	"gorm.io/gorm"
)

type carroRequest struct {
	Marca  string `json:"marca"`
	Modelo string `json:"modelo"`
	Ano    int    `json:"ano"`
	Cor    string `json:"cor"`
}

func validar(req carroRequest) *utils.ErroValidacao {
	var campos []string
	if utils.CampoVazio(req.Marca) {
		campos = append(campos, "marca")
	}
	if utils.CampoVazio(req.Modelo) {
		campos = append(campos, "modelo")
	}
	if req.Ano <= 0 {
		campos = append(campos, "ano")
	}
	if utils.CampoVazio(req.Cor) {
		campos = append(campos, "cor")
	}
	if len(campos) > 0 {
		return &utils.ErroValidacao{Campos: campos}
	}
	return nil
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// ListarCarros retorna todos os carros ativos
func (h *Handler) ListarCarros(w http.ResponseWriter, r *http.Request) {
	carros, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao listar carros")
		return
	}
	utils.RespondJSON(w, http.StatusOK, carros)
}

// BuscarPorID retorna um carro pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r)
	if err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "ID incorreto")
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Contrato herdado da API original: não encontrado responde 200 informativo.
		utils.RespondMensagem(w, http.StatusOK, "nenhum carro encontrado para o id informado")
		return
	}
	if err != nil {
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao buscar carro")
		return
	}
	utils.RespondJSON(w, http.StatusOK, obj)
}

// CriarCarro cadastra um novo carro
func (h *Handler) CriarCarro(w http.ResponseWriter, r *http.Request) {
	var req carroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if ev := validar(req); ev != nil {
		utils.RespondCamposInvalidos(w, ev.Campos)
		return
	}

	c := Carro{
		Marca:  req.Marca,
		Modelo: req.Modelo,
		Ano:    req.Ano,
		Cor:    req.Cor,
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "erro ao salvar carro")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, c)
}

// AtualizarCarro altera os dados de um carro existente
func (h *Handler) AtualizarCarro(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r)
	if err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "ID incorreto")
		return
	}

	var req carroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if ev := validar(req); ev != nil {
		utils.RespondCamposInvalidos(w, ev.Campos)
		return
	}

	novosDados := Carro{
		Marca:  req.Marca,
		Modelo: req.Modelo,
		Ano:    req.Ano,
		Cor:    req.Cor,
	}
	if err := h.Repository.Atualizar(h.DB, id, &novosDados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondMensagem(w, http.StatusBadRequest, "nenhum carro encontrado para o id informado")
			return
		}
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao atualizar carro")
		return
	}

	utils.RespondMensagem(w, http.StatusOK, "carro atualizado com sucesso")
}

// RemoverCarro desativa um carro (soft delete)
func (h *Handler) RemoverCarro(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r)
	if err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "ID incorreto")
		return
	}

	if err := h.Repository.Remover(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondMensagem(w, http.StatusBadRequest, "nenhum carro encontrado para o id informado")
			return
		}
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao remover carro")
		return
	}

	utils.RespondMensagem(w, http.StatusOK, "carro removido com sucesso")
}
