package cliente

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RevendaDigital/api-revenda/internal/utils"

	"gorm.io/gorm"
)

type clienteRequest struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
}

func validar(req clienteRequest) *utils.ErroValidacao {
	var campos []string
	if utils.CampoVazio(req.Nome) {
		campos = append(campos, "nome")
	}
	if utils.CampoVazio(req.CPF) {
		campos = append(campos, "cpf")
	}
	if utils.CampoVazio(req.Telefone) {
		campos = append(campos, "telefone")
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

// ListarClientes retorna todos os clientes ativos
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao listar clientes")
		return
	}
	utils.RespondJSON(w, http.StatusOK, clientes)
}

// BuscarPorID retorna um cliente pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r)
	if err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "ID incorreto")
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Contrato herdado da API original: não encontrado responde 200 informativo.
		utils.RespondMensagem(w, http.StatusOK, "nenhum cliente encontrado para o id informado")
		return
	}
	if err != nil {
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao buscar cliente")
		return
	}
	utils.RespondJSON(w, http.StatusOK, obj)
}

// CriarCliente cadastra um novo cliente
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if ev := validar(req); ev != nil {
		utils.RespondCamposInvalidos(w, ev.Campos)
		return
	}

	c := Cliente{
		Nome:     req.Nome,
		CPF:      req.CPF,
		Telefone: req.Telefone,
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "erro ao salvar cliente")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, c)
}

// AtualizarCliente altera os dados de um cliente existente
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r)
	if err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "ID incorreto")
		return
	}

	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if ev := validar(req); ev != nil {
		utils.RespondCamposInvalidos(w, ev.Campos)
		return
	}

	novosDados := Cliente{
		Nome:     req.Nome,
		CPF:      req.CPF,
		Telefone: req.Telefone,
	}
	if err := h.Repository.Atualizar(h.DB, id, &novosDados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondMensagem(w, http.StatusBadRequest, "nenhum cliente encontrado para o id informado")
			return
		}
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao atualizar cliente")
		return
	}

	utils.RespondMensagem(w, http.StatusOK, "cliente atualizado com sucesso")
}

// RemoverCliente desativa um cliente (soft delete)
func (h *Handler) RemoverCliente(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r)
	if err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "ID incorreto")
		return
	}

	if err := h.Repository.Remover(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondMensagem(w, http.StatusBadRequest, "nenhum cliente encontrado para o id informado")
			return
		}
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao remover cliente")
		return
	}

	utils.RespondMensagem(w, http.StatusOK, "cliente removido com sucesso")
}
