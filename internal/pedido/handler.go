package pedido

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RevendaDigital/api-revenda/internal/utils"

	"gorm.io/gorm"
)

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

// ListarPedidos retorna a visão detalhada dos pedidos ativos
func (h *Handler) ListarPedidos(w http.ResponseWriter, r *http.Request) {
	pedidos, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao listar pedidos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, pedidos)
}

// BuscarPorID retorna um pedido pelo ID com os dados do cliente e do carro
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r)
	if err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "ID incorreto")
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Contrato herdado da API original: não encontrado responde 200 informativo.
		utils.RespondMensagem(w, http.StatusOK, "nenhum pedido encontrado para o id informado")
		return
	}
	if err != nil {
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao buscar pedido")
		return
	}
	utils.RespondJSON(w, http.StatusOK, obj)
}

// CriarPedido valida e cadastra um novo pedido de venda
func (h *Handler) CriarPedido(w http.ResponseWriter, r *http.Request) {
	var req pedidoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "payload inválido")
		return
	}

	p, ev := Validar(req)
	if ev != nil {
		utils.RespondCamposInvalidos(w, ev.Campos)
		return
	}

	// FKs de cliente e carro são garantidas pelo banco.
	if err := h.Repository.Criar(h.DB, p); err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "erro ao salvar pedido")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, p)
}

// AtualizarPedido altera os dados de um pedido existente
func (h *Handler) AtualizarPedido(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r)
	if err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "ID incorreto")
		return
	}

	var req pedidoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "payload inválido")
		return
	}

	novosDados, ev := Validar(req)
	if ev != nil {
		utils.RespondCamposInvalidos(w, ev.Campos)
		return
	}

	if err := h.Repository.Atualizar(h.DB, id, novosDados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondMensagem(w, http.StatusBadRequest, "nenhum pedido encontrado para o id informado")
			return
		}
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao atualizar pedido")
		return
	}

	utils.RespondMensagem(w, http.StatusOK, "pedido atualizado com sucesso")
}

// RemoverPedido desativa um pedido (soft delete)
func (h *Handler) RemoverPedido(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r)
	if err != nil {
		utils.RespondMensagem(w, http.StatusBadRequest, "ID incorreto")
		return
	}

	if err := h.Repository.Remover(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondMensagem(w, http.StatusBadRequest, "nenhum pedido encontrado para o id informado")
			return
		}
		utils.RespondMensagem(w, http.StatusInternalServerError, "erro ao remover pedido")
		return
	}

	utils.RespondMensagem(w, http.StatusOK, "pedido removido com sucesso")
}
