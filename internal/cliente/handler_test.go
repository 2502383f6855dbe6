package cliente

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func novoRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/clients", h.CriarCliente).Methods("POST")
	r.HandleFunc("/api/clients", h.ListarClientes).Methods("GET")
	r.HandleFunc("/api/clients/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/api/clients/{id}", h.AtualizarCliente).Methods("PUT")
	r.HandleFunc("/api/remove/clients/{id}", h.RemoverCliente).Methods("PUT")
	return r
}

func TestCriarEBuscarCliente(t *testing.T) {
	db := setupTestDB(t)
	router := novoRouter(NewHandler(db))

	body := `{"nome":"ana","cpf":"11122233344","telefone":"11999999999"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("esperado 201, recebido %d: %s", w.Code, w.Body.String())
	}

	var criado Cliente
	if err := json.Unmarshal(w.Body.Bytes(), &criado); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if criado.ID == 0 {
		t.Fatal("id não foi gerado")
	}

	req2 := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/clients/%d", criado.ID), nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("esperado 200, recebido %d", w2.Code)
	}

	var buscado Cliente
	if err := json.Unmarshal(w2.Body.Bytes(), &buscado); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if buscado.Nome != "ANA" {
		t.Fatalf("esperado nome ANA, recebido %q", buscado.Nome)
	}
}

func TestBuscarIDIncorreto(t *testing.T) {
	db := setupTestDB(t)
	router := novoRouter(NewHandler(db))

	req := httptest.NewRequest(http.MethodGet, "/api/clients/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400, recebido %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["mensagem"] != "ID incorreto" {
		t.Fatalf("mensagem inesperada: %q", resp["mensagem"])
	}
}

func TestBuscarInexistenteResponde200(t *testing.T) {
	db := setupTestDB(t)
	router := novoRouter(NewHandler(db))

	req := httptest.NewRequest(http.MethodGet, "/api/clients/999999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("esperado 200, recebido %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["mensagem"] == "" {
		t.Fatal("esperada mensagem informativa no corpo")
	}
}

func TestCriarSemCamposObrigatorios(t *testing.T) {
	db := setupTestDB(t)
	router := novoRouter(NewHandler(db))

	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(`{"nome":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400, recebido %d", w.Code)
	}

	var resp struct {
		Mensagem string   `json:"mensagem"`
		Campos   []string `json:"campos"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Campos) != 3 {
		t.Fatalf("esperados 3 campos rejeitados, recebidos %v", resp.Campos)
	}
}

func TestRemoverESumirDaListagem(t *testing.T) {
	db := setupTestDB(t)
	router := novoRouter(NewHandler(db))

	body := `{"nome":"ana","cpf":"11122233344","telefone":"11999999999"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var criado Cliente
	if err := json.Unmarshal(w.Body.Bytes(), &criado); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req2 := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/remove/clients/%d", criado.ID), nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("esperado 200 no remove, recebido %d", w2.Code)
	}

	req3 := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)

	var lista []Cliente
	if err := json.Unmarshal(w3.Body.Bytes(), &lista); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(lista) != 0 {
		t.Fatalf("esperada listagem vazia após remoção, recebida %d", len(lista))
	}
}
