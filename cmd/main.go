package main

import (
	"log"
	"net/http"
	"os"

	"github.com/RevendaDigital/api-revenda/internal/carro"
	"github.com/RevendaDigital/api-revenda/internal/cliente"
	"github.com/RevendaDigital/api-revenda/internal/middleware"
	"github.com/RevendaDigital/api-revenda/internal/pedido"
	"github.com/RevendaDigital/api-revenda/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco: ", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&cliente.Cliente{},
		&carro.Carro{},
		&pedido.Pedido{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate: ", err)
	}

	// Handlers
	clienteHandler := cliente.NewHandler(database)
	carroHandler := carro.NewHandler(database)
	pedidoHandler := pedido.NewHandler(database)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Logger)

	api := r.PathPrefix("/api").Subrouter()

	// Rotas de clientes
	api.HandleFunc("/clients", clienteHandler.CriarCliente).Methods("POST")
	api.HandleFunc("/clients", clienteHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clients/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clients/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	api.HandleFunc("/remove/clients/{id}", clienteHandler.RemoverCliente).Methods("PUT")

	// Rotas de carros
	api.HandleFunc("/cars", carroHandler.CriarCarro).Methods("POST")
	api.HandleFunc("/cars", carroHandler.ListarCarros).Methods("GET")
	api.HandleFunc("/cars/{id}", carroHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/cars/{id}", carroHandler.AtualizarCarro).Methods("PUT")
	api.HandleFunc("/remove/cars/{id}", carroHandler.RemoverCarro).Methods("PUT")

	// Rotas de pedidos de venda
	api.HandleFunc("/orders", pedidoHandler.CriarPedido).Methods("POST")
	api.HandleFunc("/orders", pedidoHandler.ListarPedidos).Methods("GET")
	api.HandleFunc("/orders/{id}", pedidoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/orders/{id}", pedidoHandler.AtualizarPedido).Methods("PUT")
	api.HandleFunc("/remove/orders/{id}", pedidoHandler.RemoverPedido).Methods("PUT")

	// CORS liberado para o front-end estático que consome a API
	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Servidor rodando em http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
