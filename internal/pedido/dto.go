package pedido

import "time"

// PedidoDetalhado é a visão desnormalizada usada na listagem e no detalhe,
// com o nome do cliente e a marca/modelo do carro para exibição.
type PedidoDetalhado struct {
	ID          uint      `json:"id"`
	ClienteID   uint      `json:"clienteId"`
	CarroID     uint      `json:"carroId"`
	NomeCliente string    `json:"nomeCliente"`
	MarcaCarro  string    `json:"marcaCarro"`
	ModeloCarro string    `json:"modeloCarro"`
	DataPedido  time.Time `json:"dataPedido"`
	ValorPedido float64   `json:"valorPedido"`
	Ativo       bool      `json:"ativo"`
}

// pedidoRequest aceita valorPedido como número ou como string com vírgula
// decimal; a validação normaliza antes de persistir.
type pedidoRequest struct {
	ClienteID   uint        `json:"clienteId"`
	CarroID     uint        `json:"carroId"`
	DataPedido  string      `json:"dataPedido"`
	ValorPedido interface{} `json:"valorPedido"`
}
