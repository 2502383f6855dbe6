package pedido

import (
	"time"

	"github.com/RevendaDigital/api-revenda/internal/carro"
	"github.com/RevendaDigital/api-revenda/internal/cliente"
)

type Pedido struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClienteID   uint      `gorm:"not null;index" json:"clienteId"`
	CarroID     uint      `gorm:"not null;index" json:"carroId"`
	DataPedido  time.Time `gorm:"not null" json:"dataPedido"`
	ValorPedido float64   `gorm:"not null" json:"valorPedido"`
	Ativo       bool      `gorm:"not null;default:true" json:"ativo"`

	// Associações apenas para a constraint de FK no banco.
	Cliente cliente.Cliente `gorm:"foreignKey:ClienteID" json:"-"`
	Carro   carro.Carro     `gorm:"foreignKey:CarroID" json:"-"`
}
