package pedido

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]PedidoDetalhado, error)
	BuscarPorID(db *gorm.DB, id uint) (*PedidoDetalhado, error)
	Criar(db *gorm.DB, p *Pedido) error
	Atualizar(db *gorm.DB, id uint, novosDados *Pedido) error
	Remover(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

const colunasDetalhe = "pedidos.id, pedidos.cliente_id, pedidos.carro_id, " +
	"clientes.nome AS nome_cliente, carros.marca AS marca_carro, carros.modelo AS modelo_carro, " +
	"pedidos.data_pedido, pedidos.valor_pedido, pedidos.ativo"

func consultaDetalhe(db *gorm.DB) *gorm.DB {
	return db.Table("pedidos").
		Select(colunasDetalhe).
		Joins("JOIN clientes ON clientes.id = pedidos.cliente_id").
		Joins("JOIN carros ON carros.id = pedidos.carro_id")
}

// ListarTodos retorna a visão desnormalizada dos pedidos ativos.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]PedidoDetalhado, error) {
	pedidos := []PedidoDetalhado{}
	err := consultaDetalhe(db).
		Where("pedidos.ativo = ?", true).
		Order("pedidos.id").
		Scan(&pedidos).Error
	return pedidos, err
}

// BuscarPorID retorna o pedido mesmo quando inativo.
func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*PedidoDetalhado, error) {
	var p PedidoDetalhado
	res := consultaDetalhe(db).Where("pedidos.id = ?", id).Scan(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *Pedido) error {
	p.Ativo = true
	return db.Omit(clause.Associations).Create(p).Error
}

// Atualizar sobrescreve todos os campos mutáveis do pedido existente.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Pedido) error {
	var existente Pedido
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.ClienteID = novosDados.ClienteID
	existente.CarroID = novosDados.CarroID
	existente.DataPedido = novosDados.DataPedido
	existente.ValorPedido = novosDados.ValorPedido

	return db.Omit(clause.Associations).Save(&existente).Error
}

// Remover desativa o pedido em vez de excluí-lo fisicamente.
func (r *repositoryImpl) Remover(db *gorm.DB, id uint) error {
	res := db.Model(&Pedido{}).Where("id = ?", id).Update("ativo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
