package cliente

import (
	"github.com/RevendaDigital/api-revenda/internal/utils"
	"gorm.io/gorm"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	Criar(db *gorm.DB, c *Cliente) error
	Atualizar(db *gorm.DB, id uint, novosDados *Cliente) error
	Remover(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarTodos retorna apenas os clientes ativos.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	clientes := []Cliente{}
	err := db.Where("ativo = ?", true).Find(&clientes).Error
	return clientes, err
}

// BuscarPorID retorna o cliente mesmo quando inativo; só a listagem
// filtra pelo flag ativo.
func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Cliente) error {
	c.Nome = utils.NormalizarTexto(c.Nome)
	c.Ativo = true
	return db.Create(c).Error
}

// Atualizar sobrescreve todos os campos mutáveis do registro existente.
// Nunca cria uma nova linha: id inexistente retorna gorm.ErrRecordNotFound.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Cliente) error {
	var existente Cliente
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = utils.NormalizarTexto(novosDados.Nome)
	existente.CPF = novosDados.CPF
	existente.Telefone = novosDados.Telefone

	return db.Save(&existente).Error
}

// Remover desativa o registro em vez de excluí-lo fisicamente.
func (r *repositoryImpl) Remover(db *gorm.DB, id uint) error {
	res := db.Model(&Cliente{}).Where("id = ?", id).Update("ativo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
