package carro

import (
	"github.com/RevendaDigital/api-revenda/internal/utils"
	"gorm.io/gorm"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]Carro, error)
	BuscarPorID(db *gorm.DB, id uint) (*Carro, error)
	Criar(db *gorm.DB, c *Carro) error
	Atualizar(db *gorm.DB, id uint, novosDados *Carro) error
	Remover(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarTodos retorna apenas os carros ativos.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Carro, error) {
	carros := []Carro{}
	err := db.Where("ativo = ?", true).Find(&carros).Error
	return carros, err
}

// BuscarPorID retorna o carro mesmo quando inativo.
func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Carro, error) {
	var c Carro
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Carro) error {
	c.Marca = utils.NormalizarTexto(c.Marca)
	c.Modelo = utils.NormalizarTexto(c.Modelo)
	c.Cor = utils.NormalizarTexto(c.Cor)
	c.Ativo = true
	return db.Create(c).Error
}

// Atualizar sobrescreve todos os campos mutáveis do registro existente.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Carro) error {
	var existente Carro
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Marca = utils.NormalizarTexto(novosDados.Marca)
	existente.Modelo = utils.NormalizarTexto(novosDados.Modelo)
	existente.Ano = novosDados.Ano
	existente.Cor = utils.NormalizarTexto(novosDados.Cor)

	return db.Save(&existente).Error
}

// Remover desativa o registro em vez de excluí-lo fisicamente.
func (r *repositoryImpl) Remover(db *gorm.DB, id uint) error {
	res := db.Model(&Carro{}).Where("id = ?", id).Update("ativo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
