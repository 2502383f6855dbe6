package carro

type Carro struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Marca  string `gorm:"size:255;not null" json:"marca"`
	Modelo string `gorm:"size:255;not null" json:"modelo"`
	Ano    int    `gorm:"not null" json:"ano"`
	Cor    string `gorm:"size:100;not null" json:"cor"`
	Ativo  bool   `gorm:"not null;default:true" json:"ativo"`
}
