package cliente

type Cliente struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"size:255;not null" json:"nome"`
	CPF      string `gorm:"size:11;not null;unique" json:"cpf"`
	Telefone string `gorm:"size:20;not null" json:"telefone"`
	Ativo    bool   `gorm:"not null;default:true" json:"ativo"`
}
