package repository

import (
	"time"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
)

type ReceiptEntity struct {
	ID            int64     `db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	NomComplet    string    `db:"nom_complet"    gorm:"column:nom_complet;not null"`
	PaymentType   string    `db:"payment_type"   gorm:"column:payment_type;not null"`
	ChequeDetails string    `db:"cheque_details" gorm:"column:cheque_details"`
	Amount        float64   `db:"amount"         gorm:"column:amount;not null"`
	DossierNumber string    `db:"dossier_number" gorm:"column:dossier_number;not null"`
	Date          string    `db:"date"           gorm:"column:date;not null"`
	Classe        string    `db:"classe"         gorm:"column:classe;not null"`
	PhoneNumber   string    `db:"phone_number"   gorm:"column:phone_number"`
	PaymentReason string    `db:"payment_reason" gorm:"column:payment_reason;not null"`
	CreatedAt     time.Time `db:"created_at"     gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `db:"updated_at"     gorm:"column:updated_at;autoUpdateTime"`
}

func (ReceiptEntity) TableName() string {
	return "receipts"
}

func toReceiptEntity(r *model.Receipt) *ReceiptEntity {
	if r == nil {
		return nil
	}
	return &ReceiptEntity{
		ID:            r.ID,
		NomComplet:    r.NomComplet,
		PaymentType:   r.PaymentType,
		ChequeDetails: r.ChequeDetails,
		Amount:        r.Amount,
		DossierNumber: r.DossierNumber,
		Date:          r.Date,
		Classe:        r.Classe,
		PhoneNumber:   r.PhoneNumber,
		PaymentReason: r.PaymentReason,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toReceiptModel(e *ReceiptEntity) *model.Receipt {
	if e == nil {
		return nil
	}
	return &model.Receipt{
		ID:            e.ID,
		NomComplet:    e.NomComplet,
		PaymentType:   e.PaymentType,
		ChequeDetails: e.ChequeDetails,
		Amount:        e.Amount,
		DossierNumber: e.DossierNumber,
		Date:          e.Date,
		Classe:        e.Classe,
		PhoneNumber:   e.PhoneNumber,
		PaymentReason: e.PaymentReason,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toReceiptModels(entities []*ReceiptEntity) []*model.Receipt {
	if entities == nil {
		return nil
	}
	models := make([]*model.Receipt, len(entities))
	for i, e := range entities {
		models[i] = toReceiptModel(e)
	}
	return models
}
