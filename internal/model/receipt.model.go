package model

import (
	"strings"
	"time"
)

// DateLayout is the wire format for receipt dates, a calendar day with no
// time component.
const DateLayout = "2006-01-02"

// Receipt is one payment record issued to a payer. JSON names follow the
// historical wire format of the dashboard client and must not change.
type Receipt struct {
	ID            int64     `json:"id"                      db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	NomComplet    string    `json:"nomComplet"              db:"nom_complet"    gorm:"column:nom_complet;not null"`
	PaymentType   string    `json:"paymentType"             db:"payment_type"   gorm:"column:payment_type;not null"`
	ChequeDetails string    `json:"chequeDetails,omitempty" db:"cheque_details" gorm:"column:cheque_details"`
	Amount        float64   `json:"amount"                  db:"amount"         gorm:"column:amount;not null"`
	DossierNumber string    `json:"dossierNumber"           db:"dossier_number" gorm:"column:dossier_number;not null"`
	Date          string    `json:"date"                    db:"date"           gorm:"column:date;not null"`
	Classe        string    `json:"classe"                  db:"classe"         gorm:"column:classe;not null"`
	PhoneNumber   string    `json:"phoneNumber,omitempty"   db:"phone_number"   gorm:"column:phone_number"`
	PaymentReason string    `json:"paymentReason"           db:"payment_reason" gorm:"column:payment_reason;not null"`
	CreatedAt     time.Time `json:"created_at"              db:"created_at"     gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at"              db:"updated_at"     gorm:"column:updated_at;autoUpdateTime"`
}

func (Receipt) TableName() string { return "receipts" }

// Day parses the receipt date. The zero time and false come back when the
// stored value is not a valid calendar date.
func (r *Receipt) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ReceiptFilter is an ephemeral set of predicates used to narrow a receipt
// list. Empty fields are inactive. It is never persisted.
type ReceiptFilter struct {
	Search      string // case-insensitive substring on nomComplet OR dossierNumber
	PaymentType string // exact match
	Classe      string // exact match
	DateFrom    string // inclusive lower bound, YYYY-MM-DD
	DateTo      string // inclusive upper bound, YYYY-MM-DD
}

func (f ReceiptFilter) IsZero() bool {
	return f.Search == "" && f.PaymentType == "" && f.Classe == "" &&
		f.DateFrom == "" && f.DateTo == ""
}

// ReceiptCreateRequest is the client payload for creating or updating a
// receipt. Validation and normalization happen in Validate.
type ReceiptCreateRequest struct {
	NomComplet    string  `json:"nomComplet"    validate:"required,min=2"`
	PaymentType   string  `json:"paymentType"   validate:"required"`
	ChequeDetails string  `json:"chequeDetails"`
	Amount        float64 `json:"amount"        validate:"gt=0"`
	DossierNumber string  `json:"dossierNumber" validate:"required"`
	Date          string  `json:"date"          validate:"required,datetime=2006-01-02"`
	Classe        string  `json:"classe"        validate:"required"`
	PhoneNumber   string  `json:"phoneNumber"`
	PaymentReason string  `json:"paymentReason" validate:"required"`
}

func (p ReceiptCreateRequest) trimmed() ReceiptCreateRequest {
	p.NomComplet = strings.TrimSpace(p.NomComplet)
	p.DossierNumber = strings.TrimSpace(p.DossierNumber)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.ChequeDetails = strings.TrimSpace(p.ChequeDetails)
	return p
}
