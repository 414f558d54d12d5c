package model

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated rule on one wire field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors lists every violated field of a candidate receipt, not
// just the first one found.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ByField groups the messages the way the historical API reported them.
func (v ValidationErrors) ByField() map[string][]string {
	out := make(map[string][]string, len(v))
	for _, fe := range v {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report wire names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"nomComplet.required":    "Le nom doit contenir au moins 2 caractères",
	"nomComplet.min":         "Le nom doit contenir au moins 2 caractères",
	"paymentType.required":   "Mode de paiement requis",
	"amount.gt":              "Le montant doit être positif",
	"dossierNumber.required": "Numéro de dossier requis",
	"date.required":          "Date requise",
	"date.datetime":          "Date invalide",
	"classe.required":        "Classe requise",
	"paymentReason.required": "Motif de paiement requis",
}

// Validate checks a candidate receipt against the static field rules and the
// catalog sets. It is pure: on success it returns a normalized Receipt (no
// id, no timestamps), on failure it returns every violation at once.
func (p ReceiptCreateRequest) Validate(c *Catalog) (*Receipt, error) {
	p = p.trimmed()

	var violations ValidationErrors

	if err := validate.Struct(p); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
			if !ok {
				msg = fmt.Sprintf("champ %s invalide", fe.Field())
			}
			violations = append(violations, FieldError{Field: fe.Field(), Message: msg})
		}
	}

	// set membership is deployment data, checked outside the struct tags
	if p.PaymentType != "" && !c.HasPaymentType(p.PaymentType) {
		violations = append(violations, FieldError{Field: "paymentType", Message: "Mode de paiement inconnu"})
	}
	if p.Classe != "" && !c.HasClasse(p.Classe) {
		violations = append(violations, FieldError{Field: "classe", Message: "Classe inconnue"})
	}
	if p.PaymentReason != "" && !c.HasReason(p.PaymentReason) {
		violations = append(violations, FieldError{Field: "paymentReason", Message: "Motif de paiement inconnu"})
	}

	if len(violations) > 0 {
		return nil, violations
	}

	// canonical date representation
	day, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		// unreachable after the datetime tag passed, kept as a guard
		return nil, ValidationErrors{{Field: "date", Message: "Date invalide"}}
	}

	return &Receipt{
		NomComplet:    p.NomComplet,
		PaymentType:   p.PaymentType,
		ChequeDetails: p.ChequeDetails,
		Amount:        p.Amount,
		DossierNumber: p.DossierNumber,
		Date:          day.Format(DateLayout),
		Classe:        p.Classe,
		PhoneNumber:   p.PhoneNumber,
		PaymentReason: p.PaymentReason,
	}, nil
}
