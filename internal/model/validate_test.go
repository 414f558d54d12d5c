package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog(
		[]string{"cash", "cheque", "virement", "mobile_money"},
		[]string{"Espèces", "Chèque", "Virement", "Mobile Money"},
		[]string{"Licence 1", "Licence 2", "Master 1"},
		[]string{"Frais de scolarité", "Frais d'inscription", "Autre"},
	)
}

func validRequest() ReceiptCreateRequest {
	return ReceiptCreateRequest{
		NomComplet:    "Ahmed Ben",
		PaymentType:   "cash",
		Amount:        100,
		DossierNumber: "D1",
		Date:          "2024-01-01",
		Classe:        "Licence 1",
		PaymentReason: "Frais de scolarité",
	}
}

func violatedFields(t *testing.T, err error) map[string][]string {
	t.Helper()
	verr, ok := err.(ValidationErrors)
	require.True(t, ok, "expected ValidationErrors, got %T", err)
	return verr.ByField()
}

func TestValidate_Accepted(t *testing.T) {
	receipt, err := validRequest().Validate(testCatalog())
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.Zero(t, receipt.ID)
	assert.Equal(t, "Ahmed Ben", receipt.NomComplet)
	assert.Equal(t, "2024-01-01", receipt.Date)
	assert.True(t, receipt.CreatedAt.IsZero())
}

func TestValidate_AmountRule(t *testing.T) {
	t.Run("zero amount rejected", func(t *testing.T) {
		p := validRequest()
		p.Amount = 0
		_, err := p.Validate(testCatalog())
		fields := violatedFields(t, err)
		assert.Contains(t, fields, "amount")
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		p := validRequest()
		p.Amount = -50
		_, err := p.Validate(testCatalog())
		fields := violatedFields(t, err)
		assert.Contains(t, fields, "amount")
	})

	t.Run("positive amount passes", func(t *testing.T) {
		p := validRequest()
		p.Amount = 0.5
		_, err := p.Validate(testCatalog())
		require.NoError(t, err)
	})
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	p := ReceiptCreateRequest{
		NomComplet:    "A",
		DossierNumber: "D1",
		Classe:        "",
		Amount:        100,
		PaymentReason: "x",
		Date:          "2024-01-01",
		PaymentType:   "cash",
	}

	_, err := p.Validate(testCatalog())
	fields := violatedFields(t, err)

	assert.Contains(t, fields, "classe")
	assert.Contains(t, fields, "nomComplet")
	assert.Contains(t, fields, "paymentReason") // "x" is not a configured reason

	// fix the reported fields, the payload goes through
	p.NomComplet = "Ahmed Ben"
	p.Classe = "Licence 1"
	p.PaymentReason = "Autre"
	receipt, err := p.Validate(testCatalog())
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Ben", receipt.NomComplet)
}

func TestValidate_DateRule(t *testing.T) {
	p := validRequest()
	p.Date = "not-a-date"
	_, err := p.Validate(testCatalog())
	fields := violatedFields(t, err)
	assert.Contains(t, fields, "date")

	p.Date = "2024-02-30"
	_, err = p.Validate(testCatalog())
	fields = violatedFields(t, err)
	assert.Contains(t, fields, "date")
}

func TestValidate_SetMembership(t *testing.T) {
	p := validRequest()
	p.PaymentType = "bitcoin"
	p.Classe = "Doctorat"
	_, err := p.Validate(testCatalog())
	fields := violatedFields(t, err)
	assert.Contains(t, fields, "paymentType")
	assert.Contains(t, fields, "classe")
}

func TestValidate_ChequeDetailsStaysOptional(t *testing.T) {
	p := validRequest()
	p.PaymentType = "cheque"
	p.ChequeDetails = ""
	_, err := p.Validate(testCatalog())
	require.NoError(t, err)
}

func TestValidate_TrimsFields(t *testing.T) {
	p := validRequest()
	p.NomComplet = "  Ahmed Ben  "
	p.DossierNumber = " D1 "
	receipt, err := p.Validate(testCatalog())
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Ben", receipt.NomComplet)
	assert.Equal(t, "D1", receipt.DossierNumber)
}

func TestCatalog_PaymentTypeLabel(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, "Espèces", c.PaymentTypeLabel("cash"))
	// unknown codes display verbatim, never error
	assert.Equal(t, "unknown_type", c.PaymentTypeLabel("unknown_type"))
}

func TestCatalog_TypeWithoutLabel(t *testing.T) {
	c := NewCatalog([]string{"cash", "cheque"}, []string{"Espèces"}, nil, nil)
	assert.True(t, c.HasPaymentType("cheque"))
	assert.Equal(t, "cheque", c.PaymentTypeLabel("cheque"))
}
