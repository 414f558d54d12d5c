package render

import (
	"strings"
	"testing"
	"time"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(t *testing.T) *Renderer {
	catalog := model.NewCatalog(
		[]string{"cash", "cheque", "virement", "mobile_money"},
		[]string{"Espèces", "Chèque", "Virement", "Mobile Money"},
		[]string{"Licence 1", "Master 1"},
		[]string{"Frais de scolarité", "Autre"},
	)
	r, err := NewRenderer(catalog, "École Supérieure de Commerce", "MAD", "fr")
	require.NoError(t, err)
	return r
}

func testReceipt() *model.Receipt {
	return &model.Receipt{
		ID:            12,
		NomComplet:    "Ahmed Benali",
		PaymentType:   "cash",
		Amount:        3500,
		DossierNumber: "DOS-2024-001",
		Date:          "2024-01-15",
		Classe:        "Licence 1",
		PhoneNumber:   "+212 600 123 456",
		PaymentReason: "Frais de scolarité",
	}
}

func TestBuildDocument(t *testing.T) {
	r := testRenderer(t)
	now := time.Date(2024, time.March, 2, 14, 30, 0, 0, time.UTC)

	doc := r.BuildDocument(testReceipt(), now)

	assert.Equal(t, "12", doc.Number)
	assert.Equal(t, "15 janvier 2024", doc.Date)
	assert.Equal(t, "Espèces", doc.PaymentTypeLabel)
	assert.Equal(t, "02/03/2024 à 14:30", doc.GeneratedAt)
	assert.Contains(t, doc.Amount, "MAD")
}

func TestBuildDocument_UnsavedReceipt(t *testing.T) {
	r := testRenderer(t)

	receipt := testReceipt()
	receipt.ID = 0

	doc := r.BuildDocument(receipt, time.Now())
	assert.Equal(t, "NOUVEAU", doc.Number)
}

func TestBuildDocument_MissingPhone(t *testing.T) {
	r := testRenderer(t)

	receipt := testReceipt()
	receipt.PhoneNumber = ""

	doc := r.BuildDocument(receipt, time.Now())
	assert.Equal(t, "-", doc.PhoneNumber)
}

func TestBuildDocument_UnknownTypeFallsBackToCode(t *testing.T) {
	r := testRenderer(t)

	receipt := testReceipt()
	receipt.PaymentType = "troc"

	doc := r.BuildDocument(receipt, time.Now())
	assert.Equal(t, "troc", doc.PaymentTypeLabel)
}

func TestFormatAmount(t *testing.T) {
	r := testRenderer(t)

	got := r.FormatAmount(3500)

	// french grouping uses a non-breaking space, so assert on the pieces
	assert.True(t, strings.HasSuffix(got, " MAD"), got)
	assert.Contains(t, got, "3")
	assert.Contains(t, got, "500")
	assert.Contains(t, got, ",00")
}

func TestFormatDate(t *testing.T) {
	r := testRenderer(t)

	assert.Equal(t, "15 janvier 2024", r.FormatDate("2024-01-15"))
	assert.Equal(t, "01 août 2023", r.FormatDate("2023-08-01"))

	// unparseable dates pass through untouched
	assert.Equal(t, "pas-une-date", r.FormatDate("pas-une-date"))
}

func TestRenderHTML(t *testing.T) {
	r := testRenderer(t)
	doc := r.BuildDocument(testReceipt(), time.Now())

	var b strings.Builder
	require.NoError(t, r.RenderHTML(&b, doc))
	html := b.String()

	assert.Contains(t, html, "REÇU DE PAIEMENT")
	assert.Contains(t, html, "École Supérieure de Commerce")
	assert.Contains(t, html, "Ahmed Benali")
	assert.Contains(t, html, "DOS-2024-001")
	assert.Contains(t, html, "Espèces")
	assert.NotContains(t, html, "Détails du Chèque")
}

func TestRenderHTML_ChequeBlock(t *testing.T) {
	r := testRenderer(t)

	receipt := testReceipt()
	receipt.PaymentType = "cheque"
	receipt.ChequeDetails = "Chèque N° 1234567 - Banque Populaire"

	var b strings.Builder
	require.NoError(t, r.RenderHTML(&b, r.BuildDocument(receipt, time.Now())))
	html := b.String()

	assert.Contains(t, html, "Détails du Chèque")
	assert.Contains(t, html, "Banque Populaire")
}
