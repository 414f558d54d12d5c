package render

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var frMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// ReceiptDocument is the human-readable projection of one receipt, ready
// for on-screen display or the printable page.
type ReceiptDocument struct {
	SchoolName       string
	Number           string
	Date             string
	NomComplet       string
	DossierNumber    string
	Classe           string
	PhoneNumber      string
	PaymentTypeLabel string
	PaymentReason    string
	ChequeDetails    string
	Amount           string
	GeneratedAt      string
}

type Renderer struct {
	catalog      *model.Catalog
	schoolName   string
	currencyCode string
	printer      *message.Printer
	tmpl         *template.Template
}

func NewRenderer(catalog *model.Catalog, schoolName, currencyCode, locale string) (*Renderer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}

	tmpl, err := template.New("receipt").Parse(receiptPage)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		catalog:      catalog,
		schoolName:   schoolName,
		currencyCode: currencyCode,
		printer:      message.NewPrinter(tag),
		tmpl:         tmpl,
	}, nil
}

// BuildDocument maps a receipt onto its display representation. The
// payment-type label comes from the same catalog validation uses, with the
// raw code as fallback when no label is configured.
func (r *Renderer) BuildDocument(receipt *model.Receipt, now time.Time) ReceiptDocument {
	number := "NOUVEAU"
	if receipt.ID != 0 {
		number = fmt.Sprintf("%d", receipt.ID)
	}

	phone := receipt.PhoneNumber
	if phone == "" {
		phone = "-"
	}

	return ReceiptDocument{
		SchoolName:       r.schoolName,
		Number:           number,
		Date:             r.FormatDate(receipt.Date),
		NomComplet:       receipt.NomComplet,
		DossierNumber:    receipt.DossierNumber,
		Classe:           receipt.Classe,
		PhoneNumber:      phone,
		PaymentTypeLabel: r.catalog.PaymentTypeLabel(receipt.PaymentType),
		PaymentReason:    receipt.PaymentReason,
		ChequeDetails:    receipt.ChequeDetails,
		Amount:           r.FormatAmount(receipt.Amount),
		GeneratedAt:      now.Format("02/01/2006 à 15:04"),
	}
}

// FormatAmount renders the amount with locale digit grouping followed by
// the configured currency code.
func (r *Renderer) FormatAmount(v float64) string {
	return r.printer.Sprintf("%v %s",
		number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)),
		r.currencyCode)
}

// FormatDate renders a wire date as "02 janvier 2006". Unparseable values
// come back verbatim rather than erroring, same as the historical client.
func (r *Renderer) FormatDate(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), frMonths[t.Month()-1], t.Year())
}

// RenderHTML writes the standalone printable page for one receipt.
func (r *Renderer) RenderHTML(w io.Writer, doc ReceiptDocument) error {
	return r.tmpl.Execute(w, doc)
}

const receiptPage = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Reçu de Paiement</title>
    <style>
      * { margin: 0; padding: 0; box-sizing: border-box; }
      body {
        font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
        padding: 20mm;
        color: #1a1a2e;
      }
      .receipt {
        max-width: 210mm;
        margin: 0 auto;
        border: 2px solid #e0e0e0;
        border-radius: 8px;
        overflow: hidden;
      }
      .header {
        background: linear-gradient(135deg, #1565c0, #0d47a1);
        color: white;
        padding: 24px;
        text-align: center;
      }
      .header h1 { font-size: 24px; margin-bottom: 8px; }
      .header p { font-size: 14px; opacity: 0.9; }
      .receipt-number {
        background: #f5f5f5;
        padding: 12px 24px;
        text-align: right;
        font-size: 14px;
        border-bottom: 1px solid #e0e0e0;
      }
      .content { padding: 24px; }
      .info-grid {
        display: grid;
        grid-template-columns: 1fr 1fr;
        gap: 16px;
        margin-bottom: 24px;
      }
      .info-item {
        padding: 12px;
        background: #fafafa;
        border-radius: 6px;
      }
      .info-item label {
        display: block;
        font-size: 11px;
        color: #666;
        text-transform: uppercase;
        letter-spacing: 0.5px;
        margin-bottom: 4px;
      }
      .info-item span {
        font-size: 15px;
        font-weight: 500;
      }
      .info-item.wide { grid-column: 1 / span 2; }
      .amount-box {
        background: linear-gradient(135deg, #e8f5e9, #c8e6c9);
        padding: 20px;
        border-radius: 8px;
        text-align: center;
        margin: 24px 0;
      }
      .amount-box label {
        display: block;
        font-size: 12px;
        color: #2e7d32;
        margin-bottom: 8px;
      }
      .amount-box .amount {
        font-size: 32px;
        font-weight: 700;
        color: #1b5e20;
      }
      .signature {
        margin-top: 40px;
        padding-top: 16px;
        border-top: 1px dashed #ccc;
        text-align: right;
      }
      .signature-line {
        width: 200px;
        border-bottom: 1px solid #333;
        margin-left: auto;
        margin-bottom: 8px;
        height: 40px;
      }
      .footer {
        border-top: 1px solid #e0e0e0;
        padding: 16px 24px;
        display: flex;
        justify-content: space-between;
        font-size: 12px;
        color: #666;
      }
      @media print {
        body { padding: 0; }
        .receipt { border: none; }
      }
    </style>
  </head>
  <body>
    <div class="receipt">
      <div class="header">
        <h1>REÇU DE PAIEMENT</h1>
        <p>{{.SchoolName}}</p>
      </div>
      <div class="receipt-number">
        N° Reçu: <strong>{{.Number}}</strong> | Date: <strong>{{.Date}}</strong>
      </div>
      <div class="content">
        <div class="info-grid">
          <div class="info-item"><label>Nom Complet</label><span>{{.NomComplet}}</span></div>
          <div class="info-item"><label>N° Dossier</label><span>{{.DossierNumber}}</span></div>
          <div class="info-item"><label>Classe</label><span>{{.Classe}}</span></div>
          <div class="info-item"><label>Téléphone</label><span>{{.PhoneNumber}}</span></div>
          <div class="info-item"><label>Mode de Paiement</label><span>{{.PaymentTypeLabel}}</span></div>
          <div class="info-item"><label>Motif</label><span>{{.PaymentReason}}</span></div>
          {{if .ChequeDetails}}<div class="info-item wide"><label>Détails du Chèque</label><span>{{.ChequeDetails}}</span></div>{{end}}
        </div>
        <div class="amount-box">
          <label>MONTANT PAYÉ</label>
          <div class="amount">{{.Amount}}</div>
        </div>
        <div class="signature">
          <div class="signature-line"></div>
          <span>Signature &amp; Cachet</span>
        </div>
      </div>
      <div class="footer">
        <span>Document généré le {{.GeneratedAt}}</span>
        <span>RecuPro - Système de Gestion</span>
      </div>
    </div>
  </body>
</html>
`
