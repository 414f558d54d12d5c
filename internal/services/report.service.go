package services

import (
	"strings"
	"time"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
)

// Summary holds the derived display figures for a set of receipts. Values
// are recomputed on demand and never stored. Formatting is the renderer's
// concern, these are plain numbers.
type Summary struct {
	TotalCount   int     `json:"totalCount"`
	TotalAmount  float64 `json:"totalAmount"`
	UniquePayers int     `json:"uniquePayers"`
	MonthCount   int     `json:"monthCount"`
	MonthAmount  float64 `json:"monthAmount"`
}

// Filter returns the receipts matching every active predicate, in the same
// relative order they came in. An all-empty filter is the identity.
func Filter(receipts []*model.Receipt, f model.ReceiptFilter) []*model.Receipt {
	if f.IsZero() {
		return receipts
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))

	var from, to time.Time
	var fromOK, toOK bool
	if f.DateFrom != "" {
		if t, err := time.Parse(model.DateLayout, f.DateFrom); err == nil {
			from, fromOK = t, true
		}
	}
	if f.DateTo != "" {
		if t, err := time.Parse(model.DateLayout, f.DateTo); err == nil {
			to, toOK = t, true
		}
	}

	out := make([]*model.Receipt, 0, len(receipts))
	for _, r := range receipts {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.NomComplet), search) &&
			!strings.Contains(strings.ToLower(r.DossierNumber), search) {
			continue
		}
		if f.PaymentType != "" && r.PaymentType != f.PaymentType {
			continue
		}
		if f.Classe != "" && r.Classe != f.Classe {
			continue
		}
		if fromOK || toOK {
			day, ok := r.Day()
			if !ok {
				continue
			}
			if fromOK && day.Before(from) {
				continue
			}
			if toOK && day.After(to) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// Summarize computes the dashboard figures over a receipt set. The month
// subset is the calendar month of now, not a rolling window.
func Summarize(receipts []*model.Receipt, now time.Time) Summary {
	s := Summary{TotalCount: len(receipts)}

	payers := make(map[string]struct{}, len(receipts))
	for _, r := range receipts {
		s.TotalAmount += r.Amount
		payers[r.NomComplet] = struct{}{}

		if day, ok := r.Day(); ok &&
			day.Year() == now.Year() && day.Month() == now.Month() {
			s.MonthCount++
			s.MonthAmount += r.Amount
		}
	}
	s.UniquePayers = len(payers)
	return s
}
