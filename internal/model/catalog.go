package model

// Catalog carries the enumerated sets a deployment accepts: payment types
// with their display labels, class names and payment reasons. The sets are
// configuration data, never compiled-in constants.
type Catalog struct {
	paymentTypes []string
	labels       map[string]string
	classes      map[string]struct{}
	reasons      map[string]struct{}
}

// NewCatalog pairs each payment type with the label at the same index.
// Types without a label fall back to the raw code at display time.
func NewCatalog(paymentTypes, paymentTypeLabels, classes, reasons []string) *Catalog {
	c := &Catalog{
		paymentTypes: paymentTypes,
		labels:       make(map[string]string, len(paymentTypes)),
		classes:      make(map[string]struct{}, len(classes)),
		reasons:      make(map[string]struct{}, len(reasons)),
	}
	for i, t := range paymentTypes {
		if i < len(paymentTypeLabels) {
			c.labels[t] = paymentTypeLabels[i]
		}
	}
	for _, cl := range classes {
		c.classes[cl] = struct{}{}
	}
	for _, r := range reasons {
		c.reasons[r] = struct{}{}
	}
	return c
}

func (c *Catalog) HasPaymentType(t string) bool {
	_, ok := c.labels[t]
	if ok {
		return true
	}
	for _, pt := range c.paymentTypes {
		if pt == t {
			return true
		}
	}
	return false
}

func (c *Catalog) HasClasse(classe string) bool {
	_, ok := c.classes[classe]
	return ok
}

func (c *Catalog) HasReason(reason string) bool {
	_, ok := c.reasons[reason]
	return ok
}

// PaymentTypeLabel returns the configured display label for a payment type
// code. Unknown codes come back verbatim, never an error.
func (c *Catalog) PaymentTypeLabel(t string) string {
	if label, ok := c.labels[t]; ok {
		return label
	}
	return t
}

func (c *Catalog) PaymentTypes() []string {
	return c.paymentTypes
}
