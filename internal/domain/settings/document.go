package settings

// Document is the settings singleton as the backing store holds it: any of
// the eight fields may be absent. A nil pointer or nil slice means the store
// has no value for that field.
type Document struct {
	Company             *Company
	Bank                *Bank
	ProductPricing      []PricingTier
	Warranty            *Warranty
	Terms               []Term
	BOMTemplates        []BOMTemplate
	ProductDescriptions []ProductDescription
	Users               []User
}

// Merge builds a complete Settings value from the document, substituting the
// given defaults for every absent field. The substitution is per-field: a
// document carrying only a company profile still yields complete pricing,
// terms and so on from the defaults.
func (d *Document) Merge(defaults Settings) Settings {
	merged := defaults
	if d == nil {
		return merged
	}
	if d.Company != nil {
		merged.Company = *d.Company
	}
	if d.Bank != nil {
		merged.Bank = *d.Bank
	}
	if d.ProductPricing != nil {
		merged.ProductPricing = d.ProductPricing
	}
	if d.Warranty != nil {
		merged.Warranty = *d.Warranty
	}
	if d.Terms != nil {
		merged.Terms = d.Terms
	}
	if d.BOMTemplates != nil {
		merged.BOMTemplates = d.BOMTemplates
	}
	if d.ProductDescriptions != nil {
		merged.ProductDescriptions = d.ProductDescriptions
	}
	if d.Users != nil {
		merged.Users = d.Users
	}
	return merged
}
