package quotation

import "github.com/kondaas/quotation-backend/internal/domain/settings"

// Quotation is one customer quotation. The pricing, BOM, terms and warranty
// fields are a snapshot captured when the quotation was created: later edits
// to the settings singleton must never alter a stored quotation.
type Quotation struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	DiscomNumber string `json:"discomNumber"`

	ProductName string `json:"productName"`
	Date        string `json:"date"`
	PreparedBy  string `json:"preparedBy"`

	Pricing  settings.PricingTier `json:"pricing"`
	BOMItems []settings.BOMItem   `json:"bomItems"`
	Terms    []settings.Term      `json:"terms"`
	Warranty settings.Warranty    `json:"warranty"`
}

// CustomerDetails is the denormalized projection of a quotation's customer
// fields stored in its own row column, so the store can filter on them
// without opening the full payload.
type CustomerDetails struct {
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Discom  string `json:"discom"`
}

// Details returns the customer projection for this quotation.
func (q Quotation) Details() CustomerDetails {
	return CustomerDetails{
		Mobile:  q.Mobile,
		Email:   q.Email,
		Address: q.Address,
		Discom:  q.DiscomNumber,
	}
}
