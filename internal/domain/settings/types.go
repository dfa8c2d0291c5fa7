package settings

import "github.com/shopspring/decimal"

// Company holds the company profile printed on every quotation.
type Company struct {
	Name            string `json:"name"`
	HeadOffice      string `json:"headOffice"`
	RegionalOffice1 string `json:"regionalOffice1"`
	RegionalOffice2 string `json:"regionalOffice2"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Website         string `json:"website"`
	Logo            string `json:"logo"`
	Seal            string `json:"seal"`
	GSTIN           string `json:"gstin"`
}

// Bank holds the banking details shown on the payment page of a quotation.
type Bank struct {
	CompanyName   string `json:"companyName"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	Branch        string `json:"branch"`
	IFSC          string `json:"ifsc"`
	Address       string `json:"address"`
	PAN           string `json:"pan"`
	UPIID         string `json:"upiId"`
	GSTNumber     string `json:"gstNumber"`
}

// PricingTier is one named pricing configuration for a system size.
// All amounts are in INR.
type PricingTier struct {
	ID                      string          `json:"id"`
	Name                    string          `json:"name"`
	OnGridSystemCost        decimal.Decimal `json:"onGridSystemCost"`
	RooftopPlantCost        decimal.Decimal `json:"rooftopPlantCost"`
	SubsidyAmount           decimal.Decimal `json:"subsidyAmount"`
	TNEBCharges             decimal.Decimal `json:"tnebCharges"`
	AdditionalMaterialCost  decimal.Decimal `json:"additionalMaterialCost"`
	CustomizedStructureCost decimal.Decimal `json:"customizedStructureCost"`
}

// Warranty holds the warranty text blocks.
type Warranty struct {
	PanelWarranty    string `json:"panelWarranty"`
	InverterWarranty string `json:"inverterWarranty"`
	SystemWarranty   string `json:"systemWarranty"`
	MonitoringSystem string `json:"monitoringSystem"`
}

// Term is a single terms-and-conditions entry. Order determines the display
// sequence and is not required to be contiguous.
type Term struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
}

// BOMItem is one line of a bill-of-materials template. Item IDs are unique
// within their owning template only.
type BOMItem struct {
	ID            string `json:"id"`
	Product       string `json:"product"`
	UOM           string `json:"uom"`
	Quantity      string `json:"quantity"`
	Specification string `json:"specification"`
	Make          string `json:"make"`
}

// BOMTemplate is a named bill-of-materials template.
type BOMTemplate struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Items []BOMItem `json:"items"`
}

// ProductDescription names a sellable system configuration. The pricing and
// BOM template references are soft: an empty string means unset, and neither
// is validated against existence.
type ProductDescription struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	DefaultPricingID     string `json:"defaultPricingId"`
	DefaultBOMTemplateID string `json:"defaultBomTemplateId"`
}

// UserRole identifies the access level of an account.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User is an application account. Username uniqueness is expected but not
// enforced here.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

// Settings is the complete, fully-populated settings singleton. After
// reconciliation every field is guaranteed non-zero.
type Settings struct {
	Company             Company              `json:"company"`
	Bank                Bank                 `json:"bank"`
	ProductPricing      []PricingTier        `json:"productPricing"`
	Warranty            Warranty             `json:"warranty"`
	Terms               []Term               `json:"terms"`
	BOMTemplates        []BOMTemplate        `json:"bomTemplates"`
	ProductDescriptions []ProductDescription `json:"productDescriptions"`
	Users               []User               `json:"users"`
}
