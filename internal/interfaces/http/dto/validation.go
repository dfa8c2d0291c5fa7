package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// QuotationURI binds the quotation id path parameter.
type QuotationURI struct {
	ID string `uri:"id" binding:"required,quotationid"`
}

// maxQuotationIDLength matches the width of the quotations.id column.
const maxQuotationIDLength = 64

// RegisterValidators installs custom validation rules on gin's binding
// validator. Call once at startup before routes are served.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("quotationid", validQuotationID)
}

// validQuotationID accepts any printable identifier that fits the id column.
// Identifier prefixes are deliberately not restricted here: sequence scanning
// simply ignores identifiers it does not recognize.
func validQuotationID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id == "" || len(id) > maxQuotationIDLength {
		return false
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}
