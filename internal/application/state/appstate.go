package state

import (
	"github.com/kondaas/quotation-backend/internal/domain/quotation"
	"github.com/kondaas/quotation-backend/internal/domain/settings"
)

// AppState is the complete application state: the reconciled settings
// singleton plus every stored quotation and the next allocatable quotation
// sequence number. After LoadState every field is populated.
type AppState struct {
	settings.Settings
	Quotations []quotation.Quotation `json:"quotations"`
	NextID     int                   `json:"nextId"`
}
