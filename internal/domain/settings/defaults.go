package settings

import "github.com/shopspring/decimal"

// DefaultCatalog returns the built-in baseline settings used to initialize an
// empty store and to fill any field the store is missing. The returned value
// is freshly constructed on every call so callers can never mutate the
// baseline for other callers.
func DefaultCatalog() Settings {
	return Settings{
		Company: Company{
			Name:            "Kondaas Automation Pvt Ltd",
			HeadOffice:      "123, Solar Plaza, Opp. TNEB, Coimbatore, Tamil Nadu",
			RegionalOffice1: "Branch Office, Chennai, Tamil Nadu",
			RegionalOffice2: "Service Center, Madurai, Tamil Nadu",
			Phone:           "+91 9876543210",
			Email:           "info@kondaas.com",
			Website:         "www.kondaas.com",
			Logo:            "",
			Seal:            "",
			GSTIN:           "33AAAAA0000A1Z5",
		},
		Bank: Bank{
			CompanyName:   "Kondaas Automation Private Limited",
			BankName:      "HDFC BANK",
			AccountNumber: "50200012345678",
			Branch:        "Coimbatore Main",
			IFSC:          "HDFC0000123",
			Address:       "Avinashi Road, Coimbatore",
			PAN:           "ABCDE1234F",
			UPIID:         "kondaas@hdfc",
			GSTNumber:     "33AAAAA0000A1Z5",
		},
		ProductPricing: []PricingTier{
			{
				ID:                      "p3kw",
				Name:                    "3kW Standard Pricing",
				OnGridSystemCost:        decimal.NewFromInt(185000),
				RooftopPlantCost:        decimal.NewFromInt(185000),
				SubsidyAmount:           decimal.NewFromInt(78000),
				TNEBCharges:             decimal.NewFromInt(0),
				AdditionalMaterialCost:  decimal.NewFromInt(0),
				CustomizedStructureCost: decimal.NewFromInt(0),
			},
			{
				ID:                      "p5kw",
				Name:                    "5kW Standard Pricing",
				OnGridSystemCost:        decimal.NewFromInt(295000),
				RooftopPlantCost:        decimal.NewFromInt(295000),
				SubsidyAmount:           decimal.NewFromInt(78000),
				TNEBCharges:             decimal.NewFromInt(0),
				AdditionalMaterialCost:  decimal.NewFromInt(0),
				CustomizedStructureCost: decimal.NewFromInt(0),
			},
		},
		Warranty: Warranty{
			PanelWarranty:    "25 Years Performance Warranty (Adani Solar)",
			InverterWarranty: "5 to 10 Years Product Warranty (On-Grid String)",
			SystemWarranty:   "5 Years Free Service (Kondaas Automation)",
			MonitoringSystem: "Standard Online Monitoring (Wi-Fi Required)",
		},
		Terms: []Term{
			{ID: "1", Text: "Structure height will be 1 to 3 feet from floor level.", Enabled: true, Order: 1},
			{ID: "2", Text: "TNEB application & registration charges are included in the above cost.", Enabled: true, Order: 2},
			{ID: "3", Text: "The customer shall provide necessary space and shadow-free area for installation.", Enabled: true, Order: 3},
			{ID: "4", Text: "Civil works like concrete foundation if needed will be extra.", Enabled: true, Order: 4},
			{ID: "5", Text: "The subsidy will be credited to the customer account as per govt norms.", Enabled: true, Order: 5},
			{ID: "6", Text: "Any additional cabling beyond 30 meters will be charged extra.", Enabled: true, Order: 6},
		},
		BOMTemplates: []BOMTemplate{
			{
				ID:   "3kw-std",
				Name: "3kW Standard On-Grid",
				Items: []BOMItem{
					{ID: "1", Product: "Solar Panels", UOM: "Nos", Quantity: "8", Specification: "550Wp Mono PERC", Make: "Adani/Waaree"},
					{ID: "2", Product: "On-Grid Inverter", UOM: "No", Quantity: "1", Specification: "3kW String Inverter", Make: "Growatt/Solis"},
					{ID: "3", Product: "DC SPD", UOM: "Nos", Quantity: "2", Specification: "Type II 600V", Make: "Citel/Suntree"},
					{ID: "4", Product: "DC Fuse", UOM: "Nos", Quantity: "2", Specification: "15A/1000V", Make: "Mersen"},
					{ID: "5", Product: "DC Cable", UOM: "Mtrs", Quantity: "30", Specification: "4sqmm multi strand", Make: "Polycab/Siechem"},
					{ID: "10", Product: "Lightning Arrester", UOM: "Set", Quantity: "1", Specification: "Solid Copper 1M", Make: "Standard"},
				},
			},
		},
		ProductDescriptions: []ProductDescription{
			{ID: "1", Name: "3kW ON-GRID SOLAR POWER GENERATING SYSTEM", DefaultPricingID: "p3kw", DefaultBOMTemplateID: "3kw-std"},
			{ID: "2", Name: "5kW ON-GRID SOLAR POWER GENERATING SYSTEM", DefaultPricingID: "p5kw", DefaultBOMTemplateID: ""},
			{ID: "3", Name: "10kW ON-GRID SOLAR POWER GENERATING SYSTEM", DefaultPricingID: "", DefaultBOMTemplateID: ""},
		},
		Users: []User{
			{
				ID:       "admin-01",
				Name:     "Administrator",
				Username: "admin",
				Password: "admin123",
				Role:     RoleAdmin,
			},
		},
	}
}
