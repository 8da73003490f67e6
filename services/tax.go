package services

// GSTType selects how GST on a taxable base is split.
type GSTType string

const (
	// GSTTypeCGSTSGST splits the GST rate into equal intra-state halves.
	GSTTypeCGSTSGST GSTType = "cgst_sgst"
	// GSTTypeIGST applies the full rate as a single inter-state component.
	GSTTypeIGST GSTType = "igst"
	// GSTTypeNone applies no GST.
	GSTTypeNone GSTType = "none"
)

// Default GST split used by the expense form: 9% + 9% intra-state or a
// single 18% inter-state, user-overridable.
const (
	DefaultGSTPercent  = 18.0
	DefaultCGSTPercent = 9.0
	DefaultSGSTPercent = 9.0
)

// TaxBreakup is the GST composition of a taxable base.
type TaxBreakup struct {
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	IGST     float64 `json:"igst"`
	TotalTax float64 `json:"total_tax"`
}

// ComposeTax splits GST on a base amount per the GST type. Each component
// is rounded to 2 decimals at the point of computation; TotalTax is the
// sum of the rounded components.
func ComposeTax(base, gstPercent float64, gstType GSTType) TaxBreakup {
	switch gstType {
	case GSTTypeCGSTSGST:
		half := Round2(base * gstPercent / 100 / 2)
		return TaxBreakup{CGST: half, SGST: half, TotalTax: Round2(half + half)}
	case GSTTypeIGST:
		full := Round2(base * gstPercent / 100)
		return TaxBreakup{IGST: full, TotalTax: full}
	default:
		return TaxBreakup{}
	}
}

// TDSResult is the withholding deducted from a payable amount.
type TDSResult struct {
	TDSAmount  float64 `json:"tds_amount"`
	NetPayable float64 `json:"net_payable"`
}

// ApplyTDS computes the TDS deduction and net payable. TDS is deducted
// from the tax-inclusive total, not the pre-tax base; downstream displays
// assume this.
func ApplyTDS(totalWithTax float64, tdsApplicable bool, tdsPercent float64) TDSResult {
	if !tdsApplicable {
		return TDSResult{NetPayable: Round2(totalWithTax)}
	}
	tds := Round2(totalWithTax * tdsPercent / 100)
	return TDSResult{
		TDSAmount:  tds,
		NetPayable: Round2(totalWithTax - tds),
	}
}
