package services

import "errors"

// ErrMissingCardRate is returned when a line has no usable card rate. The
// card rate must come from the user or the asset record; it is never
// substituted with a default.
var ErrMissingCardRate = errors.New("card rate is required")

// LineItem is one asset's participation in a campaign or plan, as stored.
// Optional fields are pointers so that absent and zero stay distinguishable;
// the defaulting rules below depend on that.
type LineItem struct {
	AssetID         string
	CardRate        float64
	BaseRate        float64
	SalesPrice      *float64
	NegotiatedPrice *float64
	PrintingCharge  float64
	MountingCharge  float64
	BookedDays      *int
	GSTPercent      float64
	GSTType         GSTType
	TDSApplicable   bool
	TDSPercent      float64
}

// LineContext carries the parent campaign/plan state a line prices against.
type LineContext struct {
	DurationDays int
}

// PricedLine is the fully derived pricing of one line. Values are never
// stored; they are recomputed on every read so rate edits can't leave a
// stale cache behind. Every monetary field is rounded at its own step.
type PricedLine struct {
	AssetID         string     `json:"asset_id"`
	EffectivePrice  float64    `json:"effective_price"`
	BookedDays      int        `json:"booked_days"`
	DiscountAmount  float64    `json:"discount_amount"`
	DiscountPercent float64    `json:"discount_percent"`
	ProfitAmount    float64    `json:"profit_amount"`
	ProfitPercent   float64    `json:"profit_percent"`
	ProRataAmount   float64    `json:"pro_rata_amount"`
	PrintingCharge  float64    `json:"printing_charge"`
	MountingCharge  float64    `json:"mounting_charge"`
	LineTotal       float64    `json:"line_total"`
	Tax             TaxBreakup `json:"tax"`
	TaxAmount       float64    `json:"tax_amount"`
	TotalWithTax    float64    `json:"total_with_tax"`
	TDSAmount       float64    `json:"tds_amount"`
	NetPayable      float64    `json:"net_payable"`
}

// PriceLine derives the full pricing of one line within its campaign or
// plan. The pro-rata amount is always day-based against the 30-day cycle,
// even when the parent campaign prices itself in MONTH mode: campaign-level
// totals may use the month multiplier while per-line display stays day-wise.
func PriceLine(item LineItem, ctx LineContext) (PricedLine, error) {
	if item.CardRate <= 0 {
		return PricedLine{}, ErrMissingCardRate
	}

	effective := item.CardRate
	if item.SalesPrice != nil {
		effective = *item.SalesPrice
	}
	if item.NegotiatedPrice != nil {
		effective = *item.NegotiatedPrice
	}

	days := ctx.DurationDays
	if item.BookedDays != nil {
		days = *item.BookedDays
	}

	p := PricedLine{
		AssetID:        item.AssetID,
		EffectivePrice: effective,
		BookedDays:     days,
		PrintingCharge: item.PrintingCharge,
		MountingCharge: item.MountingCharge,
	}

	p.DiscountAmount = Round2(item.CardRate - effective)
	p.DiscountPercent = Round2(p.DiscountAmount / item.CardRate * 100)

	p.ProfitAmount = Round2(effective - item.BaseRate)
	switch {
	case item.BaseRate == 0 && effective == 0:
		p.ProfitPercent = 0
	case item.BaseRate == 0:
		p.ProfitPercent = 100
	default:
		p.ProfitPercent = Round2(p.ProfitAmount / item.BaseRate * 100)
	}

	p.ProRataAmount = ProRata(effective, days)
	p.LineTotal = Round2(p.ProRataAmount + item.PrintingCharge + item.MountingCharge)

	p.Tax = ComposeTax(p.LineTotal, item.GSTPercent, item.GSTType)
	p.TaxAmount = p.Tax.TotalTax
	p.TotalWithTax = Round2(p.LineTotal + p.TaxAmount)

	tds := ApplyTDS(p.TotalWithTax, item.TDSApplicable, item.TDSPercent)
	p.TDSAmount = tds.TDSAmount
	p.NetPayable = tds.NetPayable

	return p, nil
}

// CampaignTotals aggregates already-priced lines. Sums of the rounded
// per-line parts are the source of truth for display, so the grand totals
// are sums of parts, never a recomputation from unrounded values.
type CampaignTotals struct {
	SubTotal     float64 `json:"sub_total"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalWithTax float64 `json:"total_with_tax"`
	TDSAmount    float64 `json:"tds_amount"`
	NetPayable   float64 `json:"net_payable"`
}

// TotalLines sums priced lines into campaign totals.
func TotalLines(lines []PricedLine) CampaignTotals {
	var t CampaignTotals
	for _, l := range lines {
		t.SubTotal = Round2(t.SubTotal + l.LineTotal)
		t.TaxAmount = Round2(t.TaxAmount + l.TaxAmount)
		t.TotalWithTax = Round2(t.TotalWithTax + l.TotalWithTax)
		t.TDSAmount = Round2(t.TDSAmount + l.TDSAmount)
		t.NetPayable = Round2(t.NetPayable + l.NetPayable)
	}
	return t
}
