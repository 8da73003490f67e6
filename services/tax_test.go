package services

import (
	"math"
	"testing"
)

func TestComposeTax(t *testing.T) {
	tests := []struct {
		name       string
		base       float64
		gstPercent float64
		gstType    GSTType
		expect     TaxBreakup
	}{
		{
			name: "intra-state split", base: 1000, gstPercent: 18, gstType: GSTTypeCGSTSGST,
			expect: TaxBreakup{CGST: 90, SGST: 90, TotalTax: 180},
		},
		{
			name: "inter-state single", base: 1000, gstPercent: 18, gstType: GSTTypeIGST,
			expect: TaxBreakup{IGST: 180, TotalTax: 180},
		},
		{
			name: "none", base: 1000, gstPercent: 18, gstType: GSTTypeNone,
			expect: TaxBreakup{},
		},
		{
			name: "odd base rounds each half", base: 333.33, gstPercent: 18, gstType: GSTTypeCGSTSGST,
			expect: TaxBreakup{CGST: 30, SGST: 30, TotalTax: 60},
		},
		{
			name: "five percent split", base: 999.99, gstPercent: 5, gstType: GSTTypeCGSTSGST,
			expect: TaxBreakup{CGST: 25, SGST: 25, TotalTax: 50},
		},
		{
			name: "zero percent", base: 1000, gstPercent: 0, gstType: GSTTypeIGST,
			expect: TaxBreakup{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeTax(tt.base, tt.gstPercent, tt.gstType)
			if got != tt.expect {
				t.Errorf("ComposeTax(%v, %v, %s) = %+v, want %+v", tt.base, tt.gstPercent, tt.gstType, got, tt.expect)
			}
		})
	}
}

// CGST and SGST must stay equal and sum to the full GST amount within a
// paisa for any base and rate.
func TestComposeTaxSplitInvariant(t *testing.T) {
	bases := []float64{0, 0.01, 99.99, 1234.56, 100000, 333.33}
	rates := []float64{0, 5, 12, 18, 28, 100}
	for _, base := range bases {
		for _, rate := range rates {
			got := ComposeTax(base, rate, GSTTypeCGSTSGST)
			if got.CGST != got.SGST {
				t.Errorf("base %v rate %v: cgst %v != sgst %v", base, rate, got.CGST, got.SGST)
			}
			full := Round2(base * rate / 100)
			if math.Abs(got.CGST+got.SGST-full) > 0.01 {
				t.Errorf("base %v rate %v: split sum %v too far from %v", base, rate, got.CGST+got.SGST, full)
			}
		}
	}
}

func TestApplyTDS(t *testing.T) {
	tests := []struct {
		name         string
		totalWithTax float64
		applicable   bool
		tdsPercent   float64
		expectTDS    float64
		expectNet    float64
	}{
		// TDS is computed on the tax-inclusive total.
		{"two percent on gross", 1180, true, 2, 23.60, 1156.40},
		{"not applicable", 1180, false, 2, 0, 1180},
		{"zero percent", 1180, true, 0, 0, 1180},
		{"ten percent", 5000, true, 10, 500, 4500},
		{"fractional total", 1234.56, true, 1, 12.35, 1222.21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyTDS(tt.totalWithTax, tt.applicable, tt.tdsPercent)
			if got.TDSAmount != tt.expectTDS {
				t.Errorf("tds = %v, want %v", got.TDSAmount, tt.expectTDS)
			}
			if got.NetPayable != tt.expectNet {
				t.Errorf("net = %v, want %v", got.NetPayable, tt.expectNet)
			}
		})
	}
}
