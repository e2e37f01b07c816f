package cart

import (
	"testing"

	"curaone-backend/internal/models"
)

func catalog() []models.LabTest {
	return []models.LabTest{
		{
			ID: 1, Name: "Complete Blood Count", Category: "blood",
			Prices: []models.LabPrice{
				{Lab: "Lab A", Price: 25, OriginalPrice: 30},
				{Lab: "Lab B", Price: 28, OriginalPrice: 35},
			},
		},
		{
			ID: 2, Name: "Urine Routine", Category: "urine",
			Prices: []models.LabPrice{
				{Lab: "Lab A", Price: 15, OriginalPrice: 18},
				{Lab: "Lab C", Price: 14, OriginalPrice: 20},
			},
		},
		{
			ID: 3, Name: "Thyroid Profile", Category: "hormone",
			Prices: []models.LabPrice{
				{Lab: "Lab B", Price: 50, OriginalPrice: 60},
				{Lab: "Lab C", Price: 48, OriginalPrice: 55},
			},
		},
	}
}

func TestTotalsRecomputedFromItems(t *testing.T) {
	tests := catalog()
	c := &Cart{}

	// prices 25+15+50, originals 30+18+60
	c.Add(tests[0], "Lab A", 25)
	c.Add(tests[1], "Lab A", 15)
	c.Add(tests[2], "Lab B", 50)

	if got := c.Total(); got != 90 {
		t.Errorf("Total() = %v, want 90", got)
	}
	if got := c.TotalSavings(); got != 18 {
		t.Errorf("TotalSavings() = %v, want 18", got)
	}
}

func TestDuplicateAddsKeepBothItems(t *testing.T) {
	tests := catalog()
	c := &Cart{}

	first := c.Add(tests[0], "Lab A", 25)
	second := c.Add(tests[0], "Lab A", 25)

	if first.ID != second.ID {
		t.Errorf("composite ids differ: %q vs %q", first.ID, second.ID)
	}
	if got := len(c.Items()); got != 2 {
		t.Fatalf("cart has %d items, want 2", got)
	}
	if got := c.Total(); got != 50 {
		t.Errorf("Total() = %v, want 50", got)
	}
}

func TestAddFallsBackToPriceWhenLabUnlisted(t *testing.T) {
	tests := catalog()
	c := &Cart{}

	item := c.Add(tests[0], "Lab Z", 22)

	if item.OriginalPrice != 22 {
		t.Errorf("OriginalPrice = %v, want fallback 22", item.OriginalPrice)
	}
	if got := c.TotalSavings(); got != 0 {
		t.Errorf("TotalSavings() = %v, want 0", got)
	}
}

func TestRemoveDropsFirstMatchOnly(t *testing.T) {
	tests := catalog()
	c := &Cart{}
	c.Add(tests[0], "Lab A", 25)
	c.Add(tests[0], "Lab A", 25)

	if !c.Remove("1-Lab A") {
		t.Fatal("Remove() = false, want true")
	}
	if got := len(c.Items()); got != 1 {
		t.Errorf("cart has %d items after remove, want 1", got)
	}
	if c.Remove("1-Lab A"); len(c.Items()) != 0 {
		t.Errorf("cart has %d items after second remove, want 0", len(c.Items()))
	}
	if c.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
}

func TestReferralCodeDoesNotChangeTotals(t *testing.T) {
	tests := catalog()
	c := &Cart{}
	c.Add(tests[0], "Lab A", 25)
	before := c.Total()

	if !ValidReferralCode("  HEALTH10  ") {
		t.Error("ValidReferralCode with content = false, want true")
	}
	if ValidReferralCode("   ") {
		t.Error("ValidReferralCode with blanks = true, want false")
	}
	if got := c.Total(); got != before {
		t.Errorf("Total() changed after referral: %v -> %v", before, got)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		target string
		want   string
	}{
		{"cart total in INR", 90, "INR", "₹7,515"},
		{"indian grouping", 1500, "INR", "₹1,25,250"},
		{"rounds at display", 0.4, "INR", "₹33"},
		{"usd passthrough", 1234, "USD", "$1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount, tt.target); got != tt.want {
				t.Errorf("FormatCurrency(%v, %s) = %q, want %q", tt.amount, tt.target, got, tt.want)
			}
		})
	}
}

func TestFilterTests(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		category string
		want     []string
	}{
		{"all", "", "", []string{"Complete Blood Count", "Urine Routine", "Thyroid Profile"}},
		{"substring case-insensitive", "blood", "", []string{"Complete Blood Count"}},
		{"category", "", "hormone", []string{"Thyroid Profile"}},
		{"term and category disagree", "thyroid", "blood", nil},
		{"no match", "x-ray", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTests(catalog(), tt.term, tt.category)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterTests() returned %d tests, want %d", len(got), len(tt.want))
			}
			for i, test := range got {
				if test.Name != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, test.Name, tt.want[i])
				}
			}
		})
	}
}

func TestRegistryHandsOutOneCartPerUser(t *testing.T) {
	r := NewRegistry()

	a := r.Get(1)
	if r.Get(1) != a {
		t.Error("same user got a different cart")
	}
	if r.Get(2) == a {
		t.Error("different users share a cart")
	}
}
