package rates

import "github.com/shopspring/decimal"

// Settings is the flat per-property settings shape shared by both feed
// representations. Only the fields relevant to fee and deposit extraction
// are modelled; everything here is a plain field lookup, not a computation.
type Settings struct {
	CleaningFee     *decimal.Decimal
	ServiceFee      *decimal.Decimal
	PetFee          *decimal.Decimal
	TaxPercent      *decimal.Decimal
	SecurityDeposit *decimal.Decimal
}

// Fee is a flat named charge applied per stay.
type Fee struct {
	Name   string
	Amount decimal.Decimal
}

// Tax is a named percentage applied to the stay subtotal.
type Tax struct {
	Name    string
	Percent decimal.Decimal
}

// ExtractFees collects the flat fees present in the settings, in a stable
// order.
func ExtractFees(s Settings) []Fee {
	var fees []Fee
	if s.CleaningFee != nil {
		fees = append(fees, Fee{Name: "cleaning_fee", Amount: *s.CleaningFee})
	}
	if s.ServiceFee != nil {
		fees = append(fees, Fee{Name: "service_fee", Amount: *s.ServiceFee})
	}
	if s.PetFee != nil {
		fees = append(fees, Fee{Name: "pet_fee", Amount: *s.PetFee})
	}
	return fees
}

// ExtractTaxes collects the configured tax percentages.
func ExtractTaxes(s Settings) []Tax {
	var taxes []Tax
	if s.TaxPercent != nil {
		taxes = append(taxes, Tax{Name: "lodging_tax", Percent: *s.TaxPercent})
	}
	return taxes
}

// ExtractSecurityDeposit returns the deposit when one is configured.
func ExtractSecurityDeposit(s Settings) (decimal.Decimal, bool) {
	if s.SecurityDeposit == nil {
		return decimal.Decimal{}, false
	}
	return *s.SecurityDeposit, true
}
