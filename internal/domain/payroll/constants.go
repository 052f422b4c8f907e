package payroll

const (
	CountrySwitzerland = "CH"
	CountryColombia    = "CO"

	CurrencyCHF = "CHF"
	CurrencyCOP = "COP"

	ContractFullTime   = "tiempo_completo"
	ContractPartTime7  = "tiempo_parcial_7"
	ContractPartTime14 = "tiempo_parcial_14"
	ContractPartTime21 = "tiempo_parcial_21"
	ContractExternal   = "servicios_externos"

	// Daily hours an employee works before a day counts as overtime, used
	// when the profile does not configure its own threshold.
	DefaultNormalWorkingHours = 8.0
)

// Fallback rates applied when an employee has no hourly rate configured.
const (
	defaultRateCHF = 50
	defaultRateCOP = 50000
)

// CurrencyFor returns the payout currency for a payroll country.
func CurrencyFor(country string) string {
	if country == CountrySwitzerland {
		return CurrencyCHF
	}
	return CurrencyCOP
}
