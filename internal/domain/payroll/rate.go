package payroll

// EffectiveHourlyRate resolves the rate used for pay computation.
//
// Employees without a configured hourly rate fall back to a per-country
// default. Swiss employees, employees without a contract type and external
// contractors are billed at their flat hourly rate. Salaried Colombian
// contracts derive the rate from the monthly salary over the contract's
// working days at eight hours per day, falling back to the hourly rate when
// no monthly salary is set.
func EffectiveHourlyRate(p Profile) float64 {
	if p.HourlyRate == nil {
		if p.Country == CountrySwitzerland {
			return defaultRateCHF
		}
		return defaultRateCOP
	}

	if p.Country == CountrySwitzerland || p.ContractType == "" || p.ContractType == ContractExternal {
		return *p.HourlyRate
	}

	if p.MonthlySalary == nil {
		return *p.HourlyRate
	}

	totalHours := float64(DaysForContractType(p.ContractType)) * 8
	return *p.MonthlySalary / totalHours
}

// DaysForContractType maps a contract type to its monthly working days.
// Unknown contract types degrade to full time rather than failing.
func DaysForContractType(contractType string) int {
	switch contractType {
	case ContractFullTime:
		return 22
	case ContractPartTime7:
		return 7
	case ContractPartTime14:
		return 14
	case ContractPartTime21:
		return 21
	case ContractExternal:
		return 0
	default:
		return 22
	}
}
