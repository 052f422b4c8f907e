package payroll

import "testing"

func ptr(v float64) *float64 { return &v }

func TestEffectiveHourlyRate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    float64
	}{
		{
			name:    "no rate defaults to CHF constant",
			profile: Profile{Country: CountrySwitzerland},
			want:    50,
		},
		{
			name:    "no rate defaults to COP constant",
			profile: Profile{Country: CountryColombia},
			want:    50000,
		},
		{
			name:    "swiss rate passes through",
			profile: Profile{Country: CountrySwitzerland, ContractType: ContractFullTime, HourlyRate: ptr(45), MonthlySalary: ptr(8000)},
			want:    45,
		},
		{
			name:    "external contractor keeps hourly rate regardless of salary",
			profile: Profile{Country: CountryColombia, ContractType: ContractExternal, HourlyRate: ptr(20000), MonthlySalary: ptr(5000000)},
			want:    20000,
		},
		{
			name:    "missing contract type keeps hourly rate",
			profile: Profile{Country: CountryColombia, HourlyRate: ptr(18000), MonthlySalary: ptr(5000000)},
			want:    18000,
		},
		{
			name:    "full time derives rate from monthly salary",
			profile: Profile{Country: CountryColombia, ContractType: ContractFullTime, HourlyRate: ptr(1), MonthlySalary: ptr(3520000)},
			want:    20000, // 3520000 / (22 * 8)
		},
		{
			name:    "part time 14 derives rate from monthly salary",
			profile: Profile{Country: CountryColombia, ContractType: ContractPartTime14, HourlyRate: ptr(1), MonthlySalary: ptr(1120000)},
			want:    10000, // 1120000 / (14 * 8)
		},
		{
			name:    "unknown contract type degrades to full time days",
			profile: Profile{Country: CountryColombia, ContractType: "medio_tiempo", HourlyRate: ptr(1), MonthlySalary: ptr(3520000)},
			want:    20000,
		},
		{
			name:    "salaried contract without salary falls back to hourly rate",
			profile: Profile{Country: CountryColombia, ContractType: ContractFullTime, HourlyRate: ptr(15000)},
			want:    15000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveHourlyRate(tt.profile)
			if got != tt.want {
				t.Fatalf("expected rate %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDaysForContractType(t *testing.T) {
	tests := []struct {
		contract string
		want     int
	}{
		{ContractFullTime, 22},
		{ContractPartTime7, 7},
		{ContractPartTime14, 14},
		{ContractPartTime21, 21},
		{ContractExternal, 0},
		{"something_else", 22},
		{"", 22},
	}
	for _, tt := range tests {
		if got := DaysForContractType(tt.contract); got != tt.want {
			t.Fatalf("contract %q: expected %d days, got %d", tt.contract, tt.want, got)
		}
	}
}
