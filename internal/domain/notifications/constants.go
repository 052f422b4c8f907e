package notifications

const (
	TypePayrollPeriodEnd  = "payroll_period_end"
	TypeStaleWorkInterval = "stale_work_interval"
)
