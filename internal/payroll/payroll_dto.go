package payroll

type MonthlySalaryQuery struct {
	RiderName string `form:"rider_name" binding:"required"`
	Year      int    `form:"year" binding:"required,gte=2000,lte=2100"`
	Month     int    `form:"month" binding:"required,gte=1,lte=12"`
}

type MonthlySalaryResponse struct {
	RiderName    string  `json:"rider_name"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	PerDaySalary float64 `json:"per_day_salary"`

	MonthlyAggregate
}
