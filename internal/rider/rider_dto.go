package rider

type CreateRiderRequest struct {
	Name         string  `json:"name" binding:"required"`
	Phone        *string `json:"phone"`
	PerDaySalary float64 `json:"per_day_salary" binding:"gte=0"`
}

type UpdateRiderRequest struct {
	Name         string  `json:"name" binding:"required"`
	Phone        *string `json:"phone"`
	PerDaySalary float64 `json:"per_day_salary" binding:"gte=0"`
	IsActive     *bool   `json:"is_active"`
}

type RiderResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone,omitempty"`
	PerDaySalary float64 `json:"per_day_salary"`
	IsActive     bool    `json:"is_active"`
}
