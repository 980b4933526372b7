package salesentry

type CreateSalesEntryRequest struct {
	EntryDate   string `json:"entry_date" binding:"required,datetime=2006-01-02"`
	RiderName   string `json:"rider_name" binding:"required"`
	VehicleName string `json:"vehicle_name" binding:"required"`

	PreviousReading    float64  `json:"previous_reading" binding:"gte=0"`
	CurrentReading     float64  `json:"current_reading" binding:"gte=0"`
	OverrideLitersSold *float64 `json:"override_liters_sold" binding:"omitempty,gte=0"`

	RatePerLiter   float64 `json:"rate_per_liter" binding:"gte=0"`
	CashReceived   float64 `json:"cash_received" binding:"gte=0"`
	OnlineReceived float64 `json:"online_received" binding:"gte=0"`
	DueCollected   float64 `json:"due_collected" binding:"gte=0"`
	TokenMoney     float64 `json:"token_money" binding:"gte=0"`
	StaffExpense   float64 `json:"staff_expense" binding:"gte=0"`
	ExtraAmount    float64 `json:"extra_amount" binding:"gte=0"`

	HoursWorked      float64 `json:"hours_worked" binding:"gte=0,lte=24"`
	CommissionEarned float64 `json:"commission_earned" binding:"gte=0"`
	Comment          string  `json:"comment"`
}

type SalesEntryFilter struct {
	RiderName   string `form:"rider_name"`
	VehicleName string `form:"vehicle_name"`
	Year        int    `form:"year" binding:"omitempty,gte=2000,lte=2100"`
	Month       int    `form:"month" binding:"omitempty,gte=1,lte=12"`
}

type SalesEntryResponse struct {
	ID          string `json:"id"`
	EntryDate   string `json:"entry_date"`
	RiderName   string `json:"rider_name"`
	VehicleName string `json:"vehicle_name"`

	PreviousReading    float64  `json:"previous_reading"`
	CurrentReading     float64  `json:"current_reading"`
	OverrideLitersSold *float64 `json:"override_liters_sold,omitempty"`
	LitersSold         float64  `json:"liters_sold"`

	RatePerLiter   float64 `json:"rate_per_liter"`
	CashReceived   float64 `json:"cash_received"`
	OnlineReceived float64 `json:"online_received"`
	DueCollected   float64 `json:"due_collected"`
	TokenMoney     float64 `json:"token_money"`
	StaffExpense   float64 `json:"staff_expense"`
	ExtraAmount    float64 `json:"extra_amount"`

	HoursWorked      float64 `json:"hours_worked"`
	CommissionEarned float64 `json:"commission_earned"`
	Comment          string  `json:"comment,omitempty"`

	TotalSale           float64 `json:"total_sale"`
	ActualReceived      float64 `json:"actual_received"`
	InitialExpected     float64 `json:"initial_expected"`
	AdjustedExpected    float64 `json:"adjusted_expected"`
	AdjustmentReasoning string  `json:"adjustment_reasoning"`
	Discrepancy         float64 `json:"discrepancy"`
	Status              string  `json:"status"`

	RecordedBy string `json:"recorded_by"`
}
