package salarypayment

type CreateSalaryPaymentRequest struct {
	PaymentDate    string  `json:"payment_date" binding:"required,datetime=2006-01-02"`
	RiderName      string  `json:"rider_name" binding:"required"`
	SalaryAmount   float64 `json:"salary_amount" binding:"gte=0"`
	AmountPaid     float64 `json:"amount_paid" binding:"gte=0"`
	Deduction      float64 `json:"deduction" binding:"gte=0"`
	AdvancePayment float64 `json:"advance_payment" binding:"gte=0"`
	Comment        string  `json:"comment"`
}

type SalaryPaymentFilter struct {
	RiderName string `form:"rider_name"`
	Year      int    `form:"year" binding:"omitempty,gte=2000,lte=2100"`
	Month     int    `form:"month" binding:"omitempty,gte=1,lte=12"`
}

type SalaryPaymentResponse struct {
	ID             string  `json:"id"`
	ReceiptNumber  string  `json:"receipt_number"`
	PaymentDate    string  `json:"payment_date"`
	RiderName      string  `json:"rider_name"`
	SalaryAmount   float64 `json:"salary_amount"`
	AmountPaid     float64 `json:"amount_paid"`
	Deduction      float64 `json:"deduction"`
	AdvancePayment float64 `json:"advance_payment"`
	Remaining      float64 `json:"remaining"`
	Comment        string  `json:"comment,omitempty"`
	RecordedBy     string  `json:"recorded_by"`
}
