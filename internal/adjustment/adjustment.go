// Package adjustment memanggil layanan eksternal yang menyetujui atau
// mengoreksi perkiraan setoran harian. Layanan ini kotak hitam: apapun
// yang memenuhi kontrak Collaborator bisa dipakai, termasuk layanan
// berbasis LLM maupun rule engine biasa.
package adjustment

import "context"

// Request membawa seluruh angka mentah satu hari plus total turunannya.
type Request struct {
	EntryDate       string  `json:"entry_date"`
	RiderName       string  `json:"rider_name"`
	VehicleName     string  `json:"vehicle_name"`
	LitersSold      float64 `json:"liters_sold"`
	RatePerLiter    float64 `json:"rate_per_liter"`
	CashReceived    float64 `json:"cash_received"`
	OnlineReceived  float64 `json:"online_received"`
	DueCollected    float64 `json:"due_collected"`
	TokenMoney      float64 `json:"token_money"`
	StaffExpense    float64 `json:"staff_expense"`
	ExtraAmount     float64 `json:"extra_amount"`
	Comment         string  `json:"comment,omitempty"`
	TotalSale       float64 `json:"total_sale"`
	ActualReceived  float64 `json:"actual_received"`
	InitialExpected float64 `json:"initial_expected"`
}

// Result wajib lengkap: AdjustedExpectedAmount dan Reasoning dua-duanya
// mandatory. Caller TIDAK boleh fallback ke InitialExpected kalau
// layanan gagal; kegagalan harus menggagalkan submission.
type Result struct {
	AdjustedExpectedAmount float64 `json:"adjusted_expected_amount"`
	Reasoning              string  `json:"reasoning"`
}

//go:generate mockgen -source=adjustment.go -destination=mock/adjustment_mock.go -package=mock
type Collaborator interface {
	Adjust(ctx context.Context, req Request) (Result, error)
}
