package salesentry

import "math"

// Status hasil rekonsiliasi harian.
const (
	StatusMatch    = "MATCH"
	StatusShortage = "SHORTAGE"
	StatusOverage  = "OVERAGE"
)

// MatchTolerance toleransi absolut (bukan relatif) untuk status MATCH.
const MatchTolerance = 0.01

// ReconcileInput angka mentah satu hari setelah liters terjual diturunkan
// dari pembacaan meteran.
type ReconcileInput struct {
	LitersSold     float64
	RatePerLiter   float64
	CashReceived   float64
	OnlineReceived float64
	DueCollected   float64
	TokenMoney     float64
	StaffExpense   float64
	ExtraAmount    float64
}

type Totals struct {
	TotalSale       float64
	ActualReceived  float64
	InitialExpected float64
}

// ComputeTotals fungsi murni, tanpa pembulatan. InitialExpected boleh
// negatif dan tidak di-clamp; layer tampilan yang membulatkan 2 desimal.
func ComputeTotals(in ReconcileInput) Totals {
	totalSale := in.LitersSold * in.RatePerLiter
	return Totals{
		TotalSale:       totalSale,
		ActualReceived:  in.CashReceived + in.OnlineReceived,
		InitialExpected: totalSale - in.DueCollected - in.TokenMoney - in.StaffExpense - in.ExtraAmount,
	}
}

// Discrepancy memakai konvensi tanda tunggal di seluruh aplikasi:
// selisih = ekspektasi terkoreksi dikurangi setoran aktual. Positif
// berarti setoran KURANG (shortage). Konvensi ini juga yang dipakai
// payroll saat memotong gaji.
func Discrepancy(adjustedExpected, actualReceived float64) float64 {
	return adjustedExpected - actualReceived
}

// Classify fungsi total: setiap nilai selisih yang finite pasti dapat
// tepat satu status.
func Classify(discrepancy float64) string {
	if math.Abs(discrepancy) < MatchTolerance {
		return StatusMatch
	}
	if discrepancy > 0 {
		return StatusShortage
	}
	return StatusOverage
}

// DeriveLiters menurunkan liters terjual dari pembacaan meteran, atau
// memakai nilai override admin bila ada. Validasi urutan pembacaan
// (current >= previous) dilakukan pemanggil karena hanya berlaku saat
// tidak ada override.
func DeriveLiters(previousReading, currentReading float64, override *float64) float64 {
	if override != nil {
		return *override
	}
	return currentReading - previousReading
}
