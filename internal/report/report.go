// Package report menyusun laporan baca-saja untuk admin dari entri
// penjualan harian. Semua agregasi di file ini murni; pengambilan data
// ada di service.
package report

import (
	"sort"

	"go-waterbook/internal/salesentry"
)

// AnomalyRateThreshold tarif per liter di bawah ini hampir pasti salah
// ketik atau penjualan tidak wajar, ditandai di laporan kendaraan.
const AnomalyRateThreshold = 0.75

type MonthlySummary struct {
	TotalSale       float64 `json:"total_sale"`
	TotalCash       float64 `json:"total_cash"`
	TotalOnline     float64 `json:"total_online"`
	TotalTokenMoney float64 `json:"total_token_money"`
	DaysActive      int     `json:"days_active"`

	AvgSalePerDay   float64 `json:"avg_sale_per_day"`
	AvgCashPerDay   float64 `json:"avg_cash_per_day"`
	AvgOnlinePerDay float64 `json:"avg_online_per_day"`
	AvgTokenPerDay  float64 `json:"avg_token_per_day"`
}

// SummarizeMonthly total dan rata-rata per hari aktif. Hari aktif =
// hari kalender dengan minimal satu entri; pembagi bukan jumlah entri.
func SummarizeMonthly(entries []salesentry.SalesEntry) MonthlySummary {
	s := MonthlySummary{}
	days := make(map[string]struct{})

	for _, e := range entries {
		s.TotalSale += e.TotalSale
		s.TotalCash += e.CashReceived
		s.TotalOnline += e.OnlineReceived
		s.TotalTokenMoney += e.TokenMoney
		days[e.EntryDate.Format("2006-01-02")] = struct{}{}
	}

	s.DaysActive = len(days)
	if s.DaysActive > 0 {
		n := float64(s.DaysActive)
		s.AvgSalePerDay = s.TotalSale / n
		s.AvgCashPerDay = s.TotalCash / n
		s.AvgOnlinePerDay = s.TotalOnline / n
		s.AvgTokenPerDay = s.TotalTokenMoney / n
	}
	return s
}

type VehicleMonthRow struct {
	VehicleName    string  `json:"vehicle_name"`
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	TotalLiters    float64 `json:"total_liters"`
	ExpectedAmount float64 `json:"expected_amount"`
	ActualAmount   float64 `json:"actual_amount"`
	Difference     float64 `json:"difference"`
	AnomalyCount   int     `json:"anomaly_count"`
	OverrideCount  int     `json:"override_count"`
}

// VehicleReport agregasi per (kendaraan, bulan). AnomalyCount entri
// dengan tarif di bawah ambang, OverrideCount entri yang liters-nya
// ditimpa manual oleh admin.
func VehicleReport(entries []salesentry.SalesEntry) []VehicleMonthRow {
	type key struct {
		vehicle     string
		year, month int
	}
	buckets := make(map[key]*VehicleMonthRow)

	for _, e := range entries {
		k := key{e.VehicleName, e.EntryDate.Year(), int(e.EntryDate.Month())}
		row, ok := buckets[k]
		if !ok {
			row = &VehicleMonthRow{VehicleName: k.vehicle, Year: k.year, Month: k.month}
			buckets[k] = row
		}

		row.TotalLiters += e.LitersSold
		row.ExpectedAmount += e.TotalSale
		row.ActualAmount += e.ActualReceived
		if e.RatePerLiter < AnomalyRateThreshold {
			row.AnomalyCount++
		}
		if e.OverrideLitersSold != nil {
			row.OverrideCount++
		}
	}

	rows := make([]VehicleMonthRow, 0, len(buckets))
	for _, row := range buckets {
		row.Difference = row.ExpectedAmount - row.ActualAmount
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].VehicleName != rows[j].VehicleName {
			return rows[i].VehicleName < rows[j].VehicleName
		}
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})
	return rows
}

type CollectorCashRow struct {
	Collector  string  `json:"collector"`
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	TotalCash  float64 `json:"total_cash"`
	EntryCount int     `json:"entry_count"`
}

// CollectorCashReport total uang tunai per pencatat per bulan, untuk
// mencocokkan setoran fisik tiap kolektor.
func CollectorCashReport(entries []salesentry.SalesEntry) []CollectorCashRow {
	type key struct {
		collector   string
		year, month int
	}
	buckets := make(map[key]*CollectorCashRow)

	for _, e := range entries {
		k := key{e.RecordedBy, e.EntryDate.Year(), int(e.EntryDate.Month())}
		row, ok := buckets[k]
		if !ok {
			row = &CollectorCashRow{Collector: k.collector, Year: k.year, Month: k.month}
			buckets[k] = row
		}
		row.TotalCash += e.CashReceived
		row.EntryCount++
	}

	rows := make([]CollectorCashRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Collector != rows[j].Collector {
			return rows[i].Collector < rows[j].Collector
		}
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})
	return rows
}
