// Package payroll melipat entri penjualan harian satu rider dalam satu
// bulan menjadi angka gaji. Semua fungsi di file ini murni; sumber data
// dan cache hidup di service.
package payroll

import (
	"time"

	"go-waterbook/internal/salesentry"
)

// StandardDayHours jam kerja penuh. Di bawah ini gaji harian di-prorata.
const StandardDayHours = 9.0

// BaseDailySalary prorata linier terhadap jam kerja, penuh mulai 9 jam.
// Tidak ada lembur: 12 jam tetap dibayar satu hari penuh.
func BaseDailySalary(perDaySalary, hoursWorked float64) float64 {
	if hoursWorked >= StandardDayHours {
		return perDaySalary
	}
	return perDaySalary * hoursWorked / StandardDayHours
}

type DailyEarning struct {
	Date            string  `json:"date"`
	HoursWorked     float64 `json:"hours_worked"`
	BaseDailySalary float64 `json:"base_daily_salary"`
	Commission      float64 `json:"commission"`
	Discrepancy     float64 `json:"discrepancy"`
	NetEarning      float64 `json:"net_earning"`
}

type MonthlyAggregate struct {
	TotalLitersSold     float64 `json:"total_liters_sold"`
	TotalMoneyCollected float64 `json:"total_money_collected"`
	TotalTokenMoney     float64 `json:"total_token_money"`
	TotalSalesGenerated float64 `json:"total_sales_generated"`
	TotalBaseSalary     float64 `json:"total_base_salary"`
	TotalCommission     float64 `json:"total_commission"`
	TotalDiscrepancy    float64 `json:"total_discrepancy"`
	NetEarning          float64 `json:"net_earning"`
	DaysActive          int     `json:"days_active"`

	Daily []DailyEarning `json:"daily"`
}

// Aggregate menjumlahkan seluruh entri satu rider satu bulan.
//
// Pendapatan bersih per entri = gaji harian prorata + komisi dikurangi
// shortage. Selisih memakai konvensi ekspektasi minus aktual, jadi
// hanya selisih positif (setoran kurang) yang memotong gaji; overage
// tidak menambah gaji.
func Aggregate(entries []salesentry.SalesEntry, perDaySalary float64) MonthlyAggregate {
	agg := MonthlyAggregate{}
	activeDays := make(map[string]struct{})

	for _, e := range entries {
		base := BaseDailySalary(perDaySalary, e.HoursWorked)

		shortage := e.Discrepancy
		if shortage < 0 {
			shortage = 0
		}
		net := base + e.CommissionEarned - shortage

		day := e.EntryDate.Format("2006-01-02")
		activeDays[day] = struct{}{}

		agg.TotalLitersSold += e.LitersSold
		agg.TotalMoneyCollected += e.ActualReceived
		agg.TotalTokenMoney += e.TokenMoney
		agg.TotalSalesGenerated += e.TotalSale
		agg.TotalBaseSalary += base
		agg.TotalCommission += e.CommissionEarned
		agg.TotalDiscrepancy += e.Discrepancy
		agg.NetEarning += net

		agg.Daily = append(agg.Daily, DailyEarning{
			Date:            day,
			HoursWorked:     e.HoursWorked,
			BaseDailySalary: base,
			Commission:      e.CommissionEarned,
			Discrepancy:     e.Discrepancy,
			NetEarning:      net,
		})
	}

	agg.DaysActive = len(activeDays)
	return agg
}

// MonthRange batas kalender [from, to) untuk satu bulan, dipakai untuk
// query entri penjualan.
func MonthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
