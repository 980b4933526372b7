package payroll_test

import (
	"testing"
	"time"

	"go-waterbook/internal/payroll"
	"go-waterbook/internal/salesentry"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestBaseDailySalary(t *testing.T) {
	assert.Equal(t, 900.0, payroll.BaseDailySalary(900, 9))
	assert.Equal(t, 900.0, payroll.BaseDailySalary(900, 12))
	assert.Equal(t, 450.0, payroll.BaseDailySalary(900, 4.5))
	assert.Equal(t, 0.0, payroll.BaseDailySalary(900, 0))
}

func TestAggregate_FullDayWithShortage(t *testing.T) {
	entries := []salesentry.SalesEntry{
		{
			EntryDate:        day(1),
			LitersSold:       1000,
			ActualReceived:   2300,
			TokenMoney:       50,
			TotalSale:        2500,
			HoursWorked:      9,
			CommissionEarned: 50,
			Discrepancy:      50, // setoran kurang 50
		},
	}

	agg := payroll.Aggregate(entries, 900)

	assert.Equal(t, 900.0, agg.TotalBaseSalary)
	assert.Equal(t, 50.0, agg.TotalCommission)
	assert.Equal(t, 50.0, agg.TotalDiscrepancy)
	assert.Equal(t, 900.0, agg.NetEarning) // 900 + 50 - 50
	assert.Equal(t, 1, agg.DaysActive)
	assert.Len(t, agg.Daily, 1)
}

func TestAggregate_HalfDayProrated(t *testing.T) {
	entries := []salesentry.SalesEntry{
		{EntryDate: day(2), HoursWorked: 4.5},
	}

	agg := payroll.Aggregate(entries, 900)

	assert.Equal(t, 450.0, agg.TotalBaseSalary)
	assert.Equal(t, 450.0, agg.NetEarning)
}

func TestAggregate_OverageDoesNotIncreaseEarning(t *testing.T) {
	entries := []salesentry.SalesEntry{
		{EntryDate: day(3), HoursWorked: 9, CommissionEarned: 40, Discrepancy: -30},
	}

	agg := payroll.Aggregate(entries, 900)

	// Kelebihan setoran tidak menambah gaji, tapi tetap tercatat di total selisih
	assert.Equal(t, 940.0, agg.NetEarning)
	assert.Equal(t, -30.0, agg.TotalDiscrepancy)
}

func TestAggregate_DaysActiveCountsDistinctDays(t *testing.T) {
	entries := []salesentry.SalesEntry{
		{EntryDate: day(5), HoursWorked: 5},
		{EntryDate: day(5), HoursWorked: 4},
		{EntryDate: day(6), HoursWorked: 9},
	}

	agg := payroll.Aggregate(entries, 900)

	assert.Equal(t, 2, agg.DaysActive)
	assert.Len(t, agg.Daily, 3)
}

func TestAggregate_EmptyMonth(t *testing.T) {
	agg := payroll.Aggregate(nil, 900)

	assert.Equal(t, 0, agg.DaysActive)
	assert.Equal(t, 0.0, agg.NetEarning)
	assert.Equal(t, 0.0, agg.TotalBaseSalary)
	assert.Empty(t, agg.Daily)
}

func TestAggregate_SumsRawTotals(t *testing.T) {
	entries := []salesentry.SalesEntry{
		{EntryDate: day(1), LitersSold: 100, ActualReceived: 250, TokenMoney: 5, TotalSale: 260, HoursWorked: 9},
		{EntryDate: day(2), LitersSold: 150, ActualReceived: 380, TokenMoney: 10, TotalSale: 390, HoursWorked: 9},
	}

	agg := payroll.Aggregate(entries, 500)

	assert.Equal(t, 250.0, agg.TotalLitersSold)
	assert.Equal(t, 630.0, agg.TotalMoneyCollected)
	assert.Equal(t, 15.0, agg.TotalTokenMoney)
	assert.Equal(t, 650.0, agg.TotalSalesGenerated)
	assert.Equal(t, 1000.0, agg.TotalBaseSalary)
}

func TestMonthRange(t *testing.T) {
	from, to := payroll.MonthRange(2025, 12)
	assert.Equal(t, "2025-12-01", from.Format("2006-01-02"))
	assert.Equal(t, "2026-01-01", to.Format("2006-01-02"))
}
