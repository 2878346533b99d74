package controllers

import (
	"testing"
	"time"

	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDateRange(t *testing.T) {
	ref := date(2026, time.August, 14)

	t.Run("daily", func(t *testing.T) {
		start, end, err := ResolveDateRange(PeriodDaily, ref)
		require.NoError(t, err)
		assert.Equal(t, date(2026, time.August, 14), start)
		assert.Equal(t, 14, end.Day())
		assert.Equal(t, 23, end.Hour())
	})

	t.Run("monthly runs to the reference day, not month end", func(t *testing.T) {
		start, end, err := ResolveDateRange(PeriodMonthly, ref)
		require.NoError(t, err)
		assert.Equal(t, date(2026, time.August, 1), start)
		assert.Equal(t, 14, end.Day())
	})

	t.Run("quarterly", func(t *testing.T) {
		start, _, err := ResolveDateRange(PeriodQuarterly, ref)
		require.NoError(t, err)
		assert.Equal(t, date(2026, time.July, 1), start)

		start, _, err = ResolveDateRange(PeriodQuarterly, date(2026, time.February, 10))
		require.NoError(t, err)
		assert.Equal(t, date(2026, time.January, 1), start)
	})

	t.Run("yearly", func(t *testing.T) {
		start, _, err := ResolveDateRange(PeriodYearly, ref)
		require.NoError(t, err)
		assert.Equal(t, date(2026, time.January, 1), start)
	})

	t.Run("all is the open-ended window", func(t *testing.T) {
		start, end, err := ResolveDateRange(PeriodAll, ref)
		require.NoError(t, err)
		assert.Equal(t, 2000, start.Year())
		assert.Equal(t, 2099, end.Year())
	})

	t.Run("unknown period", func(t *testing.T) {
		_, _, err := ResolveDateRange("weekly", ref)
		assert.Error(t, err)
	})
}

func TestBuildFinancialSummarySingleSale(t *testing.T) {
	sale := models.Sale{
		TotalAmount:    100000,
		AdditionalCost: 20000,
		Date:           date(2026, time.August, 5),
		Items: []models.SaleItem{
			{ID: 1, ProductID: 7, Name: "Paket A", Quantity: 2, UnitCost: 5000, UnitPrice: 50000, LineTotal: 100000},
		},
	}

	summary := BuildFinancialSummary(PeriodMonthly, []models.Sale{sale}, nil)

	assert.Equal(t, 100000.0, summary.TotalSales)
	assert.Equal(t, 10000.0, summary.TotalPackagingCost)
	assert.Equal(t, 20000.0, summary.TotalInvoiceCost)
	assert.Equal(t, 70000.0, summary.TotalProfit)
	assert.InDelta(t, 70.0, summary.ProfitMargin, 1e-9)
}

func TestProfitMarginUnroundedUntilRendered(t *testing.T) {
	sale := models.Sale{
		TotalAmount: 30000,
		Date:        date(2026, time.August, 5),
		Items: []models.SaleItem{
			{ID: 1, ProductID: 1, Quantity: 1, UnitCost: 20000, LineTotal: 30000},
		},
	}

	summary := BuildFinancialSummary(PeriodMonthly, []models.Sale{sale}, nil)

	// The aggregate carries the full-precision ratio; only the response
	// rounds it to one decimal.
	assert.InDelta(t, 100.0/3.0, summary.ProfitMargin, 1e-9)
	assert.NotEqual(t, 33.3, summary.ProfitMargin)
	assert.Equal(t, 33.3, utils.Round1(summary.ProfitMargin))
}

func TestOperationalExpensesExcludeInvoiceSentinel(t *testing.T) {
	expenses := []models.Expense{
		{Category: "Bahan Baku", Amount: 50000},
		{Category: models.CategoryInvoiceBelanja, Amount: 999999},
	}

	summary := BuildFinancialSummary(PeriodMonthly, nil, expenses)

	assert.Equal(t, 50000.0, summary.TotalOperationalExpenses)
	// The sentinel match is exact and case-sensitive.
	lower := []models.Expense{{Category: "invoice belanja", Amount: 1000}}
	assert.Equal(t, 1000.0, BuildFinancialSummary(PeriodMonthly, nil, lower).TotalOperationalExpenses)
}

func TestProfitMarginZeroWhenNoSales(t *testing.T) {
	expenses := []models.Expense{{Category: "Listrik", Amount: 123456}}
	summary := BuildFinancialSummary(PeriodMonthly, nil, expenses)

	assert.Equal(t, 0.0, summary.ProfitMargin)
	assert.Equal(t, -123456.0, summary.TotalProfit)
}

func TestAllocateInvoiceCostSharesSumToAdditionalCost(t *testing.T) {
	sale := models.Sale{
		AdditionalCost: 20000,
		Items: []models.SaleItem{
			{ID: 1, Quantity: 3},
			{ID: 2, Quantity: 2},
			{ID: 3, Quantity: 2},
		},
	}

	shares := allocateInvoiceCost(sale)
	var sum float64
	for _, v := range shares {
		sum += v
	}
	assert.InDelta(t, 20000, sum, 1e-9)
	assert.InDelta(t, 20000*3.0/7.0, shares[1], 1e-9)
}

func TestAllocateInvoiceCostZeroQuantity(t *testing.T) {
	shares := allocateInvoiceCost(models.Sale{AdditionalCost: 5000})
	assert.Empty(t, shares)
}

func TestBucketsByPeriod(t *testing.T) {
	sales := []models.Sale{
		{TotalAmount: 100, Date: date(2026, time.August, 3)},
		{TotalAmount: 200, Date: date(2026, time.August, 3)},
		{TotalAmount: 400, Date: date(2026, time.August, 14)},
	}

	t.Run("monthly buckets label by day of month", func(t *testing.T) {
		summary := BuildFinancialSummary(PeriodMonthly, sales, nil)
		require.Len(t, summary.Buckets, 2)
		assert.Equal(t, "3", summary.Buckets[0].Label)
		assert.Equal(t, 300.0, summary.Buckets[0].Sales)
		assert.Equal(t, "14", summary.Buckets[1].Label)
	})

	t.Run("yearly buckets label by month", func(t *testing.T) {
		mixed := append(sales, models.Sale{TotalAmount: 50, Date: date(2026, time.March, 9)})
		summary := BuildFinancialSummary(PeriodYearly, mixed, nil)
		labels := make([]string, 0, len(summary.Buckets))
		for _, b := range summary.Buckets {
			labels = append(labels, b.Label)
		}
		assert.Contains(t, labels, "Aug")
		assert.Contains(t, labels, "Mar")
	})
}

func TestProductSummarySortedByProfit(t *testing.T) {
	sales := []models.Sale{
		{
			TotalAmount:    30000,
			AdditionalCost: 0,
			Date:           date(2026, time.August, 2),
			Items: []models.SaleItem{
				{ID: 1, ProductID: 1, Name: "Tipis", Quantity: 1, UnitCost: 900, LineTotal: 1000},
				{ID: 2, ProductID: 2, Name: "Tebal", Quantity: 1, UnitCost: 1000, LineTotal: 29000},
			},
		},
	}

	summary := BuildFinancialSummary(PeriodMonthly, sales, nil)
	require.Len(t, summary.Products, 2)
	assert.Equal(t, uint(2), summary.Products[0].ProductID)
	assert.Greater(t, summary.Products[0].TotalProfit, summary.Products[1].TotalProfit)
}

func TestPerProductAllocationAcrossSale(t *testing.T) {
	sale := models.Sale{
		TotalAmount:    100000,
		AdditionalCost: 10000,
		Date:           date(2026, time.August, 2),
		Items: []models.SaleItem{
			{ID: 1, ProductID: 1, Quantity: 8, UnitCost: 100, LineTotal: 80000},
			{ID: 2, ProductID: 2, Quantity: 2, UnitCost: 100, LineTotal: 20000},
		},
	}

	summary := BuildFinancialSummary(PeriodMonthly, []models.Sale{sale}, nil)
	require.Len(t, summary.Products, 2)

	var total float64
	for _, p := range summary.Products {
		total += p.InvoiceCostShare
	}
	assert.InDelta(t, 10000, total, 1e-9)

	for _, p := range summary.Products {
		if p.ProductID == 1 {
			assert.InDelta(t, 8000, p.InvoiceCostShare, 1e-9)
		}
	}
}
