package controllers

import (
	"fmt"
	"sort"
	"time"

	"pembukuan-backend/models"
)

// Report periods.
const (
	PeriodDaily     = "daily"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
	PeriodAll       = "all"
)

// ResolveDateRange turns a period keyword and a reference date into an
// inclusive [start, end] range. Month/quarter/year ranges run from the first
// day of the bucket through the reference day itself, not through the bucket
// end.
func ResolveDateRange(period string, ref time.Time) (time.Time, time.Time, error) {
	loc := ref.Location()
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	switch period {
	case PeriodDaily:
		return dayStart, dayEnd, nil
	case PeriodMonthly:
		return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc), dayEnd, nil
	case PeriodQuarterly:
		qMonth := time.Month((int(ref.Month())-1)/3*3 + 1)
		return time.Date(ref.Year(), qMonth, 1, 0, 0, 0, 0, loc), dayEnd, nil
	case PeriodYearly:
		return time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, loc), dayEnd, nil
	case PeriodAll:
		return time.Date(2000, time.January, 1, 0, 0, 0, 0, loc),
			time.Date(2099, time.December, 31, 23, 59, 59, 0, loc), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
	}
}

type PeriodBucket struct {
	Label  string  `json:"label"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

type ProductSummary struct {
	ProductID        uint    `json:"product_id"`
	Name             string  `json:"name"`
	TotalSold        float64 `json:"total_sold"`
	TotalRevenue     float64 `json:"total_revenue"`
	PackagingCost    float64 `json:"packaging_cost"`
	InvoiceCostShare float64 `json:"invoice_cost_share"`
	TotalProfit      float64 `json:"total_profit"`
}

type FinancialSummary struct {
	TotalSales               float64          `json:"total_sales"`
	TotalPackagingCost       float64          `json:"total_packaging_cost"`
	TotalInvoiceCost         float64          `json:"total_invoice_cost"`
	TotalOperationalExpenses float64          `json:"total_operational_expenses"`
	TotalProfit              float64          `json:"total_profit"`
	ProfitMargin             float64          `json:"profit_margin"`
	Buckets                  []PeriodBucket   `json:"buckets"`
	Products                 []ProductSummary `json:"products"`
}

// operationalExpenseTotal sums expenses, skipping the invoice sentinel
// category so invoice cost is not double counted (exact, case-sensitive).
func operationalExpenseTotal(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.Category == models.CategoryInvoiceBelanja {
			continue
		}
		total += e.Amount
	}
	return total
}

// saleCosts returns packaging cost (Σ qty × unit cost over items) and the
// sale's allocated invoice cost.
func saleCosts(s models.Sale) (packaging, invoice float64) {
	for _, it := range s.Items {
		packaging += it.Quantity * it.UnitCost
	}
	return packaging, s.AdditionalCost
}

// bucketLabel picks the grouping key: day of month when a single month is in
// view, month name otherwise.
func bucketLabel(period string, d time.Time) string {
	if period == PeriodMonthly || period == PeriodDaily {
		return fmt.Sprintf("%d", d.Day())
	}
	return d.Format("Jan")
}

// allocateInvoiceCost distributes a sale's additional cost across its items
// proportionally to each item's share of the sale's total quantity. Shares
// sum to the full additional cost (within floating-point tolerance).
func allocateInvoiceCost(s models.Sale) map[uint]float64 {
	shares := make(map[uint]float64, len(s.Items))
	var totalQty float64
	for _, it := range s.Items {
		totalQty += it.Quantity
	}
	if totalQty == 0 {
		return shares
	}
	for _, it := range s.Items {
		shares[it.ID] = s.AdditionalCost * (it.Quantity / totalQty)
	}
	return shares
}

// BuildFinancialSummary aggregates sales (with items preloaded) and expenses
// into the report figures for one resolved period.
func BuildFinancialSummary(period string, sales []models.Sale, expenses []models.Expense) FinancialSummary {
	summary := FinancialSummary{}
	summary.TotalOperationalExpenses = operationalExpenseTotal(expenses)

	buckets := make(map[string]*PeriodBucket)
	var bucketOrder []string
	products := make(map[uint]*ProductSummary)

	for _, s := range sales {
		packaging, invoiceCost := saleCosts(s)
		summary.TotalSales += s.TotalAmount
		summary.TotalPackagingCost += packaging
		summary.TotalInvoiceCost += invoiceCost

		saleProfit := s.TotalAmount - packaging - invoiceCost

		label := bucketLabel(period, s.Date)
		b, ok := buckets[label]
		if !ok {
			b = &PeriodBucket{Label: label}
			buckets[label] = b
			bucketOrder = append(bucketOrder, label)
		}
		b.Sales += s.TotalAmount
		b.Profit += saleProfit

		shares := allocateInvoiceCost(s)
		for _, it := range s.Items {
			p, ok := products[it.ProductID]
			if !ok {
				p = &ProductSummary{ProductID: it.ProductID, Name: it.Name}
				products[it.ProductID] = p
			}
			itemPackaging := it.Quantity * it.UnitCost
			p.TotalSold += it.Quantity
			p.TotalRevenue += it.LineTotal
			p.PackagingCost += itemPackaging
			p.InvoiceCostShare += shares[it.ID]
			p.TotalProfit += it.LineTotal - itemPackaging - shares[it.ID]
		}
	}

	summary.TotalProfit = summary.TotalSales - summary.TotalPackagingCost -
		summary.TotalInvoiceCost - summary.TotalOperationalExpenses
	// Kept at full precision here; responses round percentages when rendering.
	if summary.TotalSales > 0 {
		summary.ProfitMargin = summary.TotalProfit / summary.TotalSales * 100
	}

	summary.Buckets = make([]PeriodBucket, 0, len(bucketOrder))
	for _, label := range bucketOrder {
		summary.Buckets = append(summary.Buckets, *buckets[label])
	}

	summary.Products = make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summary.Products = append(summary.Products, *p)
	}
	sort.Slice(summary.Products, func(i, j int) bool {
		return summary.Products[i].TotalProfit > summary.Products[j].TotalProfit
	})

	return summary
}
