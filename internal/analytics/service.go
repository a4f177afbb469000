package analytics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerAnalytics mirrors what the customer dialog shows: buying habits,
// favorite products and a naive guess at the next order date.
type CustomerAnalytics struct {
	MostActiveDays        []string          `json:"most_active_days"`
	MostPurchasedProducts []ProductPurchase `json:"most_purchased_products"`
	NextOrderPrediction   Prediction        `json:"next_order_prediction"`
	TotalPurchases        int               `json:"total_purchases"`
	TotalSpent            decimal.Decimal   `json:"total_spent"`
}

type ProductPurchase struct {
	ProductName   string          `json:"product_name"`
	ProductNameAr string          `json:"product_name_ar"`
	TotalQuantity float64         `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PurchaseCount int             `json:"purchase_count"`
}

type Prediction struct {
	PredictedDate        *time.Time `json:"predicted_date"`
	Confidence           string     `json:"confidence"` // high / medium / low / insufficient_data
	AvgDaysBetweenOrders *float64   `json:"avg_days_between_orders"`
}

// Predict estimates the next order date from past order dates: the average
// gap between consecutive orders, projected from the most recent one.
// Deliberately naive; the dialog labels it as a prediction, not a promise.
func Predict(dates []time.Time) Prediction {
	if len(dates) < 2 {
		return Prediction{Confidence: "insufficient_data"}
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	span := sorted[len(sorted)-1].Sub(sorted[0])
	avgDays := span.Hours() / 24 / float64(len(sorted)-1)

	predicted := sorted[len(sorted)-1].Add(time.Duration(avgDays * 24 * float64(time.Hour)))

	confidence := "low"
	switch {
	case len(sorted) >= 6:
		confidence = "high"
	case len(sorted) >= 3:
		confidence = "medium"
	}

	return Prediction{
		PredictedDate:        &predicted,
		Confidence:           confidence,
		AvgDaysBetweenOrders: &avgDays,
	}
}

// MostActiveDays returns the weekdays with the most orders, busiest first,
// at most three.
func MostActiveDays(dates []time.Time) []string {
	counts := make(map[time.Weekday]int)
	for _, d := range dates {
		counts[d.Weekday()]++
	}

	type dayCount struct {
		day   time.Weekday
		count int
	}
	ranked := make([]dayCount, 0, len(counts))
	for day, count := range counts {
		ranked = append(ranked, dayCount{day, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].day < ranked[j].day
	})

	days := make([]string, 0, 3)
	for _, dc := range ranked {
		if len(days) == 3 {
			break
		}
		days = append(days, dc.day.String())
	}
	return days
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ForCustomer aggregates a customer's sales history.
func (s *Service) ForCustomer(customerID uint) (*CustomerAnalytics, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", customerID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("load customer: %w: %v", apperr.ErrStore, err)
	}

	var sales []models.SaleRecord
	if err := s.db.Preload("Product").
		Where("customer_id = ?", customerID).
		Order("sale_date asc").
		Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("load sales: %w: %v", apperr.ErrStore, err)
	}

	dates := make([]time.Time, 0, len(sales))
	totalSpent := decimal.Zero
	byProduct := make(map[uint]*ProductPurchase)
	for i := range sales {
		sale := &sales[i]
		dates = append(dates, sale.SaleDate)
		totalSpent = totalSpent.Add(sale.TotalAmount)

		pp, ok := byProduct[sale.ProductID]
		if !ok {
			pp = &ProductPurchase{
				ProductName:   sale.Product.Name,
				ProductNameAr: sale.Product.NameAr,
				TotalAmount:   decimal.Zero,
			}
			byProduct[sale.ProductID] = pp
		}
		pp.TotalQuantity += sale.Quantity
		pp.TotalAmount = pp.TotalAmount.Add(sale.TotalAmount)
		pp.PurchaseCount++
	}

	products := make([]ProductPurchase, 0, len(byProduct))
	for _, pp := range byProduct {
		products = append(products, *pp)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].TotalQuantity != products[j].TotalQuantity {
			return products[i].TotalQuantity > products[j].TotalQuantity
		}
		return products[i].ProductName < products[j].ProductName
	})
	if len(products) > 5 {
		products = products[:5]
	}

	return &CustomerAnalytics{
		MostActiveDays:        MostActiveDays(dates),
		MostPurchasedProducts: products,
		NextOrderPrediction:   Predict(dates),
		TotalPurchases:        len(sales),
		TotalSpent:            totalSpent,
	}, nil
}
