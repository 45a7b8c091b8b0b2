package dto

import (
	"restaurant-admin/internal/entities"
)

const moneyPlaces = 2

func OrderDetailsFromEntity(d *entities.OrderDetails) *OrderDetails {
	items := make([]OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, OrderItem{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(moneyPlaces),
			ImageURL:    it.ImageURL,
		})
	}

	return &OrderDetails{
		ID:             d.ID,
		RestaurantID:   d.RestaurantID,
		RestaurantName: d.RestaurantName,
		CustomerName:   d.CustomerName,
		CustomerEmail:  d.CustomerEmail,
		TotalAmount:    d.TotalAmount.StringFixed(moneyPlaces),
		Status:         d.Status.String(),
		OrderType:      string(d.Type),
		PaymentMethod:  stringPtr(d.PaymentMethod),
		PaymentStatus:  stringPtr(d.PaymentStatus),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		Items:          items,
	}
}

func OrderSummariesFromEntity(orders []entities.OrderSummary) []OrderSummary {
	res := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderSummary{
			ID:            o.ID,
			CustomerName:  o.CustomerName,
			TotalAmount:   o.TotalAmount.StringFixed(moneyPlaces),
			Status:        o.Status.String(),
			OrderType:     string(o.Type),
			PaymentMethod: stringPtr(o.PaymentMethod),
			PaymentStatus: stringPtr(o.PaymentStatus),
			CreatedAt:     o.CreatedAt,
		})
	}
	return res
}

func OrderStatusChangeFromEntity(c entities.OrderStatusChange) OrderStatusChange {
	return OrderStatusChange{
		OrderID:       c.OrderID,
		Status:        c.Status.String(),
		PaymentStatus: stringPtr(c.PaymentStatus),
		ChangedAt:     c.ChangedAt,
	}
}

func SummaryFromEntity(s *entities.Summary) *SummaryResponse {
	byStatus := make(map[string]int64, len(s.OrdersByStatus))
	for status, count := range s.OrdersByStatus {
		byStatus[status.String()] = count
	}

	top := make([]TopProduct, 0, len(s.TopProducts))
	for _, p := range s.TopProducts {
		top = append(top, TopProduct{
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			Revenue:     p.Revenue.StringFixed(moneyPlaces),
		})
	}

	return &SummaryResponse{
		From:                  s.From,
		To:                    s.To,
		OrdersTotal:           s.OrdersTotal,
		OrdersByStatus:        byStatus,
		CompletedRevenue:      s.CompletedRevenue.StringFixed(moneyPlaces),
		CompletedTransactions: s.CompletedTransactions,
		PendingPayments:       s.PendingPayments,
		AverageOrderValue:     s.AverageOrderValue.StringFixed(moneyPlaces),
		TopProducts:           top,
	}
}

func ProductsFromEntity(products []entities.Product) []Product {
	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price.StringFixed(moneyPlaces),
			ImagePath:   p.ImagePath,
			IsAvailable: p.IsAvailable,
		})
	}
	return res
}

func RestaurantFromEntity(r *entities.Restaurant) Restaurant {
	return Restaurant{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Status:  r.Status.String(),
	}
}

func BranchAdminFromEntity(a *entities.BranchAdmin) BranchAdmin {
	return BranchAdmin{
		ID:         a.User.ID,
		Name:       a.User.Name,
		Email:      a.User.Email,
		CreatedAt:  a.User.CreatedAt,
		Restaurant: RestaurantFromEntity(&a.Restaurant),
	}
}

func stringPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
