package order

import (
	"restaurant-admin/internal/entities"
)

func ToDomain(o *OrderDB) entities.Order {
	return entities.Order{
		ID:           o.ID,
		RestaurantID: o.RestaurantID,
		CustomerID:   o.CustomerID,
		TotalAmount:  o.TotalAmount,
		Status:       entities.OrderStatusType(o.Status),
		Type:         entities.OrderType(o.OrderType),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func ToDomainSummaryList(ordersDB []OrderSummaryDB) []entities.OrderSummary {
	if len(ordersDB) == 0 {
		return []entities.OrderSummary{}
	}

	result := make([]entities.OrderSummary, len(ordersDB))
	for i := range ordersDB {
		o := &ordersDB[i]
		result[i] = entities.OrderSummary{
			Order:         ToDomain(&o.OrderDB),
			CustomerName:  o.CustomerName,
			PaymentMethod: toPaymentMethod(o.PaymentMethod),
			PaymentStatus: toPaymentStatus(o.PaymentStatus),
		}
	}
	return result
}

func ToDomainDetails(d *OrderDetailsDB, itemsDB []OrderItemDB) *entities.OrderDetails {
	items := make([]entities.OrderItem, len(itemsDB))
	for i, item := range itemsDB {
		items[i] = entities.OrderItem{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			ImageURL:     item.ImageURL,
			ProductImage: item.ProductImage,
		}
	}

	return &entities.OrderDetails{
		Order:          ToDomain(&d.OrderDB),
		RestaurantName: d.RestaurantName,
		CustomerName:   d.CustomerName,
		CustomerEmail:  d.CustomerEmail,
		PaymentMethod:  toPaymentMethod(d.PaymentMethod),
		PaymentStatus:  toPaymentStatus(d.PaymentStatus),
		Items:          items,
	}
}

func toPaymentMethod(s *string) *entities.PaymentMethod {
	if s == nil {
		return nil
	}
	m := entities.PaymentMethod(*s)
	return &m
}

func toPaymentStatus(s *string) *entities.PaymentStatusType {
	if s == nil {
		return nil
	}
	st := entities.PaymentStatusType(*s)
	return &st
}
