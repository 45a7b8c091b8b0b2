// Package dto описывает JSON контракты HTTP и websocket слоя.
package dto

import (
	"encoding/json"
	"time"
)

type PingResponse struct {
	Message  *string `json:"message,omitempty"`
	Database string  `json:"database"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token        string    `json:"token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Role         string    `json:"role"`
	RestaurantID *int64    `json:"restaurant_id,omitempty"`
}

// ActionRequest тело POST /branch/orders/action, form или JSON.
// order_id в JSON допускается и числом, и строкой.
type ActionRequest struct {
	Action  string      `json:"action"`
	OrderID json.Number `json:"order_id"`
	Status  string      `json:"status"`
}

type ActionResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Order   *OrderDetails `json:"order,omitempty"`
}

type OrderItem struct {
	ID          int64   `json:"id"`
	ProductID   *int64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	ImageURL    *string `json:"image_url"`
}

type OrderDetails struct {
	ID             int64       `json:"id"`
	RestaurantID   int64       `json:"restaurant_id"`
	RestaurantName string      `json:"restaurant_name"`
	CustomerName   *string     `json:"customer_name"`
	CustomerEmail  *string     `json:"customer_email"`
	TotalAmount    string      `json:"total_amount"`
	Status         string      `json:"status"`
	OrderType      string      `json:"order_type"`
	PaymentMethod  *string     `json:"payment_method"`
	PaymentStatus  *string     `json:"payment_status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Items          []OrderItem `json:"items"`
}

type OrderSummary struct {
	ID            int64     `json:"id"`
	CustomerName  *string   `json:"customer_name"`
	TotalAmount   string    `json:"total_amount"`
	Status        string    `json:"status"`
	OrderType     string    `json:"order_type"`
	PaymentMethod *string   `json:"payment_method"`
	PaymentStatus *string   `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrdersResponse struct {
	Orders []OrderSummary `json:"orders"`
}

// OrderStatusChange сообщение ленты заказов
type OrderStatusChange struct {
	OrderID       int64     `json:"order_id"`
	Status        string    `json:"status"`
	PaymentStatus *string   `json:"payment_status,omitempty"`
	ChangedAt     time.Time `json:"changed_at"`
}

type TopProduct struct {
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	Revenue     string `json:"revenue"`
}

type SummaryResponse struct {
	From                  time.Time        `json:"from"`
	To                    time.Time        `json:"to"`
	OrdersTotal           int64            `json:"orders_total"`
	OrdersByStatus        map[string]int64 `json:"orders_by_status"`
	CompletedRevenue      string           `json:"completed_revenue"`
	CompletedTransactions int64            `json:"completed_transactions"`
	PendingPayments       int64            `json:"pending_payments"`
	AverageOrderValue     string           `json:"average_order_value"`
	TopProducts           []TopProduct     `json:"top_products"`
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	ImagePath   *string `json:"image_path"`
	IsAvailable bool    `json:"is_available"`
}

type MenuResponse struct {
	Products []Product `json:"products"`
}

type BranchAdminCreateRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	RestaurantName    string `json:"restaurant_name"`
	RestaurantAddress string `json:"restaurant_address"`
	RestaurantPhone   string `json:"restaurant_phone"`
}

type Restaurant struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
}

type BranchAdmin struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	CreatedAt  time.Time  `json:"created_at"`
	Restaurant Restaurant `json:"restaurant"`
}

type RestaurantStatusRequest struct {
	Status string `json:"status"`
}
