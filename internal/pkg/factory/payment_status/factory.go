package payment_status

import (
	"fmt"

	"github.com/AlekSi/pointer"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/service/order"
)

// RuleFactory сопоставляет новый статус заказа с правилом пересчета статуса платежа
type RuleFactory struct{}

func NewRuleFactory() *RuleFactory {
	return &RuleFactory{}
}

func (f *RuleFactory) GetRule(status entities.OrderStatusType) (order.DeriveFn, error) {
	switch status {
	case entities.OrderCompleted:
		return f.completedRule, nil
	case entities.OrderCancelled:
		return fixed(entities.PaymentCancelled), nil
	case entities.OrderFailed:
		return fixed(entities.PaymentFailed), nil
	case entities.OrderRefunded:
		return fixed(entities.PaymentRefunded), nil
	case entities.OrderPreparing, entities.OrderReady:
		return f.noChangeRule, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// completedRule закрывает только наличную оплату, карта и онлайн
// подтверждаются платежной системой
func (f *RuleFactory) completedRule(payment entities.Payment) *entities.PaymentStatusType {
	if payment.Method == entities.PaymentCash && payment.Status != entities.PaymentCompleted {
		return pointer.To(entities.PaymentCompleted)
	}
	return nil
}

func (f *RuleFactory) noChangeRule(entities.Payment) *entities.PaymentStatusType {
	return nil
}

func fixed(status entities.PaymentStatusType) order.DeriveFn {
	return func(entities.Payment) *entities.PaymentStatusType {
		return pointer.To(status)
	}
}
