//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=branch_admins_get_test
package branch_admins_get

import (
	"context"

	"restaurant-admin/internal/entities"
	"restaurant-admin/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListBranchAdmins(ctx context.Context) ([]entities.BranchAdmin, error)
}
