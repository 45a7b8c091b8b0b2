//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=branch_admin_delete_test
package branch_admin_delete

import (
	"context"

	"restaurant-admin/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteBranchAdmin(ctx context.Context, userID int64) error
}
