//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=branch_admin_post_test
package branch_admin_post

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
	CreateBranchAdmin(ctx context.Context, create entities.BranchAdminCreate) (*entities.BranchAdmin, error)
}
