package guests

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/guests/models"
)

type GuestService interface {
	List(ctx context.Context, query *string, limit, offset uint64) (*models.GuestListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.GuestResponse, error)
	Create(ctx context.Context, req *models.GuestRequest) (*models.GuestResponse, error)
	Update(ctx context.Context, id int64, req *models.GuestRequest) (*models.GuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
