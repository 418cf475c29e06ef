package rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/rooms/models"
)

type RoomService interface {
	List(ctx context.Context, roomType *string) (*models.RoomListResponse, error)
	Status(ctx context.Context, number string, date *time.Time) (*models.RoomStatusResponse, error)
	SetState(ctx context.Context, id int64, state string) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
