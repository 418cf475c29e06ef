package rooms

// SetStateRequest смена физического состояния номера
type SetStateRequest struct {
	State string `json:"state" validate:"required,oneof=available occupied maintenance out_of_service"`
}
