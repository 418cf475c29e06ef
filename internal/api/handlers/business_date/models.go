package business_date

// SetBusinessDateRequest административная установка операционной даты
type SetBusinessDateRequest struct {
	Date string `json:"date" validate:"required,date"` // "2025-01-10"
}

// BusinessDateResponse текущая операционная дата
type BusinessDateResponse struct {
	Date string `json:"date"`
}
