package domain

import (
	"fmt"
	"strings"
	"time"
)

// Guest represents a hotel guest
// DocumentNumber - естественный ключ для поиска повторного гостя
type Guest struct {
	ID             int64
	Name           string
	DocumentNumber *string
	Phone          *string
	Email          *string
	BirthDate      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestInput данные гостя из запроса на бронирование или редактирование профиля
type GuestInput struct {
	Name           string
	DocumentNumber *string
	Phone          *string
	Email          *string
	BirthDate      *time.Time
}

// Normalize обрезает пробелы, пустые необязательные поля превращаются в nil
func (g GuestInput) Normalize() GuestInput {
	g.Name = strings.TrimSpace(g.Name)
	g.DocumentNumber = trimOptional(g.DocumentNumber)
	g.Phone = trimOptional(g.Phone)
	g.Email = trimOptional(g.Email)
	return g
}

// Validate проверяет обязательные поля и длины колонок
func (g GuestInput) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if tooLong(g.Name, MaxGuestNameLength) {
		return fmt.Errorf("%w: guest name exceeds %d characters", ErrInvalidInput, MaxGuestNameLength)
	}
	if TooLong(g.DocumentNumber, MaxDocumentLength) {
		return fmt.Errorf("%w: document number exceeds %d characters", ErrInvalidInput, MaxDocumentLength)
	}
	if TooLong(g.Phone, MaxPhoneLength) {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, MaxPhoneLength)
	}
	if TooLong(g.Email, MaxEmailLength) {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidInput, MaxEmailLength)
	}
	return nil
}

// ToGuest переносит данные запроса в нового гостя
func (g GuestInput) ToGuest() *Guest {
	return &Guest{
		Name:           g.Name,
		DocumentNumber: g.DocumentNumber,
		Phone:          g.Phone,
		Email:          g.Email,
		BirthDate:      g.BirthDate,
	}
}

// GuestFilter поиск гостей по подстроке имени или номера документа
type GuestFilter struct {
	Query  *string
	Limit  uint64
	Offset uint64
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
