package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMoney(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"0.01", true},
		{"15.50", true},
		{"15.500", true},
		{"9999999999.99", true},
		{"0.001", false},
		{"0.005", false},
		{"10000000000", false},
		{"-10000000000.00", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateMoney("amount", money(tt.value))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestMovement_Validate_Precision(t *testing.T) {
	sub := &Movement{Kind: MovementPayment, Method: MethodCard, Amount: money("0.001")}
	assert.ErrorIs(t, sub.Validate(), ErrInvalidInput)

	huge := &Movement{Kind: MovementPayment, Method: MethodCard, Amount: money("12345678901")}
	assert.ErrorIs(t, huge.Validate(), ErrInvalidInput)
}

func TestNewLine_Precision(t *testing.T) {
	_, err := NewLine(1, LineIncidental, "Coffee", 3, money("0.005"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewLine(1, LineIncidental, "Hall rental", 2, money("6000000000"))
	assert.ErrorIs(t, err, ErrInvalidInput, "line total must fit the column")

	line, err := NewLine(1, LineIncidental, "Coffee", 3, money("0.35"))
	require.NoError(t, err)
	assert.Equal(t, "1.05", line.LineTotal.StringFixed(2))
	assert.True(t, line.LineTotal.Equal(line.UnitPrice.Mul(money("3"))))
}

func TestTextLimitsCountCharacters(t *testing.T) {
	cyrillic := strings.Repeat("я", MaxGuestNameLength)
	assert.NoError(t, GuestInput{Name: cyrillic}.Validate())
	assert.ErrorIs(t, GuestInput{Name: cyrillic + "я"}.Validate(), ErrInvalidInput)

	desc := strings.Repeat("ё", MaxDescriptionLength)
	_, err := NewLine(1, LineIncidental, desc, 1, money("1"))
	assert.NoError(t, err)

	ref := strings.Repeat("ж", MaxReferenceLength)
	m := &Movement{Kind: MovementDeposit, Method: MethodCash, Amount: money("1"), Reference: &ref}
	assert.NoError(t, m.Validate())
}

func TestGuestInput_Validate_ColumnLimits(t *testing.T) {
	long := func(n int) *string {
		s := strings.Repeat("1", n)
		return &s
	}

	assert.NoError(t, GuestInput{
		Name:           "Ana",
		DocumentNumber: long(MaxDocumentLength),
		Phone:          long(MaxPhoneLength),
		Email:          long(MaxEmailLength),
	}.Validate())

	tests := []struct {
		name  string
		input GuestInput
	}{
		{"document", GuestInput{Name: "Ana", DocumentNumber: long(MaxDocumentLength + 1)}},
		{"phone", GuestInput{Name: "Ana", Phone: long(MaxPhoneLength + 1)}},
		{"email", GuestInput{Name: "Ana", Email: long(MaxEmailLength + 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.input.Validate(), ErrInvalidInput)
		})
	}
}
