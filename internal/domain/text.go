package domain

import "unicode/utf8"

// tooLong длина в символах, как у VARCHAR(n)
func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// TooLong проверка длины необязательного текстового поля в символах
func TooLong(s *string, max int) bool {
	return s != nil && tooLong(*s, max)
}
