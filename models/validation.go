package models

import (
	"regexp"
	"strconv"
	"time"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isValidEmail(input string) bool {
	return emailPattern.MatchString(input)
}

func isValidDate(input string) bool {
	_, err := time.Parse("2006-01-02", input)
	return err == nil
}

func isDigits(input string) bool {
	for _, char := range input {
		if !unicode.IsDigit(char) {
			return false
		}
	}
	return len(input) > 0
}

func maxLen(input string, limit int) bool {
	return len([]rune(input)) <= limit
}

func requiredMsg(field string) string {
	return "The " + field + " field is required."
}

func tooLongMsg(field string, limit int) string {
	return "The " + field + " field may not be greater than " + strconv.Itoa(limit) + " characters."
}
