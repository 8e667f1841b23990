package extract

import (
	"fmt"
	"strings"
)

const maxPhoneLength = 15

var requiredKeys = []string{"phone_number", "date", "time", "name"}

// ValidateFields checks a candidate JSON object and produces a Record.
// All four keys must be present; their values may be null or non-string and
// are coerced to trimmed strings. If any key is missing the candidate is
// rejected. The phone number keeps only digits and '+', capped at 15
// characters.
func ValidateFields(candidate map[string]any) (*Record, bool) {
	for _, key := range requiredKeys {
		if _, ok := candidate[key]; !ok {
			return nil, false
		}
	}

	return &Record{
		PhoneNumber: SanitizePhone(coerceString(candidate["phone_number"])),
		Date:        strings.TrimSpace(coerceString(candidate["date"])),
		Time:        strings.TrimSpace(coerceString(candidate["time"])),
		Name:        strings.TrimSpace(coerceString(candidate["name"])),
	}, true
}

// SanitizePhone removes every character that is not a digit or '+', then
// truncates the result to the first 15 characters.
func SanitizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}

	phone := b.String()
	if len(phone) > maxPhoneLength {
		phone = phone[:maxPhoneLength]
	}

	return phone
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
