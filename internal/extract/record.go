// Package extract implements the survey-schedule extraction pipeline:
// normalizing incoming Indonesian-language text, prompting a chat-completion
// model, recovering the JSON object from its free-form reply, and validating
// the four schedule fields.
package extract

// Record is the validated extraction output. All four fields are always
// populated with (possibly empty) strings; PhoneNumber contains only digits
// and an optional leading '+', at most 15 characters. A Record is a value
// type and is never mutated after validation.
type Record struct {
	PhoneNumber string `json:"phone_number"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Name        string `json:"name"`
}
