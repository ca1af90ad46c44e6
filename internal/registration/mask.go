package registration

import "regexp"

// MaxPhoneDigits is the largest digit count MaskPhone will reformat.
const MaxPhoneDigits = 11

var (
	nonDigitPattern   = regexp.MustCompile(`\D`)
	phoneGroupPattern = regexp.MustCompile(`(\d{2})(\d{5})(\d{4})`)
)

// MaskPhone formats raw phone input for display.
//
// Non-digits are stripped. Up to MaxPhoneDigits digits, the first
// 2-5-4 digit group is rewritten as "(DD) DDDDD-DDDD" and any shorter run is
// returned as bare digits. Above MaxPhoneDigits the input is returned
// unchanged.
func MaskPhone(value string) string {
	digits := nonDigitPattern.ReplaceAllString(value, "")
	if len(digits) > MaxPhoneDigits {
		return value
	}
	// At most one group fits in 11 digits.
	return phoneGroupPattern.ReplaceAllString(digits, "($1) $2-$3")
}
