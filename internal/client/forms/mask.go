package forms

import "strconv"

// MaskDate reformats the raw input of a date field into a dd/mm/yyyy display
// string. Only digits are meaningful: everything else is stripped and the
// separators are regenerated, so running the mask over its own output is a
// no-op.
//
// The digit stream is partitioned as day (2), month (2), year (up to 4), with
// best-effort clamping while typing: a single day digit above 3 is padded
// ("4" becomes "04"), a full day is clamped into 01..31, a single month digit
// above 1 is padded and a full month is clamped into 01..12. Separators
// appear once the 3rd and 5th digits are typed.
func MaskDate(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) == 0 {
		return ""
	}

	day := digits[:min(2, len(digits))]
	var month, year string
	if len(digits) > 2 {
		month = digits[2:min(4, len(digits))]
	}
	if len(digits) > 4 {
		year = digits[4:min(8, len(digits))]
	}

	if len(day) == 1 {
		if day[0] > '3' {
			day = "0" + day
		}
	} else {
		n, _ := strconv.Atoi(day)
		if n == 0 {
			day = "01"
		} else if n > 31 {
			day = "31"
		}
	}

	if len(month) == 1 {
		if month[0] > '1' {
			month = "0" + month
		}
	} else if len(month) == 2 {
		n, _ := strconv.Atoi(month)
		if n == 0 {
			month = "01"
		} else if n > 12 {
			month = "12"
		}
	}

	formatted := day
	if len(digits) >= 3 {
		formatted += "/" + month
	}
	if len(digits) >= 5 {
		formatted += "/" + year
	}
	return formatted
}

func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
