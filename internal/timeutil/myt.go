package timeutil

import (
	"time"
)

// MYT is the Malaysian Time location (UTC+8). The plant sites all run on it.
var MYT *time.Location

func init() {
	var err error
	MYT, err = time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kuala_Lumpur not available
		MYT = time.FixedZone("MYT", 8*60*60) // UTC+8
	}
}

// Now returns the current time in MYT.
func Now() time.Time {
	return time.Now().In(MYT)
}

// ToMYT converts any time to MYT.
func ToMYT(t time.Time) time.Time {
	return t.In(MYT)
}

// FormatMYT formats a time in MYT using the given layout.
func FormatMYT(t time.Time, layout string) string {
	return t.In(MYT).Format(layout)
}

// StartOfDay returns the start of day (00:00:00) in MYT for the given time.
func StartOfDay(t time.Time) time.Time {
	myt := t.In(MYT)
	return time.Date(myt.Year(), myt.Month(), myt.Day(), 0, 0, 0, 0, MYT)
}

// Common layouts for MYT formatting
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
