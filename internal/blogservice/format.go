package blogservice

import "time"

// timeLayout renders timestamps as "<weekday> <month> <day> <year> HH:MM" with
// a zero-padded day and 24-hour clock, independent of locale.
const timeLayout = "Mon Jan 02 2006 15:04"

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}
