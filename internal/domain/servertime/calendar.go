// Package servertime converts UTC instants to fixed-offset server time
// with plain calendar arithmetic, without any timezone database.
package servertime

import "time"

// DateTime is a broken-down wall clock reading.
type DateTime struct {
	Year   int
	Month  int // 1-12
	Day    int
	Hour   int // 0-23
	Minute int
	Second int
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month (1-12) in year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// Decompose breaks t down in UTC.
func Decompose(t time.Time) DateTime {
	u := t.UTC()
	return DateTime{
		Year:   u.Year(),
		Month:  int(u.Month()),
		Day:    u.Day(),
		Hour:   u.Hour(),
		Minute: u.Minute(),
		Second: u.Second(),
	}
}

// Shift moves dt by offsetHours, rolling day, month and year over as needed.
// Offsets are expected to be within (-24, 24); larger values are applied one day at a time.
func Shift(dt DateTime, offsetHours int) DateTime {
	dt.Hour += offsetHours
	for dt.Hour >= 24 {
		dt.Hour -= 24
		dt = dt.nextDay()
	}
	for dt.Hour < 0 {
		dt.Hour += 24
		dt = dt.prevDay()
	}
	return dt
}

// Convert returns the server time reading of t at offsetHours.
func Convert(t time.Time, offsetHours int) DateTime {
	return Shift(Decompose(t), offsetHours)
}

func (dt DateTime) nextDay() DateTime {
	dt.Day++
	if dt.Day > DaysInMonth(dt.Year, dt.Month) {
		dt.Day = 1
		dt.Month++
		if dt.Month > 12 {
			dt.Month = 1
			dt.Year++
		}
	}
	return dt
}

func (dt DateTime) prevDay() DateTime {
	dt.Day--
	if dt.Day < 1 {
		dt.Month--
		if dt.Month < 1 {
			dt.Month = 12
			dt.Year--
		}
		dt.Day = DaysInMonth(dt.Year, dt.Month)
	}
	return dt
}
