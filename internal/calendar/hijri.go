// Package calendar converts between the Gregorian and the tabular Hijri
// calendar (civil epoch, 30-year leap cycle) through Julian Day Numbers.
package calendar

import (
	"fmt"
	"math"
	"time"
)

// HawlDays is the length of the waiting period in lunar days.
const HawlDays = 354

const (
	hijriEpochJDN = 1948440 // 1 Muharram 1 AH
	unixEpochJDN  = 2440588 // 1970-01-01
)

var monthNames = [12]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
	"Jumada al-Ula", "Jumada al-Thani", "Rajab", "Shaban",
	"Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
}

// HijriDate is a date in the tabular Hijri calendar.
type HijriDate struct {
	Year  int
	Month int
	Day   int
}

func (h HijriDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d AH", h.Year, h.Month, h.Day)
}

// MonthName returns the month's transliterated name.
func (h HijriDate) MonthName() string {
	if h.Month < 1 || h.Month > 12 {
		return ""
	}
	return monthNames[h.Month-1]
}

// IsValid reports whether the date exists in the tabular calendar.
func (h HijriDate) IsValid() bool {
	if h.Year < 1 || h.Month < 1 || h.Month > 12 || h.Day < 1 {
		return false
	}
	return h.Day <= DaysInMonth(h.Year, h.Month)
}

// IsLeapYear reports whether year has 355 days. Leap years fall on
// 2, 5, 7, 10, 13, 16, 18, 21, 24, 26 and 29 of each 30-year cycle.
func IsLeapYear(year int) bool {
	return (14+11*year)%30 < 11
}

// YearLength returns 354 or 355.
func YearLength(year int) int {
	if IsLeapYear(year) {
		return 355
	}
	return 354
}

// DaysInMonth returns the length of month in year: odd months have 30 days,
// even months 29, and Dhu al-Hijjah 30 in a leap year.
func DaysInMonth(year, month int) int {
	if month == 12 && IsLeapYear(year) {
		return 30
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}

func hijriToJDN(year, month, day int) int {
	return day +
		(59*(month-1)+1)/2 +
		(year-1)*354 +
		(3+11*year)/30 +
		hijriEpochJDN - 1
}

func jdnToHijri(jdn int) HijriDate {
	year := (30*(jdn-hijriEpochJDN) + 10646) / 10631
	month := int(math.Ceil(float64(jdn-29-hijriToJDN(year, 1, 1))/29.5)) + 1
	if month > 12 {
		month = 12
	}
	if month < 1 {
		month = 1
	}
	day := jdn - hijriToJDN(year, month, 1) + 1
	return HijriDate{Year: year, Month: month, Day: day}
}

func gregorianToJDN(t time.Time) int {
	y, m, d := t.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	return int(days) + unixEpochJDN
}

func jdnToGregorian(jdn int) time.Time {
	return time.Unix(int64(jdn-unixEpochJDN)*86400, 0).UTC()
}

// ToHijri converts the calendar date of t (in t's location) to Hijri.
func ToHijri(t time.Time) HijriDate {
	return jdnToHijri(gregorianToJDN(t))
}

// ToGregorian returns midnight UTC of the Gregorian date for h.
func ToGregorian(h HijriDate) time.Time {
	return jdnToGregorian(hijriToJDN(h.Year, h.Month, h.Day))
}

// AddLunarDays advances t by n days. Lunar days are civil days; only month
// and year boundaries differ between the calendars.
func AddLunarDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// HawlCompletion returns the end of a waiting period starting at start.
func HawlCompletion(start time.Time) time.Time {
	return AddLunarDays(start, HawlDays)
}

// NextAnniversary returns the first Gregorian date on or after now's date
// that carries start's Hijri month and day, at least one lunar year after
// start. The day is clamped to the month length of the anniversary year.
func NextAnniversary(start, now time.Time) time.Time {
	origin := ToHijri(start)
	today := gregorianToJDN(now)

	year := ToHijri(now).Year
	if year <= origin.Year {
		year = origin.Year + 1
	}
	for {
		day := origin.Day
		if dim := DaysInMonth(year, origin.Month); day > dim {
			day = dim
		}
		jdn := hijriToJDN(year, origin.Month, day)
		if jdn >= today {
			return jdnToGregorian(jdn)
		}
		year++
	}
}

// DaysBetween returns the whole calendar days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	return gregorianToJDN(b) - gregorianToJDN(a)
}
