package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Jayphen/taskbot/internal/command"
)

var (
	timeNow = time.Now

	dateRegex   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?$`)
	time24Regex = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
	time12Regex = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}) ([AaPp][Mm])$`)
)

// ParseDate accepts d/M, d/M/yy and d/M/yyyy. A missing year means the
// current year; a two-digit year falls in the current century.
func ParseDate(s string) (time.Time, error) {
	m := dateRegex.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, dateError()
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	now := timeNow()
	year := now.Year()
	switch len(m[3]) {
	case 2:
		yy, _ := strconv.Atoi(m[3])
		year = now.Year()/100*100 + yy
	case 4:
		year, _ = strconv.Atoi(m[3])
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalises 31/02 into March; reject anything it had to move.
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, dateError()
	}
	return date, nil
}

// ParseTime accepts H:m (24-hour) or h:m a (12-hour with AM/PM). The 12-hour
// form is chosen when s contains a space. An empty s is midnight.
func ParseTime(s string) (hour, minute int, err error) {
	if strings.TrimSpace(s) == "" {
		return 0, 0, nil
	}

	if strings.Contains(s, " ") {
		m := time12Regex.FindStringSubmatch(s)
		if m == nil {
			return 0, 0, timeError()
		}
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, timeError()
		}
		hour %= 12
		if strings.EqualFold(m[3], "PM") {
			hour += 12
		}
		return hour, minute, nil
	}

	m := time24Regex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, timeError()
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, timeError()
	}
	return hour, minute, nil
}

// ParseDateTime reads a date token optionally followed by time tokens, e.g.
// "26/08/2020 23:59" or "26/08 1:19 PM".
func ParseDateTime(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return time.Time{}, dateError()
	}

	date, err := ParseDate(fields[0])
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := ParseTime(strings.Join(fields[1:], " "))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local), nil
}

func dateError() error {
	return command.Errorf("Unable to parse date.\n\n" +
		"Please input your date in one of the following formats:\n" +
		"26/08\n26/08/20\n26/08/2020")
}

func timeError() error {
	return command.Errorf("Unable to parse time.\n\n" +
		"Please input your time in one of the following formats:\n" +
		"1:19\n1:19 AM")
}
