package task

import (
	"fmt"
	"strings"
	"time"
)

const (
	fieldSep  = " | "
	tagSep    = ","
	tagMarker = "#"

	// SaveLayout is the date-time layout used in save lines.
	SaveLayout = "2006-01-02T15:04"
)

var (
	fieldEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`)
	tagEscaper   = strings.NewReplacer(`\`, `\\`, `|`, `\|`, `,`, `\,`)
)

// Encode renders t as a single save line:
//
//	T | 0 | read book | HIGH | #fun,#home
//	D | 1 | submit report | NONE |  | 2020-08-26T23:59
//
// Backslashes and pipes inside the description and tags are escaped with a
// backslash, as are commas inside tags.
func Encode(t *Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{string(t.Kind), done, fieldEscaper.Replace(t.Description), string(t.Priority), encodeTags(t.Tags)}
	if t.Kind != KindTodo {
		fields = append(fields, t.When.Format(SaveLayout))
	}
	return strings.Join(fields, fieldSep)
}

func encodeTags(tags []string) string {
	encoded := make([]string, len(tags))
	for i, tag := range tags {
		encoded[i] = tagMarker + tagEscaper.Replace(tag)
	}
	return strings.Join(encoded, tagSep)
}

// Decode is the inverse of Encode. The fixed fields are anchored at both ends
// of the line so that an unescaped separator inside the description survives.
func Decode(line string) (*Task, error) {
	parts := splitFields(line)
	if len(parts) < 5 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecord, line)
	}

	kind := Kind(parts[0])
	trailing := 2
	switch kind {
	case KindTodo:
	case KindDeadline, KindEvent:
		trailing = 3
		if len(parts) < 6 {
			return nil, fmt.Errorf("%w: missing date-time in %q", ErrInvalidRecord, line)
		}
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidRecord, parts[0])
	}

	var done bool
	switch parts[1] {
	case "0":
	case "1":
		done = true
	default:
		return nil, fmt.Errorf("%w: bad done flag %q", ErrInvalidRecord, parts[1])
	}

	rest := parts[len(parts)-trailing:]
	description := unescape(strings.Join(parts[2:len(parts)-trailing], fieldSep))

	priority, err := ParsePriority(rest[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	tags := decodeTags(rest[1])

	var when time.Time
	if trailing == 3 {
		when, err = parseSaveTime(rest[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
	}

	t, err := newTask(kind, description, when, priority, tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	t.Done = done
	return t, nil
}

func parseSaveTime(s string) (time.Time, error) {
	when, err := time.ParseInLocation(SaveLayout, s, time.Local)
	if err == nil {
		return when, nil
	}
	// Older files may carry seconds.
	return time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
}

// splitFields splits line on unescaped pipes and trims the single space on
// either side of each separator. Escapes are left in place.
func splitFields(line string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '|':
			parts = append(parts, line[start:i])
			start = i + 1
		}
	}
	parts = append(parts, line[start:])

	for i := range parts {
		if i > 0 {
			parts[i] = strings.TrimPrefix(parts[i], " ")
		}
		if i < len(parts)-1 {
			parts[i] = strings.TrimSuffix(parts[i], " ")
		}
	}
	return parts
}

// decodeTags reads a comma-separated tag field. Tags written without the
// leading marker are read as is.
func decodeTags(field string) []string {
	if field == "" {
		return nil
	}

	var tags []string
	start := 0
	for i := 0; i <= len(field); i++ {
		if i < len(field) && field[i] == '\\' {
			i++
			continue
		}
		if i == len(field) || field[i] == ',' {
			tag := field[start:i]
			tags = append(tags, unescape(strings.TrimPrefix(tag, tagMarker)))
			start = i + 1
		}
	}
	return tags
}

// unescape drops the backslash in front of every escaped byte.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
