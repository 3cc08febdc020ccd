package database

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayouts are the text forms sqlite may hand back for a timestamp when
// the driver can't see the column's declared type, as with RETURNING.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
}

type timeScanner struct {
	dst *time.Time
}

// ScanTime returns a scanner that stores a timestamp column into dst,
// whether the driver yields a time.Time or its text form.
func ScanTime(dst *time.Time) sql.Scanner {
	return timeScanner{dst: dst}
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.dst = v.UTC()
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	default:
		return fmt.Errorf("scan time: unsupported type %T", src)
	}
}

func (s timeScanner) parse(text string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			*s.dst = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("scan time: unrecognized format %q", text)
}
