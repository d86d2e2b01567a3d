package cases

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day, written as YYYY-MM-DD in CSV and YAML.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Date{t}, nil
}

// MustDate is for literal tables only.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NextDay is the following calendar day.
func (d Date) NextDay() Date {
	return Date{d.AddDate(0, 0, 1)}
}

// Compact renders the date as YYYYMMDD.
func (d Date) Compact() string {
	return d.Format("20060102")
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalCSV(s string) error {
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
