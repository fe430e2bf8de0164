package util

import (
	"time"
)

const (
	dateLayout     = "2006-01-02"
	brDateTimeForm = "02/01/2006 às 15:04"
)

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

func FormatDateTimeBR(t time.Time) string {
	return t.In(saoPauloLocation).Format(brDateTimeForm)
}

// DateISO devolve a data (AAAA-MM-DD) do instante no fuso de São Paulo.
func DateISO(t time.Time) string {
	return t.In(saoPauloLocation).Format(dateLayout)
}

// DayRange converte "AAAA-MM-DD" no intervalo [início, fim] daquele dia em São Paulo.
func DayRange(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, saoPauloLocation)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return day, end, nil
}

func ToTimePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
