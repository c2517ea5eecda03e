package pkg

import (
	"fmt"
	"time"
)

var monthNamesPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

type YearMonth struct {
	Year  int
	Month int
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// Window devolve [primeiro dia 00:00:00, último dia 23:59:59] em UTC.
func (ym YearMonth) Window() (time.Time, time.Time) {
	return MonthWindow(ym.Month, ym.Year)
}

func (ym YearMonth) Name() string {
	return MonthNamePT(ym.Month)
}

func MonthWindow(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

func MonthNamePT(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNamesPT[month-1]
}

func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

func ValidYear(year int) bool {
	return year >= 1900 && year <= 9999
}

// TrailingMonths devolve n meses consecutivos terminando no mês de ref,
// do mais antigo para o mais recente.
func TrailingMonths(ref time.Time, n int) []YearMonth {
	ref = ref.UTC()
	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]YearMonth, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := anchor.AddDate(0, -i, 0)
		months = append(months, YearMonth{Year: m.Year(), Month: int(m.Month())})
	}
	return months
}
