package pkg_test

import (
	"encoding/json"
	"testing"
	"time"

	"Caixa/internal/pkg"
)

func TestMonthWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		month     int
		year      int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "março",
			month:     3,
			year:      2024,
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "fevereiro bissexto",
			month:     2,
			year:      2024,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "dezembro vira o ano",
			month:     12,
			year:      2023,
			wantStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, end := pkg.MonthWindow(tt.month, tt.year)
			if !start.Equal(tt.wantStart) {
				t.Fatalf("início: esperado %s, obtido %s", tt.wantStart, start)
			}
			if !end.Equal(tt.wantEnd) {
				t.Fatalf("fim: esperado %s, obtido %s", tt.wantEnd, end)
			}
		})
	}
}

func TestTrailingMonths_CrossesYear(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	got := pkg.TrailingMonths(ref, 6)

	want := []pkg.YearMonth{
		{Year: 2023, Month: 10},
		{Year: 2023, Month: 11},
		{Year: 2023, Month: 12},
		{Year: 2024, Month: 1},
		{Year: 2024, Month: 2},
		{Year: 2024, Month: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("esperava %d meses, obtido %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("posição %d: esperado %s, obtido %s", i, want[i], got[i])
		}
	}
}

func TestTrailingMonths_EndOfMonthReference(t *testing.T) {
	t.Parallel()

	// 31 de maio não pode pular fevereiro ao voltar meses
	got := pkg.TrailingMonths(time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), 4)
	want := []int{2, 3, 4, 5}
	for i, m := range want {
		if got[i].Month != m {
			t.Fatalf("posição %d: esperado mês %d, obtido %d", i, m, got[i].Month)
		}
	}
}

func TestMonthNamePT(t *testing.T) {
	t.Parallel()

	if got := pkg.MonthNamePT(3); got != "março" {
		t.Fatalf("esperado março, obtido %s", got)
	}
	if got := pkg.MonthNamePT(13); got != "" {
		t.Fatalf("esperado vazio, obtido %s", got)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{`"2024-03-10"`, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), false},
		{`"2024-03-10T12:30:00Z"`, time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC), false},
		{`"2024-03-10T12:30:00-03:00"`, time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC), false},
		{`"10/03/2024"`, time.Time{}, true},
		{`20240310`, time.Time{}, true},
	}

	for _, tt := range tests {
		var d pkg.Date
		err := json.Unmarshal([]byte(tt.input), &d)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%s: esperava erro", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: erro inesperado %v", tt.input, err)
		}
		if !d.Equal(tt.want) {
			t.Fatalf("%s: esperado %s, obtido %s", tt.input, tt.want, d.Time)
		}
	}
}
