package period

import "testing"

func TestContains(t *testing.T) {
	cases := []struct {
		name string
		p    Period
		date string
		want bool
	}{
		{"inside", Period{Start: "2024-05-01", End: "2024-05-31"}, "2024-05-15", true},
		{"start boundary", Period{Start: "2024-05-01", End: "2024-05-31"}, "2024-05-01", true},
		{"end boundary", Period{Start: "2024-05-01", End: "2024-05-31"}, "2024-05-31", true},
		{"before", Period{Start: "2024-05-01", End: "2024-05-31"}, "2024-04-30", false},
		{"after", Period{Start: "2024-05-01", End: "2024-05-31"}, "2024-06-01", false},
		{"unbounded start", Period{End: "2024-04-30"}, "1999-01-01", true},
		{"unbounded start after end", Period{End: "2024-04-30"}, "2024-05-01", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.Contains(c.date); got != c.want {
				t.Errorf("Contains(%q) = %v, want %v", c.date, got, c.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	if _, err := New("2024-05-01", "2024-05-31"); err != nil {
		t.Errorf("New valid range: %v", err)
	}
	if _, err := New("2024-05-31", "2024-05-01"); err == nil {
		t.Error("New with end before start: want error")
	}
	if _, err := New("2024-5-1", "2024-05-31"); err == nil {
		t.Error("New with non-padded start: want error")
	}
}

func TestMonth(t *testing.T) {
	p, err := Month("2024-02")
	if err != nil {
		t.Fatalf("Month(2024-02): %v", err)
	}
	if p.Start != "2024-02-01" || p.End != "2024-02-29" {
		t.Errorf("Month(2024-02) = %s..%s", p.Start, p.End)
	}

	p, err = Month("2024-12")
	if err != nil {
		t.Fatalf("Month(2024-12): %v", err)
	}
	if p.End != "2024-12-31" {
		t.Errorf("Month(2024-12) end = %s", p.End)
	}

	if _, err := Month("2024-13"); err == nil {
		t.Error("Month(2024-13): want error")
	}
}

func TestHistoryBefore(t *testing.T) {
	p := HistoryBefore("2024-05-01")
	if p.Start != "" {
		t.Errorf("HistoryBefore start = %q, want unbounded", p.Start)
	}
	if p.End != "2024-04-30" {
		t.Errorf("HistoryBefore end = %s, want 2024-04-30", p.End)
	}

	// The cut is exclusive: periodStart itself belongs to the window,
	// never the history.
	if p.Contains("2024-05-01") {
		t.Error("history must not contain the period start")
	}
	if !p.Contains("2024-04-30") {
		t.Error("history must contain the day before the period start")
	}
}

func TestPrevDay(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2024-05-01", "2024-04-30"},
		{"2024-03-01", "2024-02-29"}, // leap year
		{"2024-01-01", "2023-12-31"},
	}
	for _, c := range cases {
		if got := PrevDay(c.in); got != c.want {
			t.Errorf("PrevDay(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}
