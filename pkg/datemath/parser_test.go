package datemath_test

import (
	"errors"
	"testing"
	"time"

	"wedding-timeline/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 13 months", relative: "in 13 months", want: startOfBase.AddDate(0, 13, 0)},
		{name: "In 1 year", relative: "In 1 Year", want: startOfBase.AddDate(1, 0, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown phrase", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, datemath.ErrUnrecognizedDate) {
				t.Errorf("Parse() error = %v, want ErrUnrecognizedDate", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	baseTime := time.Date(2026, 1, 10, 9, 0, 0, 0, loc)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "Empty", input: "", want: time.Time{}},
		{name: "Whitespace", input: "   ", want: time.Time{}},
		{name: "ISO date", input: "2027-06-12", want: time.Date(2027, 6, 12, 0, 0, 0, 0, loc)},
		{name: "RFC3339", input: "2027-06-12T10:00:00Z", want: time.Date(2027, 6, 12, 10, 0, 0, 0, time.UTC)},
		{name: "Slashes", input: "2027/06/12", want: time.Date(2027, 6, 12, 0, 0, 0, 0, loc)},
		{name: "Relative", input: "in 13 months", want: time.Date(2027, 2, 10, 0, 0, 0, 0, loc)},
		{name: "Garbage", input: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDate(tt.input, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate() got = %v, want %v", got, tt.want)
			}
		})
	}
}
