package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain integer", input: "100", want: "100"},
		{name: "two decimals", input: "12.34", want: "12.34"},
		{name: "comma separator", input: "12,34", want: "12.34"},
		{name: "surrounding spaces", input: " 7.50 ", want: "7.5"},
		{name: "zero is allowed", input: "0", want: "0"},
		{name: "high precision preserved", input: "0.001", want: "0.001"},
		{name: "empty", input: "", wantErr: true},
		{name: "non-numeric", input: "abc", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "trailing garbage", input: "12.3x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestAmountDisplay(t *testing.T) {
	a, err := ParseAmount("12.5")
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Display(); got != "12.50" {
		t.Errorf("Display() = %s, want 12.50", got)
	}

	var zero Amount
	if got := zero.Display(); got != "0.00" {
		t.Errorf("zero Display() = %s, want 0.00", got)
	}
}

func TestAmountJSON(t *testing.T) {
	a, _ := ParseAmount("42.10")
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	// Wire format is a plain number, not a quoted string.
	if string(data) != "42.1" {
		t.Errorf("marshal = %s, want 42.1", data)
	}

	var back Amount
	if err := json.Unmarshal([]byte("99.95"), &back); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if back.String() != "99.95" {
		t.Errorf("unmarshal number = %s, want 99.95", back.String())
	}
	if err := json.Unmarshal([]byte(`"3.25"`), &back); err != nil {
		t.Fatalf("unmarshal quoted: %v", err)
	}
	if back.String() != "3.25" {
		t.Errorf("unmarshal quoted = %s, want 3.25", back.String())
	}
}

func TestAmountExactSummation(t *testing.T) {
	// Classic float trap: 0.1 + 0.2. The decimal representation must
	// stay exact.
	a, _ := ParseAmount("0.1")
	b, _ := ParseAmount("0.2")
	if got := a.Add(b).String(); got != "0.3" {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}
}
