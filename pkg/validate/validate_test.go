package validate

import (
	"testing"
	"time"
)

func TestValidateSearch(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	cases := []struct {
		name    string
		from    string
		to      string
		date    string
		wantErr bool
	}{
		{"valid search", "Praha", "Brno", tomorrow, false},
		{"today is allowed", "Praha", "Brno", today, false},
		{"same endpoints", "Praha", "Praha", tomorrow, true},
		{"date in the past", "Praha", "Brno", yesterday, true},
		{"missing from", "", "Brno", tomorrow, true},
		{"missing to", "Praha", "", tomorrow, true},
		{"missing date", "Praha", "Brno", "", true},
		{"malformed date", "Praha", "Brno", "zítra", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSearch(tc.from, tc.to, tc.date)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePassenger(t *testing.T) {
	cases := []struct {
		name    string
		pname   string
		email   string
		wantErr bool
	}{
		{"valid passenger", "Jan Novák", "jan@example.cz", false},
		{"blank name", "", "a@b.cz", true},
		{"whitespace name", "   ", "a@b.cz", true},
		{"blank email", "Jan Novák", "", true},
		{"malformed email", "Jan Novák", "not-an-email", true},
		{"email without tld", "Jan Novák", "jan@example", true},
		{"email with space", "Jan Novák", "jan novak@example.cz", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassenger(tc.pname, tc.email)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAge(t *testing.T) {
	if err := ValidateAge(35); err != nil {
		t.Fatalf("unexpected error for age 35: %v", err)
	}
	if err := ValidateAge(0); err != nil {
		t.Fatalf("unexpected error for unset age: %v", err)
	}
	if err := ValidateAge(121); err == nil {
		t.Fatal("expected error for age 121")
	}
	if err := ValidateAge(-1); err == nil {
		t.Fatal("expected error for negative age")
	}
}
