package models

import "testing"

func TestExtractZip(t *testing.T) {
	testCases := []struct {
		name     string
		address  string
		expected string
	}{
		{"Full address", "1234 Main St, Louisville, KY 40211", "40211"},
		{"Zip+4 keeps five digits", "500 Oak Ave, Louisville, KY 40202-1234", "40202"},
		{"Five-digit house number, no zip", "10450 Shelbyville Rd", "10450"},
		{"Last five-digit group wins", "10450 Shelbyville Rd, Louisville, KY 40223", "40223"},
		{"No digits", "Oak Avenue property", ""},
		{"Empty address", "", ""},
		{"Short digits only", "12 Elm Ct", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractZip(tc.address); got != tc.expected {
				t.Errorf("ExtractZip(%q) = %q, want %q", tc.address, got, tc.expected)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	testCases := []struct {
		input    string
		expected Source
	}{
		{"violations", SourceViolations},
		{"lis_pendens", SourceLisPendens},
		{"tax_delinquent", SourceTaxDelinquent},
		{"LIS_PENDENS", SourceLisPendens},
		{"  tax_delinquent  ", SourceTaxDelinquent},
		{"", SourceViolations},
		{"garbage", SourceViolations},
	}

	for _, tc := range testCases {
		if got := ParseSource(tc.input); got != tc.expected {
			t.Errorf("ParseSource(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
