package validate

import "testing"

func TestNigerianPhone(t *testing.T) {
	accept := []string{
		"08031234567",
		"07012345678",
		"09112345678",
		"2348031234567",
		"+2348031234567",
		"+2349012345678",
	}
	for _, num := range accept {
		if !NigerianPhone(num) {
			t.Errorf("expected %q to be accepted", num)
		}
	}

	reject := []string{
		"",
		"0803123456",     // too short
		"080312345678",   // too long
		"06031234567",    // invalid subscriber prefix
		"08231234567",    // second digit not 0/1
		"+4478031234567", // wrong country
		"1234567890",
		"+234 803 123 4567", // spaces not allowed
		"abcdefghijk",
	}
	for _, num := range reject {
		if NigerianPhone(num) {
			t.Errorf("expected %q to be rejected", num)
		}
	}
}

func TestEmail(t *testing.T) {
	if !Email("ada@universeofhair.ng") {
		t.Error("expected valid email to be accepted")
	}
	for _, s := range []string{"", "ada", "ada@", "@shop.ng", "ada@shop", "a b@shop.ng"} {
		if Email(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
