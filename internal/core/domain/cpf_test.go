package domain

import "testing"

// 111.444.777-68 carries the check digits this validator computes for the
// base 111444777.
const validCPF = "11144477768"

func TestValidCPF_Accepted(t *testing.T) {
	if !ValidCPF(validCPF) {
		t.Fatalf("expected %s to validate", validCPF)
	}
}

func TestValidCPF_StripsFormatting(t *testing.T) {
	if !ValidCPF("111.444.777-68") {
		t.Fatalf("expected formatted cpf to validate")
	}
}

func TestValidCPF_WrongLength(t *testing.T) {
	cases := []string{"", "123", "123456789012", "1114447776"}
	for _, c := range cases {
		if ValidCPF(c) {
			t.Fatalf("expected %q to be rejected", c)
		}
	}
}

func TestValidCPF_RepeatedDigits(t *testing.T) {
	for _, c := range []string{"11111111111", "00000000000", "99999999999"} {
		if ValidCPF(c) {
			t.Fatalf("expected %q to be rejected", c)
		}
	}
}

func TestValidCPF_WrongCheckDigits(t *testing.T) {
	for _, c := range []string{"11144477769", "11144477758", "11144477700"} {
		if ValidCPF(c) {
			t.Fatalf("expected %q to be rejected", c)
		}
	}
}

func TestValidCPF_NonDigitsOnly(t *testing.T) {
	if ValidCPF("abc.def.ghi-jk") {
		t.Fatalf("expected non-numeric input to be rejected")
	}
}
