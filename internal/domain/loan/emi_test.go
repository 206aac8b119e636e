package loan

import (
	"math"
	"testing"
)

func TestMonthlyInstallment_ReferenceValue(t *testing.T) {
	got := MonthlyInstallment(100_000, 10, 12)
	if math.Abs(got-8791.59) > 0.005 {
		t.Fatalf("EMI = %.4f, want ~8791.59", got)
	}
	if RoundMoney(got) != 8791.59 {
		t.Fatalf("RoundMoney(EMI) = %v, want 8791.59", RoundMoney(got))
	}
}

func TestMonthlyInstallment_ZeroRateAndTenure(t *testing.T) {
	if got := MonthlyInstallment(1_200, 0, 12); got != 100 {
		t.Fatalf("zero-rate EMI = %v, want 100", got)
	}
	if got := MonthlyInstallment(1_200, 10, 0); got != 0 {
		t.Fatalf("zero-tenure EMI = %v, want 0", got)
	}
}

func TestPolicyBoundaries(t *testing.T) {
	if !AmountWithinIncome(40_000, 100_000) {
		t.Fatal("amount at exactly 40% must be accepted")
	}
	if AmountWithinIncome(41_000, 100_000) {
		t.Fatal("amount at 41% must be rejected")
	}
	// monthly income 10000 -> cap 3000
	if !EmiWithinIncome(3_000, 120_000) {
		t.Fatal("EMI at exactly 30% must be accepted")
	}
	if EmiWithinIncome(3_000.01, 120_000) {
		t.Fatal("EMI above 30% must be rejected")
	}
}

func TestParseStatus(t *testing.T) {
	if s, ok := ParseStatus("UNDER_REVIEW"); !ok || s != StatusUnderReview {
		t.Fatalf("ParseStatus(UNDER_REVIEW) = %q,%v", s, ok)
	}
	if _, ok := ParseStatus("under_review"); ok {
		t.Fatal("ParseStatus must be case sensitive")
	}
	if !StatusActive.In(OpenStatuses...) || StatusRejected.In(OpenStatuses...) {
		t.Fatal("OpenStatuses membership wrong")
	}
}
