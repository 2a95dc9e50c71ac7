package numeric

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCompoundInterest(t *testing.T) {
	t.Run("monthly compounding matches reference value", func(t *testing.T) {
		// 100000 at 12% compounded monthly for 5 years -> 181669.67
		got, err := CompoundInterest(dec("100000"), dec("12"), 12, dec("5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := dec("181669.67"); !RoundCurrency(got).Equal(want) {
			t.Errorf("expected %s, got %s", want, RoundCurrency(got))
		}
	})

	t.Run("zero rate returns principal unchanged", func(t *testing.T) {
		principal := dec("54321.99")
		got, err := CompoundInterest(principal, decimal.Zero, 12, dec("10"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(principal) {
			t.Errorf("expected principal %s unchanged, got %s", principal, got)
		}
	})

	t.Run("zero years returns principal unchanged", func(t *testing.T) {
		principal := dec("1000")
		got, err := CompoundInterest(principal, dec("8"), 4, decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(principal) {
			t.Errorf("expected principal %s unchanged, got %s", principal, got)
		}
	})

	t.Run("invalid inputs are rejected", func(t *testing.T) {
		cases := []struct {
			name      string
			principal decimal.Decimal
			rate      decimal.Decimal
			periods   int
			years     decimal.Decimal
			sentinel  error
		}{
			{"negative principal", dec("-1"), dec("5"), 12, dec("1"), domainerror.ErrNegativePrincipal},
			{"negative rate", dec("100"), dec("-5"), 12, dec("1"), domainerror.ErrNegativeRate},
			{"zero periods", dec("100"), dec("5"), 0, dec("1"), domainerror.ErrNonPositivePeriods},
			{"negative years", dec("100"), dec("5"), 12, dec("-1"), domainerror.ErrNegativeYears},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := CompoundInterest(tc.principal, tc.rate, tc.periods, tc.years)
				if !errors.Is(err, tc.sentinel) {
					t.Errorf("expected %v, got %v", tc.sentinel, err)
				}
				var calcErr *domainerror.CalculationError
				if !errors.As(err, &calcErr) {
					t.Errorf("expected a CalculationError, got %T", err)
				}
			})
		}
	})
}

func TestFutureValueOfAnnuity(t *testing.T) {
	t.Run("matches reference value", func(t *testing.T) {
		// 5000/month at 1% monthly for 120 months -> 1150193.45
		got, err := FutureValueOfAnnuity(dec("5000"), dec("0.01"), 120)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := dec("1150193.45"); !RoundCurrency(got).Equal(want) {
			t.Errorf("expected %s, got %s", want, RoundCurrency(got))
		}
	})

	t.Run("zero rate collapses to payment times periods", func(t *testing.T) {
		got, err := FutureValueOfAnnuity(dec("250"), decimal.Zero, 48)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := dec("12000"); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("zero periods yields zero", func(t *testing.T) {
		got, err := FutureValueOfAnnuity(dec("250"), dec("0.01"), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})

	t.Run("negative payment is rejected", func(t *testing.T) {
		_, err := FutureValueOfAnnuity(dec("-1"), dec("0.01"), 12)
		if !errors.Is(err, domainerror.ErrNegativeContribution) {
			t.Errorf("expected ErrNegativeContribution, got %v", err)
		}
	})
}

func TestPresentValueOfAnnuity(t *testing.T) {
	t.Run("discounts future payments", func(t *testing.T) {
		got, err := PresentValueOfAnnuity(dec("1000"), dec("0.01"), 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// PV of 12 monthly payments of 1000 at 1%/month = 11255.08
		if want := dec("11255.08"); !RoundCurrency(got).Equal(want) {
			t.Errorf("expected %s, got %s", want, RoundCurrency(got))
		}
	})

	t.Run("zero rate collapses to payment times periods", func(t *testing.T) {
		got, err := PresentValueOfAnnuity(dec("1000"), decimal.Zero, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := dec("12000"); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestMonthlyRate(t *testing.T) {
	got := MonthlyRate(dec("12"))
	if want := dec("0.01"); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRounding(t *testing.T) {
	t.Run("half up at currency boundary", func(t *testing.T) {
		if got := RoundCurrency(dec("1.005")); !got.Equal(dec("1.01")) {
			t.Errorf("expected 1.01, got %s", got)
		}
	})

	t.Run("determinism: repeated evaluation is bit-identical", func(t *testing.T) {
		a, _ := CompoundInterest(dec("98765.43"), dec("7.25"), 4, dec("13"))
		b, _ := CompoundInterest(dec("98765.43"), dec("7.25"), 4, dec("13"))
		if a.Cmp(b) != 0 || a.String() != b.String() {
			t.Errorf("expected identical results, got %s and %s", a, b)
		}
	})
}
