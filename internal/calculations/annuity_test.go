package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizationCoefficient(t *testing.T) {
	tests := []struct {
		name      string
		periods   int
		rate      float64
		want      float64
		wantError error
	}{
		{
			name:    "one year at 12%",
			periods: 12,
			rate:    12,
			want:    0.0888487886783416,
		},
		{
			name:      "zero rate",
			periods:   12,
			rate:      0,
			wantError: ErrZeroInterest,
		},
		{
			name:      "zero periods",
			periods:   0,
			rate:      10,
			wantError: ErrInvalidPeriods,
		},
		{
			name:      "negative rate",
			periods:   10,
			rate:      -1,
			wantError: ErrNegativeRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AmortizationCoefficient(tt.periods, tt.rate)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestMonthlyRate(t *testing.T) {
	assert.InDelta(t, 0.01, MonthlyRate(12), 1e-15)
	assert.Equal(t, 0.0, MonthlyRate(0))
}

func TestAnnuityPayment(t *testing.T) {
	tests := []struct {
		name            string
		principal       float64
		periods         int
		rate            float64
		wantPayment     int64
		wantOverpayment int64
		wantError       error
	}{
		{
			name:            "five years at 10%",
			principal:       1000000,
			periods:         60,
			rate:            10,
			wantPayment:     21248,
			wantOverpayment: 274880,
		},
		{
			name:            "one year at 12%",
			principal:       1000000,
			periods:         12,
			rate:            12,
			wantPayment:     88849,
			wantOverpayment: 66188,
		},
		{
			name:      "zero rate returns error",
			principal: 1000000,
			periods:   12,
			rate:      0,
			wantError: ErrZeroInterest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AnnuityPayment(tt.principal, tt.periods, tt.rate)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPayment, result.Payment)
			assert.Equal(t, tt.wantOverpayment, result.Overpayment)
		})
	}
}

func TestAnnuityPeriods(t *testing.T) {
	tests := []struct {
		name            string
		principal       float64
		payment         float64
		rate            float64
		wantPeriods     int
		wantOverpayment int64
		wantError       error
	}{
		{
			name:            "partial month rounds up",
			principal:       500000,
			payment:         23000,
			rate:            7,
			wantPeriods:     24,
			wantOverpayment: 52000,
		},
		{
			name:            "inverse of payment calculation",
			principal:       1000000,
			payment:         21248,
			rate:            10,
			wantPeriods:     60,
			wantOverpayment: 274880,
		},
		{
			name:            "short loan",
			principal:       100000,
			payment:         5000,
			rate:            12,
			wantPeriods:     23,
			wantOverpayment: 15000,
		},
		{
			name:      "payment below monthly interest",
			principal: 1000000,
			payment:   5000,
			rate:      10,
			wantError: ErrPaymentTooSmall,
		},
		{
			name:      "payment equal to monthly interest",
			principal: 120000,
			payment:   1200,
			rate:      12,
			wantError: ErrPaymentTooSmall,
		},
		{
			name:      "zero rate",
			principal: 1000,
			payment:   100,
			rate:      0,
			wantError: ErrZeroInterest,
		},
		{
			name:      "zero payment",
			principal: 1000,
			payment:   0,
			rate:      10,
			wantError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AnnuityPeriods(tt.principal, tt.payment, tt.rate)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPeriods, result.Periods)
			assert.Equal(t, tt.wantOverpayment, result.Overpayment)
		})
	}
}

func TestComputePeriodsTinyInterest(t *testing.T) {
	periods, err := ComputePeriods(1000, 1000, 0.0001)
	require.NoError(t, err)
	assert.Equal(t, 2, periods)
}

func TestAnnuityPrincipal(t *testing.T) {
	result, err := AnnuityPrincipal(120, 8721.8, 5.6)
	require.NoError(t, err)
	assert.Equal(t, int64(800001), result.Principal)
	// 120 · 8721.8 = 1046616 ровно, без ошибок float64
	assert.Equal(t, int64(246615), result.Overpayment)

	_, err = AnnuityPrincipal(0, 8721.8, 5.6)
	require.ErrorIs(t, err, ErrInvalidPeriods)
}

func TestPaymentPrincipalRoundTrip(t *testing.T) {
	principals := []float64{1000, 55555, 500000, 1000000, 7654321}
	periods := []int{1, 6, 12, 60, 120, 360}
	rates := []float64{0.5, 3.5, 7.8, 12, 25}

	for _, p := range principals {
		for _, n := range periods {
			for _, r := range rates {
				payment, err := ComputePayment(p, n, r)
				require.NoError(t, err)

				principal, err := ComputePrincipal(n, float64(payment), r)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, float64(principal), p,
					"principal=%v periods=%d rate=%v payment=%d", p, n, r, payment)

				overpayment, err := ComputeOverpayment(p, n, float64(payment))
				require.NoError(t, err)
				assert.GreaterOrEqual(t, overpayment, int64(0))
			}
		}
	}
}
