package domain_test

import (
	"testing"

	"github.com/SscSPs/storefront_totals/internal/apperrors"
	"github.com/SscSPs/storefront_totals/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "positive integer", input: "1050", want: 1050},
		{name: "negative integer", input: "-250", want: -250},
		{name: "explicit plus sign", input: "+7", want: 7},
		{name: "surrounding whitespace", input: " 42 ", want: 42},
		{name: "empty is zero", input: "", want: 0},
		{name: "decimal point rejected", input: "10.50", wantErr: true},
		{name: "exponent rejected", input: "1e3", wantErr: true},
		{name: "text rejected", input: "ten", wantErr: true},
		{name: "lone sign rejected", input: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IntPart())
		})
	}
}

func TestParseAmount_BeyondInt64(t *testing.T) {
	got, err := domain.ParseAmount("123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", got.String())
}

func TestFixedPointAmount_RescaleIdentity(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "999999", "123456789"} {
		for _, p := range []int32{0, 2, 6} {
			a, err := domain.ParseFixedPointAmount(s, p)
			require.NoError(t, err)
			assert.True(t, a.Rescale(p).Equal(a), "identity rescale of %s at %d", s, p)
		}
	}
}

func TestFixedPointAmount_UpscaleThenDownscaleIsLossless(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 1050, -987654321} {
		a := domain.NewFixedPointAmount(v, 2)
		up := a.Rescale(6)
		assert.Equal(t, v*10_000, up.Int64())
		assert.True(t, up.Rescale(2).Equal(a), "round trip of %d", v)
	}
}

func TestFixedPointAmount_DownscaleTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		amount int64
		want   int64
	}{
		{amount: 12_345_678, want: 1234},
		{amount: 12_349_999, want: 1234},
		{amount: -12_349_999, want: -1234},
		{amount: 9_999, want: 0},
	}
	for _, tt := range tests {
		got := domain.NewFixedPointAmount(tt.amount, 6).Rescale(2)
		assert.Equal(t, tt.want, got.Int64(), "rescale %d", tt.amount)
		assert.Equal(t, int32(2), got.Precision())
	}
}

func TestFixedPointAmount_DownscaleHalfEven(t *testing.T) {
	tests := []struct {
		amount int64
		want   int64
	}{
		{amount: 12_345_000, want: 1234},
		{amount: 12_355_000, want: 1236},
		{amount: 12_345_001, want: 1235},
		{amount: -12_355_000, want: -1236},
	}
	for _, tt := range tests {
		got := domain.NewFixedPointAmount(tt.amount, 6).RescaleWith(2, domain.RoundHalfEven)
		assert.Equal(t, tt.want, got.Int64(), "rescale %d", tt.amount)
	}
}

func TestFixedPointAmount_ArithmeticAtSharedPrecision(t *testing.T) {
	a := domain.NewFixedPointAmount(1000, 2)
	b := domain.NewFixedPointAmount(800, 2)

	assert.Equal(t, int64(200), a.Subtract(b).Int64())
	assert.Equal(t, int64(1800), a.Add(b).Int64())
	assert.Equal(t, int64(-1000), a.Negate().Int64())
	assert.True(t, a.Subtract(a).IsZero())
}

func TestFixedPointAmount_MixedPrecisionUsesLower(t *testing.T) {
	display := domain.NewFixedPointAmount(500, 2)
	raw := domain.NewFixedPointAmount(1_239_999, 6)

	sum := display.Add(raw)
	assert.Equal(t, int32(2), sum.Precision())
	assert.Equal(t, int64(623), sum.Int64())

	diff := raw.Subtract(display)
	assert.Equal(t, int32(2), diff.Precision())
	assert.Equal(t, int64(-377), diff.Int64())
}

func TestFixedPointAmount_MultiplyByQuantity(t *testing.T) {
	a := domain.NewFixedPointAmount(200, 2)

	got, err := a.MultiplyByQuantity(3)
	require.NoError(t, err)
	assert.Equal(t, int64(600), got.Int64())

	_, err = a.MultiplyByQuantity(0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)

	_, err = a.MultiplyByQuantity(-2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)
}

func TestFixedPointAmount_SaleAmount(t *testing.T) {
	regular, err := domain.ParseFixedPointAmount("1000", 2)
	require.NoError(t, err)
	purchase, err := domain.ParseFixedPointAmount("800", 2)
	require.NoError(t, err)

	sale, err := regular.Subtract(purchase).MultiplyByQuantity(3)
	require.NoError(t, err)

	usd := domain.Currency{Code: "USD", MinorUnit: 2}
	assert.Equal(t, int64(600), sale.ToDisplayMinorUnit(usd))
	assert.True(t, sale.Decimal().Equal(decimal.RequireFromString("6")))
}

func TestFixedPointAmount_ToDisplayMinorUnit(t *testing.T) {
	raw := domain.NewFixedPointAmount(19_990_000, 6)

	assert.Equal(t, int64(1999), raw.ToDisplayMinorUnit(domain.Currency{MinorUnit: 2}))
	assert.Equal(t, int64(19), raw.ToDisplayMinorUnit(domain.Currency{MinorUnit: 0}))
	assert.Equal(t, int64(19990), raw.ToDisplayMinorUnit(domain.Currency{MinorUnit: 3}))
}

func TestParseRoundingMode(t *testing.T) {
	mode, err := domain.ParseRoundingMode("")
	require.NoError(t, err)
	assert.Equal(t, domain.RoundTruncate, mode)

	mode, err = domain.ParseRoundingMode("HALF_EVEN")
	require.NoError(t, err)
	assert.Equal(t, domain.RoundHalfEven, mode)
	assert.Equal(t, "half_even", mode.String())

	_, err = domain.ParseRoundingMode("up")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
