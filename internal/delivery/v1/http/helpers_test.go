package http

import (
	"testing"

	"github.com/my-shop/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := map[string]int64{
		"1990.0": 199000,
		"1990":   199000,
		"599.99": 59999,
		"0":      0,
		"0.01":   1,
		" 12.5 ": 1250,
	}

	for input, want := range cases {
		got, err := parsePriceToCents(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParsePriceToCentsRejections(t *testing.T) {
	_, err := parsePriceToCents("")
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = parsePriceToCents("-5")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = parsePriceToCents("12.345")
	assert.ErrorIs(t, err, e.ErrPricePrecision)

	_, err = parsePriceToCents("abc")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = parsePriceToCents("1000000001")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestParseRating(t *testing.T) {
	// Blank form field keeps the catalog default.
	got, err := parseRating("")
	require.NoError(t, err)
	assert.Equal(t, 4.5, got)

	got, err = parseRating("4.7")
	require.NoError(t, err)
	assert.Equal(t, 4.7, got)

	_, err = parseRating("5.1")
	assert.ErrorIs(t, err, e.ErrInvalidRating)

	_, err = parseRating("-1")
	assert.ErrorIs(t, err, e.ErrInvalidRating)

	_, err = parseRating("high")
	assert.ErrorIs(t, err, e.ErrInvalidRating)
}

func TestParseStock(t *testing.T) {
	got, err := parseStock("")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = parseStock("40")
	require.NoError(t, err)
	assert.Equal(t, 40, got)

	_, err = parseStock("-1")
	assert.ErrorIs(t, err, e.ErrInvalidStock)

	_, err = parseStock("2.5")
	assert.ErrorIs(t, err, e.ErrInvalidStock)
}

func TestSanitizeNext(t *testing.T) {
	assert.Equal(t, "/checkout", sanitizeNext("/checkout"))
	assert.Equal(t, "/checkout?x=1", sanitizeNext("/checkout?x=1"))
	assert.Empty(t, sanitizeNext(""))
	assert.Empty(t, sanitizeNext("https://evil.example"))
	assert.Empty(t, sanitizeNext("//evil.example"))
	assert.Empty(t, sanitizeNext("checkout"))
}
