package amount

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		input    string
		expected Amount
	}{
		{"1.0", 10000},
		{"21.001", 210010},
		{"1323.3434", 13233434},
		{"233", 2330000},
		{"-233.01", -2330100},
		{"-233", -2330000},
		{"0", 0},
		{"", 0},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		".0",
		"A",
		"1.3434.233",
		".3434.233",
		"a.233",
		"1.23456", // more than four fractional digits is rejected, not truncated
		"1,5",
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestParseOverflow(t *testing.T) {
	_, err := Parse("999999999999999999999999999999999999999999999999999999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAdd(t *testing.T) {
	t.Run("adds amounts", func(t *testing.T) {
		got, err := Amount(10000).Add(Amount(2500))
		require.NoError(t, err)
		assert.Equal(t, Amount(12500), got)
	})

	t.Run("detects positive overflow", func(t *testing.T) {
		_, err := Amount(math.MaxInt64).Add(1)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("detects negative overflow", func(t *testing.T) {
		_, err := Amount(math.MinInt64).Add(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestSub(t *testing.T) {
	t.Run("subtracts amounts", func(t *testing.T) {
		got, err := Amount(10000).Sub(Amount(2500))
		require.NoError(t, err)
		assert.Equal(t, Amount(7500), got)
	})

	t.Run("may go negative", func(t *testing.T) {
		got, err := Amount(10000).Sub(Amount(60000))
		require.NoError(t, err)
		assert.Equal(t, Amount(-50000), got)
	})

	t.Run("detects overflow", func(t *testing.T) {
		_, err := Amount(math.MinInt64).Sub(1)
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = Amount(math.MaxInt64).Sub(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Amount Amount `json:"amount"`
	}

	data, err := json.Marshal(payload{Amount: 210010})
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"21.0010"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Amount(210010), decoded.Amount)

	assert.Error(t, json.Unmarshal([]byte(`{"amount":"1.23456"}`), &decoded))
}

func TestString(t *testing.T) {
	cases := []struct {
		input    Amount
		expected string
	}{
		{10000, "1.0000"},
		{210010, "21.0010"},
		{13233434, "1323.3434"},
		{2330200, "233.0200"},
		{0, "0.0000"},
		{-50000, "-5.0000"},
		{-1, "-0.0001"},
		{25, "0.0025"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.input.String())
	}
}
