package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteComputesSnapshotTotal(t *testing.T) {
	table := PriceTable{"Beef": 600}

	line, err := Quote(table, "Beef", "3")
	require.NoError(t, err)

	assert.Equal(t, "Beef", line.Name)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 600, line.UnitPrice)
	assert.Equal(t, 1800, line.Total)
}

func TestQuoteAllKnownItems(t *testing.T) {
	table := DefaultPriceTable()

	cases := []struct {
		name  string
		qty   string
		total int
	}{
		{"Beef", "3", 1800},
		{"Chicken", "2", 1600},
		{"Bread", "5", 2000},
	}

	for _, tc := range cases {
		line, err := Quote(table, tc.name, tc.qty)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.total, line.Total, tc.name)
		assert.Equal(t, line.UnitPrice*line.Quantity, line.Total, tc.name)
	}
}

func TestQuoteUnknownItem(t *testing.T) {
	_, err := Quote(DefaultPriceTable(), "Caviar", "1")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestQuoteRejectsBadQuantity(t *testing.T) {
	for _, qty := range []string{"", "abc", "0", "-2", "1.5"} {
		_, err := Quote(DefaultPriceTable(), "Beef", qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %q", qty)
	}
}

func TestQuoteTrimsAndSanitizesName(t *testing.T) {
	line, err := Quote(DefaultPriceTable(), "  Beef  ", "2")
	require.NoError(t, err)
	assert.Equal(t, "Beef", line.Name)
}

func TestSanitizeNameNeutralizesMarkup(t *testing.T) {
	assert.Equal(t, "scriptBeefscript", SanitizeName("<script>Beef</script>"))
	assert.Equal(t, "Beef  stuff", SanitizeName(`Beef & "stuff"`))
	assert.Equal(t, "Bread 2", SanitizeName("  Bread 2\t"))
}
