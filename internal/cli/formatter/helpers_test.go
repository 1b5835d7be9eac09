package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupiah(t *testing.T) {
	assert.Equal(t, "Rp0", Rupiah(0))
	assert.Equal(t, "Rp2.500", Rupiah(2500))
	assert.Equal(t, "Rp5.000.000", Rupiah(5000000))
	assert.Equal(t, "Rp-1.500", Rupiah(-1500))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))
	assert.Equal(t, "…", Truncate("abcdef", 1))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "dana…", Truncate("dana darurat", 5))
}
