package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glaciome/xcsv/stringtest"
)

func TestLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\nc\n", stringtest.Lines("a", "b", "c"))
	assert.Equal(t, "only\n", stringtest.Lines("only"))
	assert.Equal(t, "\n", stringtest.Lines(""))
}

func TestLinesCRLF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\r\nb\r\n", stringtest.LinesCRLF("a", "b"))
}
