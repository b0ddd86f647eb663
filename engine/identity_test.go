package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedID(t *testing.T) {
	m := Month{Year: 2024, Mon: time.May}

	assert.Equal(t, "gen_card_招商银行_2024-05", InvoiceID("招商银行", m))
	assert.Equal(t, "gen_tithe_2024-05", TitheID(m))

	// 纯函数：同样输入永远得到同一个 id
	assert.Equal(t, InvoiceID("招商银行", m), InvoiceID("招商银行", m))
}

func TestIsGeneratedID(t *testing.T) {
	assert.True(t, IsGeneratedID("gen_tithe_2024-03"))
	assert.True(t, IsGeneratedID("gen_card_工商银行_2024-03"))
	assert.False(t, IsGeneratedID("8b0e2a54-7a3f-4a5c-9d3f-000000000000"))
	assert.False(t, IsGeneratedID(""))
}

func TestNewManualID(t *testing.T) {
	a := NewManualID()
	b := NewManualID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.False(t, IsGeneratedID(a))
}
