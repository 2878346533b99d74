package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.13, Round2(10.125))
	assert.Equal(t, 10.12, Round2(10.124))
	assert.Equal(t, -3.5, Round2(-3.499))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 70.0, Round1(70.04))
	assert.Equal(t, 33.3, Round1(100.0/3.0))
}

func TestUpdatesFromPtrDTO(t *testing.T) {
	type patch struct {
		Name   *string  `json:"name"`
		Amount *float64 `json:"amount"`
		Hidden *string  `json:"-"`
	}
	name := "Toko Jaya"
	p := patch{Name: &name, Hidden: &name}

	updates := UpdatesFromPtrDTO(&p, nil)
	assert.Equal(t, map[string]any{"name": "Toko Jaya"}, updates)
}

func TestNormalizePtrDTO(t *testing.T) {
	type patch struct {
		Name   *string  `json:"name"`
		Amount *float64 `json:"amount"`
	}
	name := "  padded  "
	amount := 12.345
	p := patch{Name: &name, Amount: &amount}

	NormalizePtrDTO(&p)
	assert.Equal(t, "padded", *p.Name)
	assert.Equal(t, 12.35, *p.Amount)
}

func TestParseDateDefault(t *testing.T) {
	def := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	got := ParseDateDefault("2026-08-14", def)
	assert.Equal(t, time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC), got)

	assert.Equal(t, def, ParseDateDefault("", def))
	assert.Equal(t, def, ParseDateDefault("14/08/2026", def))
}
