package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.True(t, Email("a@b.com"))
	assert.True(t, Email("first.last-name@sub.domain.org"))
	assert.False(t, Email("not-an-email"))
	assert.False(t, Email("missing@tld"))
	assert.False(t, Email("a@b.com extra"), "pattern must be anchored")
	assert.False(t, Email(""))
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone("1123456789"), "10 digits")
	assert.True(t, Phone("11912345678"), "11 digits")
	assert.True(t, Phone("(11) 91234-5678"), "formatting stripped")
	assert.False(t, Phone("123"))
	assert.False(t, Phone("119123456789"), "12 digits")
	assert.False(t, Phone(""))
}

func TestNationalID(t *testing.T) {
	assert.True(t, NationalID("52998224725"), "known valid checksum")
	assert.True(t, NationalID("529.982.247-25"), "formatting stripped")
	assert.False(t, NationalID("52998224724"), "check digit off by one")
	assert.False(t, NationalID("11111111111"), "repeated digits")
	assert.False(t, NationalID("00000000000"), "repeated digits")
	assert.False(t, NationalID("5299822472"), "too short")
	assert.False(t, NationalID("529982247250"), "too long")
	assert.False(t, NationalID(""))
}

func TestTaxID(t *testing.T) {
	assert.True(t, TaxID("52998224725"), "CPF accepted")
	assert.True(t, TaxID("11222333000181"), "known valid CNPJ")
	assert.True(t, TaxID("11.222.333/0001-81"), "formatting stripped")
	assert.False(t, TaxID("11222333000182"), "CNPJ check digit off by one")
	assert.False(t, TaxID("11111111111111"), "repeated digits")
	assert.False(t, TaxID("1122233300018"), "13 digits")
	assert.False(t, TaxID(""))
}
