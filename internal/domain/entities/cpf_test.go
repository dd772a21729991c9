package entities

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCpf(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "digits only", raw: "52998224725", want: "52998224725", ok: true},
		{name: "formatted", raw: "529.982.247-25", want: "52998224725", ok: true},
		{name: "surrounding noise", raw: "  529 982 247 / 25 ", want: "52998224725", ok: true},
		{name: "second check digit zero", raw: "987.654.321-00", want: "98765432100", ok: true},
		{name: "leading zeros", raw: "000.000.019-10", want: "00000001910", ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "too short", raw: "5299822472", ok: false},
		{name: "too long", raw: "529982247250", ok: false},
		{name: "wrong first check digit", raw: "52998224735", ok: false},
		{name: "wrong second check digit", raw: "52998224726", ok: false},
		{name: "letters only", raw: "abcdefghijk", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cpf, err := ParseCpf(tc.raw)
			if !tc.ok {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCpf))
				assert.True(t, errors.Is(err, ErrValidation))
				assert.True(t, cpf.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cpf.String())
		})
	}
}

func TestParseCpf_RepeatedDigitsAreRejected(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		raw := strings.Repeat(string(d), 11)
		_, err := ParseCpf(raw)
		assert.ErrorIs(t, err, ErrInvalidCpf, raw)
	}
}

func TestParseCpf_GeneratedValidNumbersRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		base := make([]byte, 9)
		for j := range base {
			base[j] = byte('0' + rng.Intn(10))
		}
		d1 := cpfCheckDigit(string(base), 10)
		d2 := cpfCheckDigit(string(base)+strconv.Itoa(d1), 11)
		digits := string(base) + strconv.Itoa(d1) + strconv.Itoa(d2)
		if strings.Count(digits, digits[:1]) == 11 {
			continue
		}

		cpf, err := ParseCpf(digits)
		require.NoError(t, err, digits)
		assert.Equal(t, digits, cpf.String())

		again, err := ParseCpf(cpf.Formatted())
		require.NoError(t, err)
		assert.Equal(t, cpf, again)
	}
}

func TestCpf_Formatted(t *testing.T) {
	cpf, err := ParseCpf("52998224725")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", cpf.Formatted())
	assert.Equal(t, "", Cpf{}.Formatted())
}
