package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCpf(t *testing.T, raw string) Cpf {
	t.Helper()
	cpf, err := ParseCpf(raw)
	require.NoError(t, err)
	return cpf
}

func TestNewClient(t *testing.T) {
	cpf := mustCpf(t, "529.982.247-25")

	c, err := NewClient(" Maria Silva ", "maria@example.com ", cpf)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", c.Name)
	assert.Equal(t, "maria@example.com", c.Email)
	assert.Equal(t, "52998224725", c.Cpf.String())

	_, err = NewClient("Maria", "maria@example.com", Cpf{})
	assert.ErrorIs(t, err, ErrInvalidCpf)

	_, err = NewClient(" ", "maria@example.com", cpf)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewClient("Maria", "", cpf)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestClient_Update(t *testing.T) {
	advance := freezeClock(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	c, err := NewClient("Maria", "maria@example.com", mustCpf(t, "52998224725"))
	require.NoError(t, err)

	advance(time.Hour)
	require.NoError(t, c.Update("Maria Souza", "souza@example.com"))
	assert.Equal(t, "Maria Souza", c.Name)
	assert.Equal(t, "souza@example.com", c.Email)
	assert.True(t, c.UpdatedAt.After(c.CreatedAt))
	assert.Equal(t, "52998224725", c.Cpf.String())

	assert.ErrorIs(t, c.Update("", "x@example.com"), ErrInvalidName)
	assert.Equal(t, "Maria Souza", c.Name)
}
