package dns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieEncodeDecodeClientOnly(t *testing.T) {
	ck := Cookie{Client: ClientCookie{1, 2, 3, 4, 5, 6, 7, 8}}
	decoded, err := decodeCookie(ck.encode())
	require.NoError(t, err)
	assert.Equal(t, ck.Client, decoded.Client)
	assert.Empty(t, decoded.Server)
}

func TestCookieDecodeRejectsBadLength(t *testing.T) {
	_, err := decodeCookie(make([]byte, 9))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestManagerMintAndValidate(t *testing.T) {
	m := NewManager([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, true)
	client := ClientCookie{9, 9, 9, 9, 9, 9, 9, 9}
	addr := []byte{192, 0, 2, 1}
	now := time.Unix(1_700_000_000, 0)

	server := m.Mint(client, addr, now)
	require.NoError(t, m.Validate(client, server, addr, now.Add(time.Minute)))
}

func TestManagerValidateRejectsExpired(t *testing.T) {
	m := NewManager([16]byte{1}, true)
	client := ClientCookie{1, 1, 1, 1, 1, 1, 1, 1}
	addr := []byte{10, 0, 0, 1}
	now := time.Unix(1_700_000_000, 0)

	server := m.Mint(client, addr, now)
	err := m.Validate(client, server, addr, now.Add(2*time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiredCookie)
}

func TestManagerValidateAcceptsPreviousSecretAfterRotation(t *testing.T) {
	m := NewManager([16]byte{1}, true)
	client := ClientCookie{2, 2, 2, 2, 2, 2, 2, 2}
	addr := []byte{10, 0, 0, 2}
	now := time.Unix(1_700_000_000, 0)

	server := m.Mint(client, addr, now)
	m.RotateSecret([16]byte{2}, now)

	require.NoError(t, m.Validate(client, server, addr, now.Add(time.Minute)))
}

func TestManagerValidateRejectsTamperedHash(t *testing.T) {
	m := NewManager([16]byte{1}, true)
	client := ClientCookie{3, 3, 3, 3, 3, 3, 3, 3}
	addr := []byte{10, 0, 0, 3}
	now := time.Unix(1_700_000_000, 0)

	server := m.Mint(client, addr, now)
	server[15] ^= 0xFF

	err := m.Validate(client, server, addr, now.Add(time.Minute))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadCookie)
}
