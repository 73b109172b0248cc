package dns

import (
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"github.com/dchest/siphash"
)

// DNS Cookie wire sizes and the server-cookie envelope (RFC 7873 §4,
// RFC 9018 §3 for the version/timestamp/hash shape), grounded on the
// secret-rotation design of internal/cookie/cookie.go.
const (
	clientCookieSize      = 8
	serverCookieMinSize   = 8
	serverCookieMaxSize   = 32
	cookieVersion         = 1
	serverCookieValidFor  = 1 * time.Hour
	secretRotationInterval = 24 * time.Hour
)

// Cookie-related errors (RFC 7873 §5.2).
var (
	ErrInvalidCookie       = errors.New("dns: invalid cookie")
	ErrInvalidClientCookie = errors.New("dns: invalid client cookie length")
	ErrInvalidServerCookie = errors.New("dns: invalid server cookie length")
	ErrExpiredCookie       = errors.New("dns: expired server cookie")
	ErrBadCookie           = errors.New("dns: server cookie hash mismatch")
)

// Cookie is a decoded EDNS(0) COOKIE option: an always-present 8-byte
// client cookie and an optional 8-32 byte server cookie.
type Cookie struct {
	Client ClientCookie
	Server []byte
}

// ClientCookie is the client-generated half of a DNS Cookie.
type ClientCookie [clientCookieSize]byte

func (c Cookie) encode() []byte {
	out := make([]byte, clientCookieSize+len(c.Server))
	copy(out, c.Client[:])
	copy(out[clientCookieSize:], c.Server)
	return out
}

// decodeCookie parses an option's raw bytes per RFC 7873 §4: exactly 8
// bytes (client only) or 16-40 bytes (client + 8-32 byte server cookie).
func decodeCookie(data []byte) (Cookie, error) {
	if len(data) == clientCookieSize {
		var ck Cookie
		copy(ck.Client[:], data)
		return ck, nil
	}
	if len(data) < clientCookieSize+serverCookieMinSize || len(data) > clientCookieSize+serverCookieMaxSize {
		return Cookie{}, ErrInvalidCookie
	}
	var ck Cookie
	copy(ck.Client[:], data[:clientCookieSize])
	ck.Server = append([]byte(nil), data[clientCookieSize:]...)
	return ck, nil
}

// Manager mints and validates server cookies against a rotating
// siphash secret, mirroring internal/cookie/cookie.go's secret
// lifecycle: the current secret signs new cookies, the previous one
// is still accepted for one more rotation interval so in-flight
// cookies don't suddenly start failing right after a rotation.
type Manager struct {
	mu             sync.RWMutex
	currentSecret  [16]byte
	previousSecret [16]byte
	secretTime     time.Time
	enabled        bool
	requireValid   bool
}

// NewManager returns a Manager whose initial secret is seed itself, so
// callers supply the randomness without this package reaching into
// crypto/rand itself (the dns
// package performs no I/O of its own, consistent with the packet
// codec having no side effects).
func NewManager(seed [16]byte, requireValid bool) *Manager {
	return &Manager{
		currentSecret: seed,
		secretTime:    time.Unix(0, 0),
		enabled:       true,
		requireValid:  requireValid,
	}
}

// RotateSecret installs a new current secret, demoting the old one to
// previous. now is supplied by the caller (the dns package never reads
// the clock itself).
func (m *Manager) RotateSecret(next [16]byte, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.previousSecret = m.currentSecret
	m.currentSecret = next
	m.secretTime = now
}

// ShouldRotate reports whether now is far enough past the last
// rotation that the caller should call RotateSecret again.
func (m *Manager) ShouldRotate(now time.Time) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return now.Sub(m.secretTime) >= secretRotationInterval
}

// Mint produces a server cookie for clientCookie as seen from addr,
// using the current secret. Layout: version(1) reserved(3) timestamp(4)
// hash(8), per RFC 9018 §3.
func (m *Manager) Mint(client ClientCookie, addr []byte, now time.Time) []byte {
	m.mu.RLock()
	secret := m.currentSecret
	m.mu.RUnlock()
	return m.mintWith(client, addr, now, secret)
}

func (m *Manager) mintWith(client ClientCookie, addr []byte, now time.Time, secret [16]byte) []byte {
	out := make([]byte, 16)
	out[0] = cookieVersion
	binary.BigEndian.PutUint32(out[4:8], uint32(now.Unix()))
	h := hashCookie(secret, client, out[:8], addr)
	copy(out[8:16], h[:])
	return out
}

// Validate checks a server cookie minted by Mint against both the
// current and previous secrets, rejecting cookies whose timestamp has
// aged past serverCookieValidFor.
func (m *Manager) Validate(client ClientCookie, server []byte, addr []byte, now time.Time) error {
	if len(server) != 16 {
		return ErrInvalidServerCookie
	}
	if server[0] != cookieVersion {
		return ErrBadCookie
	}
	ts := time.Unix(int64(binary.BigEndian.Uint32(server[4:8])), 0)
	if now.Sub(ts) > serverCookieValidFor || ts.After(now.Add(5*time.Minute)) {
		return ErrExpiredCookie
	}

	m.mu.RLock()
	current, previous := m.currentSecret, m.previousSecret
	m.mu.RUnlock()

	for _, secret := range [][16]byte{current, previous} {
		h := hashCookie(secret, client, server[:8], addr)
		if hmacEqual(h[:], server[8:16]) {
			return nil
		}
	}
	return ErrBadCookie
}

func hashCookie(secret [16]byte, client ClientCookie, prefix []byte, addr []byte) [8]byte {
	k0 := binary.LittleEndian.Uint64(secret[0:8])
	k1 := binary.LittleEndian.Uint64(secret[8:16])
	buf := make([]byte, 0, clientCookieSize+8+len(addr))
	buf = append(buf, client[:]...)
	buf = append(buf, prefix...)
	buf = append(buf, addr...)
	sum := siphash.Hash(k0, k1, buf)
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], sum)
	return out
}

// hmacEqual is a constant-time byte comparison, used so cookie
// validation doesn't leak timing information about the expected hash.
func hmacEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
