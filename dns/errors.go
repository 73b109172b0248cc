package dns

import "errors"

// Sentinel errors returned by the wire-format codec. InsufficientData is
// the only one a streaming caller should treat as "retry once more bytes
// arrive" — everything else is terminal for the packet being parsed.
var (
	// ErrInsufficientData means a read would cross the end of the input.
	ErrInsufficientData = errors.New("dns: insufficient data")

	// ErrInvalidPacket covers structural violations: reserved header bits
	// set, a compression loop, a name or rdata length overflow, an
	// invalid LOC version, and similar malformed-but-not-truncated input.
	ErrInvalidPacket = errors.New("dns: invalid packet")

	// ErrInvalidHeader means the 12-byte header itself is malformed.
	ErrInvalidHeader = errors.New("dns: invalid header")

	// ErrInvalidCharacterString means a character-string's length byte
	// would make it exceed 255 bytes.
	ErrInvalidCharacterString = errors.New("dns: invalid character-string")

	// ErrInvalidServiceName means a Name built from text violates the
	// label-count or total-length limits.
	ErrInvalidServiceName = errors.New("dns: invalid service name")

	// ErrInvalidServiceLabel means a single label is empty or longer
	// than 63 bytes. Label bytes are not checked against any character
	// syntax.
	ErrInvalidServiceLabel = errors.New("dns: invalid service label")

	// ErrInvalidUTF8String names an invalid UTF-8 character string. No
	// function in this package returns it: CharacterString.String does
	// not check UTF-8.
	ErrInvalidUTF8String = errors.New("dns: invalid utf8 string")

	// ErrAttemptedInvalidOperation covers sequenced-builder ordering
	// violations and invalid sum-variant combinations (e.g. an IPSECKEY
	// gateway type that disagrees with the supplied gateway value).
	ErrAttemptedInvalidOperation = errors.New("dns: attempted invalid operation")

	// ErrFailedToWrite means the output sink refused bytes.
	ErrFailedToWrite = errors.New("dns: failed to write")
)

// InvalidClassError is returned where a closed class enum is required
// and the wire value is outside the known set.
type InvalidClassError uint16

func (e InvalidClassError) Error() string {
	return "dns: invalid class " + uitoa(uint16(e))
}

// InvalidQClassError is the QCLASS analogue of InvalidClassError.
type InvalidQClassError uint16

func (e InvalidQClassError) Error() string {
	return "dns: invalid qclass " + uitoa(uint16(e))
}

// InvalidQTypeError is the QTYPE analogue of InvalidClassError.
type InvalidQTypeError uint16

func (e InvalidQTypeError) Error() string {
	return "dns: invalid qtype " + uitoa(uint16(e))
}

func uitoa(v uint16) string {
	if v == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
