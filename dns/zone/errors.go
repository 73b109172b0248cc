package zone

import "errors"

// Sentinel errors for the master-file tokenizer and parser. These
// never wrap or propagate a dns package wire-format error (the
// two codecs' error domains stay separate) — a zone file is text from
// end to end until a Record is produced.
var (
	ErrUnexpectedEndOfInput    = errors.New("zone: unexpected end of input")
	ErrUnbalancedParens        = errors.New("zone: unbalanced parentheses")
	ErrUnterminatedQuote       = errors.New("zone: unterminated quoted string")
	ErrInvalidToken            = errors.New("zone: invalid token")
	ErrFileAccess              = errors.New("zone: file access error")
	ErrMissingDefaultedInfo    = errors.New("zone: missing owner name, class, or TTL with no default available")
	ErrUnsupportedRecord       = errors.New("zone: unsupported record type")
)
