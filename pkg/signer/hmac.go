package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"hash"
	"time"
)

// Codec signs and verifies keyset-pagination cursors for the catalog and
// comment lists. Both lists page newest-first on (date_added, id).
// Implementations must be safe for concurrent use.
type Codec interface {
	EncodeListCursor(addedAt time.Time, id int64) string
	DecodeListCursor(token string) (time.Time, int64, error)
}

// HMAC implements Codec using HMAC-SHA256 for integrity.
// It encodes payloads as base64 URL without padding.
type HMAC struct {
	key []byte
	h   func() hash.Hash
}

// NewHMAC creates an HMAC signer with the provided secret key.
func NewHMAC(key []byte) *HMAC {
	return &HMAC{key: append([]byte(nil), key...), h: sha256.New}
}

// seal signs the payload and returns a base64url token payload||sig.
func (c *HMAC) seal(payload []byte) string {
	mac := hmac.New(c.h, c.key)
	mac.Write(payload)
	sig := mac.Sum(nil)
	buf := append(payload, sig...)
	return base64.RawURLEncoding.EncodeToString(buf)
}

// open verifies the token and returns the payload bytes.
func (c *HMAC) open(token string, minPayloadLen int) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	if len(raw) < minPayloadLen+32 {
		return nil, errors.New("invalid_cursor_length")
	}
	payload := raw[:len(raw)-32]
	sig := raw[len(raw)-32:]
	mac := hmac.New(c.h, c.key)
	mac.Write(payload)
	expected := mac.Sum(nil)
	if !hmac.Equal(sig, expected) {
		return nil, errors.New("invalid_cursor_signature")
	}
	return payload, nil
}

// List cursor: date_added unix-nanos (int64) + id (int64).
func (c *HMAC) EncodeListCursor(addedAt time.Time, id int64) string {
	payload := make([]byte, 16)
	binary.BigEndian.PutUint64(payload[0:8], uint64(addedAt.UnixNano()))
	binary.BigEndian.PutUint64(payload[8:16], uint64(id))
	return c.seal(payload)
}

func (c *HMAC) DecodeListCursor(token string) (time.Time, int64, error) {
	payload, err := c.open(token, 16)
	if err != nil {
		return time.Time{}, 0, err
	}
	nanos := int64(binary.BigEndian.Uint64(payload[0:8]))
	id := int64(binary.BigEndian.Uint64(payload[8:16]))
	return time.Unix(0, nanos).UTC(), id, nil
}
