package signer

import (
	"encoding/base64"
	"testing"
	"time"
)

func TestListCursorRoundTrip(t *testing.T) {
	c := NewHMAC([]byte("secret"))
	added := time.Date(2024, 3, 15, 10, 30, 0, 123456789, time.UTC)

	tok := c.EncodeListCursor(added, 42)
	gotTime, gotID, err := c.DecodeListCursor(tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !gotTime.Equal(added) {
		t.Fatalf("time mismatch: want %v, got %v", added, gotTime)
	}
	if gotID != 42 {
		t.Fatalf("id mismatch: want 42, got %d", gotID)
	}
}

func TestListCursorTamperedSignature(t *testing.T) {
	c := NewHMAC([]byte("secret"))
	tok := c.EncodeListCursor(time.Now(), 7)

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	raw[0] ^= 0xff
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	if _, _, err := c.DecodeListCursor(tampered); err == nil {
		t.Fatal("tampered cursor must not decode")
	}
}

func TestListCursorWrongKey(t *testing.T) {
	tok := NewHMAC([]byte("key-a")).EncodeListCursor(time.Now(), 7)
	if _, _, err := NewHMAC([]byte("key-b")).DecodeListCursor(tok); err == nil {
		t.Fatal("cursor signed with another key must not decode")
	}
}

func TestListCursorGarbage(t *testing.T) {
	c := NewHMAC([]byte("secret"))
	for _, tok := range []string{"", "notbase64!!", base64.RawURLEncoding.EncodeToString([]byte("short"))} {
		if _, _, err := c.DecodeListCursor(tok); err == nil {
			t.Fatalf("garbage cursor %q must not decode", tok)
		}
	}
}
