package document

import (
	"bytes"
	"errors"
	"testing"
)

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New("empty.pdf", nil)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestCheckSize_RejectsOversized(t *testing.T) {
	src := &Source{Name: "big.bin", Data: bytes.Repeat([]byte("x"), 1024)}
	err := src.CheckSize(512)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestNew_SniffsMIMEType(t *testing.T) {
	src, err := New("doc.pdf", []byte("%PDF-1.4 fake body"))
	if err != nil {
		t.Fatal(err)
	}
	if src.MIMEType != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", src.MIMEType)
	}
}

func TestKey_DeterministicPerContentAndMIME(t *testing.T) {
	a, err := New("a.txt", []byte("same bytes"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("b.txt", []byte("same bytes"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Key() != b.Key() {
		t.Error("identical content and MIME type must share one key")
	}

	c, err := New("c.txt", []byte("different bytes"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Key() == c.Key() {
		t.Error("different content must not collide")
	}
}
