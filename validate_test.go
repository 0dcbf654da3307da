package cookbook

import (
	"strings"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputControlRatio(t *testing.T) {
	text := strings.Repeat("a", 98)
	if err := ValidateInput([]byte(text + "\x01\x02")); err != ErrBinaryInput {
		t.Fatalf("2%% control bytes: expected ErrBinaryInput, got %v", err)
	}
	if err := ValidateInput([]byte(text + "a\x01")); err != nil {
		t.Fatalf("1%% control bytes: unexpected %v", err)
	}
	if err := ValidateInput([]byte("short\x01")); err != nil {
		t.Fatalf("short sample: unexpected %v", err)
	}
}

func TestValidateInputAcceptsText(t *testing.T) {
	src := "Title\r\n=====\r\n\tindented\fform feed\vtab\n" + strings.Repeat("ü", 40)
	if err := ValidateInput([]byte(src)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
