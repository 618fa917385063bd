package crypto

import (
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("unit-test-signing-secret")

// Requirement: a freshly issued token verifies back to the same subject id,
// as many times as it is verified.
func TestSessionCodec_RoundTrip(t *testing.T) {
	// Arrange
	codec := NewSessionCodec(testSecret, time.Hour)

	// Act
	token, err := codec.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Assert
	for i := 0; i < 3; i++ {
		subject, err := codec.Verify(token)
		if err != nil {
			t.Fatalf("Verify() #%d error = %v", i, err)
		}
		if subject != "user-42" {
			t.Errorf("Verify() #%d subject = %q, want %q", i, subject, "user-42")
		}
	}
}

// Requirement: an expired token always fails verification even though its
// signature is intact.
func TestSessionCodec_Expired(t *testing.T) {
	// Arrange: negative TTL issues a token that is already expired
	codec := NewSessionCodec(testSecret, -time.Minute)

	token, err := codec.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Act
	_, err = codec.Verify(token)

	// Assert
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() error = %v, want %v", err, ErrTokenInvalid)
	}
}

// Requirement: altering any byte of the token invalidates the signature.
func TestSessionCodec_Tampered(t *testing.T) {
	// Arrange
	codec := NewSessionCodec(testSecret, time.Hour)
	token, err := codec.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip the last signature byte
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	// Act
	_, err = codec.Verify(string(tampered))

	// Assert
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() error = %v, want %v", err, ErrTokenInvalid)
	}
}

func TestSessionCodec_WrongKey(t *testing.T) {
	issuer := NewSessionCodec([]byte("one-signing-secret-here"), time.Hour)
	verifier := NewSessionCodec([]byte("another-signing-secret"), time.Hour)

	token, err := issuer.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() error = %v, want %v", err, ErrTokenInvalid)
	}
}

func TestSessionCodec_Malformed(t *testing.T) {
	codec := NewSessionCodec(testSecret, time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "wrong segment count", token: "a.b"},
		{name: "unsigned", token: "eyJhbGciOiJub25lIn0.eyJ1aWQiOiJ1c2VyLTQyIn0."},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if _, err := codec.Verify(test.token); !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("Verify(%q) error = %v, want %v", test.token, err, ErrTokenInvalid)
			}
		})
	}
}
