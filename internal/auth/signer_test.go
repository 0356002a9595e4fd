package auth

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/iyzisub/client-go/internal/apierrors"
)

// fixedSigner returns a signer whose clock and entropy are pinned, producing
// the random key "1700000000000123456".
func fixedSigner() *Signer {
	return NewSigner(
		WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
		WithEntropy(func() int { return 123456 }),
	)
}

func TestSign_KnownVector(t *testing.T) {
	// HMAC-SHA256 test vector from RFC 4231, test case 2. The three inputs
	// concatenate to the vector's data string.
	got := Sign("Jefe", "what do ya ", "want for ", "nothing?")
	want := "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"
	if got != want {
		t.Errorf("Sign() = %s, want %s", got, want)
	}
}

func TestSigner_Generate_Deterministic(t *testing.T) {
	signer := fixedSigner()

	first, err := signer.Generate("key", "secret", "/v2/subscription/products", `{"name":"pro"}`)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := signer.Generate("key", "secret", "/v2/subscription/products", `{"name":"pro"}`)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if first.Authorization != second.Authorization {
		t.Error("fixed clock and entropy should produce identical headers")
	}
	if first.RandomKey != "1700000000000123456" {
		t.Errorf("RandomKey = %s, want 1700000000000123456", first.RandomKey)
	}
}

func TestSigner_Generate_HeaderStructure(t *testing.T) {
	signer := fixedSigner()

	hdrs, err := signer.Generate("my-api-key", "my-secret", "/v2/subscription/products", `{"name":"pro"}`)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !strings.HasPrefix(hdrs.Authorization, "IYZWSv2 ") {
		t.Fatalf("Authorization = %q, want IYZWSv2 prefix", hdrs.Authorization)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(hdrs.Authorization, "IYZWSv2 "))
	if err != nil {
		t.Fatalf("decode authorization payload: %v", err)
	}

	// The signature is an HMAC over randomKey + path + body with no
	// delimiters. Recompute it from the explicit concatenation to pin the
	// payload assembly order.
	wantSig := Sign("my-secret", "1700000000000123456", "/v2/subscription/products", `{"name":"pro"}`)
	wantAuth := "apiKey:my-api-key&randomKey:1700000000000123456&signature:" + wantSig
	if string(decoded) != wantAuth {
		t.Errorf("decoded authorization = %q, want %q", decoded, wantAuth)
	}

	if hdrs.Signature != wantSig {
		t.Errorf("Signature = %s, want %s", hdrs.Signature, wantSig)
	}
	if len(hdrs.Signature) != 64 {
		t.Errorf("signature length = %d, want 64 hex chars", len(hdrs.Signature))
	}
}

func TestSigner_Generate_SignatureVariesWithInputs(t *testing.T) {
	signer := fixedSigner()

	base, _ := signer.Generate("key", "secret", "/v2/subscription/products", `{"a":1}`)

	tests := []struct {
		name           string
		apiKey, secret string
		path, body     string
		wantNewSig     bool
	}{
		{"different body", "key", "secret", "/v2/subscription/products", `{"a":2}`, true},
		{"different path", "key", "secret", "/v2/subscription/customers", `{"a":1}`, true},
		{"different secret", "key", "other", "/v2/subscription/products", `{"a":1}`, true},
		{"different api key only", "key2", "secret", "/v2/subscription/products", `{"a":1}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hdrs, err := signer.Generate(tt.apiKey, tt.secret, tt.path, tt.body)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			changed := hdrs.Signature != base.Signature
			if changed != tt.wantNewSig {
				t.Errorf("signature changed = %v, want %v", changed, tt.wantNewSig)
			}
		})
	}
}

func TestSigner_Generate_Validation(t *testing.T) {
	signer := fixedSigner()

	tests := []struct {
		name      string
		apiKey    string
		secretKey string
		path      string
		wantField string
	}{
		{"missing api key", "", "secret", "/v2/subscription/products", "apiKey"},
		{"missing secret key", "key", "", "/v2/subscription/products", "secretKey"},
		{"relative path", "key", "secret", "v2/subscription/products", "path"},
		{"path with query", "key", "secret", "/v2/subscription/products?page=1", "path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signer.Generate(tt.apiKey, tt.secretKey, tt.path, "")
			if err == nil {
				t.Fatal("expected error")
			}
			var cfgErr *apierrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %T", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestSigner_Generate_FreshRandomKeyPerCall(t *testing.T) {
	entropy := 100000
	signer := NewSigner(
		WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
		WithEntropy(func() int {
			entropy++
			return entropy
		}),
	)

	first, _ := signer.Generate("key", "secret", "/v2/subscription/products", "")
	second, _ := signer.Generate("key", "secret", "/v2/subscription/products", "")

	if first.RandomKey == second.RandomKey {
		t.Error("each call should draw fresh entropy")
	}
	if first.Authorization == second.Authorization {
		t.Error("fresh random keys should produce different authorization headers")
	}
}

func TestSigner_DefaultEntropyBounds(t *testing.T) {
	signer := NewSigner(WithClock(func() time.Time { return time.UnixMilli(1700000000000) }))
	millis := "1700000000000"

	for i := 0; i < 200; i++ {
		key := signer.randomKey()
		if len(key) != len(millis)+6 {
			t.Fatalf("randomKey length = %d, want %d", len(key), len(millis)+6)
		}
		suffix, err := strconv.Atoi(key[len(millis):])
		if err != nil {
			t.Fatalf("entropy suffix not numeric: %v", err)
		}
		if suffix < 100000 || suffix > 999999 {
			t.Fatalf("entropy suffix %d out of range", suffix)
		}
	}
}

func BenchmarkSigner_Generate(b *testing.B) {
	signer := NewSigner()
	body := `{"name":"premium","conversationId":"cid-1"}`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = signer.Generate("key", "secret", "/v2/subscription/products", body)
	}
}
