package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(testKey)
	require.NoError(t, err)
	return c
}

func TestNewCodec_RejectsBadKeys(t *testing.T) {
	_, err := NewCodec("not-hex")
	assert.Error(t, err)

	_, err = NewCodec("abcd")
	assert.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t)

	for _, plaintext := range []string{
		"secret-token",
		"",
		`{"refreshToken":"1//0abc","accessToken":"ya29.x"}`,
		"zażółć gęślą jaźń",
	} {
		blob, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotContains(t, blob, plaintext)

		got, err := c.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestCodec_FreshIVPerCall(t *testing.T) {
	c := newTestCodec(t)

	a, err := c.Encrypt("same input")
	require.NoError(t, err)
	b, err := c.Encrypt("same input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCodec_TamperedBlob(t *testing.T) {
	c := newTestCodec(t)

	blob, err := c.Encrypt("secret-token")
	require.NoError(t, err)

	// Flip a character inside the ciphertext section.
	parts := strings.Split(blob, ":")
	ct := []byte(parts[1])
	if ct[0] == 'A' {
		ct[0] = 'B'
	} else {
		ct[0] = 'A'
	}
	parts[1] = string(ct)

	_, err = c.Decrypt(strings.Join(parts, ":"))
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestCodec_WrongKey(t *testing.T) {
	c := newTestCodec(t)
	blob, err := c.Encrypt("secret-token")
	require.NoError(t, err)

	other, err := NewCodec("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	require.NoError(t, err)

	_, err = other.Decrypt(blob)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestCodec_MalformedBlob(t *testing.T) {
	c := newTestCodec(t)

	for _, blob := range []string{
		"",
		"not-a-blob",
		"only:two",
		"a:b:c:d",
		"!!!:AAAA:AAAA",
	} {
		_, err := c.Decrypt(blob)
		assert.ErrorIs(t, err, ErrDecrypt, "blob %q", blob)
	}
}
