package encryption

import (
	"encoding/base64"
	"strings"
	"testing"

	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Same format as real keys, never a live credential.
const testSecretKey = "XPSECK-ab12cd34ef56gh78ij90kl12-X"

func TestDeriveKey(t *testing.T) {
	t.Run("Returns 24 Bytes", func(t *testing.T) {
		key, err := DeriveKey(testSecretKey)

		require.NoError(t, err)
		assert.Len(t, key, 24)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := DeriveKey(testSecretKey)
		require.NoError(t, err)
		second, err := DeriveKey(testSecretKey)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Different Secrets Produce Different Keys", func(t *testing.T) {
		keyA, err := DeriveKey("XPSECK-aaaaaaaaaaaaaaaaaaaaaaaa-X")
		require.NoError(t, err)
		keyB, err := DeriveKey("XPSECK-bbbbbbbbbbbbbbbbbbbbbbbb-X")
		require.NoError(t, err)

		assert.NotEqual(t, keyA, keyB)
	})

	t.Run("Known Derivation Fixture", func(t *testing.T) {
		// partA = first 12 chars of the stripped secret, partB = last 12 hex
		// chars of md5("XPSECK-ab12cd34ef56gh78ij90kl12-X") = ...bff149100899
		key, err := DeriveKey(testSecretKey)

		require.NoError(t, err)
		assert.Equal(t, []byte("ab12cd34ef56bff149100899"), key)
	})

	t.Run("Strips Every Prefix Occurrence", func(t *testing.T) {
		// the documented behavior is replace-all, not a single leading strip
		key, err := DeriveKey("XPSECK-ab12XPSECK-cd34ef56gh78ij90kl12")

		require.NoError(t, err)
		assert.Equal(t, []byte("ab12cd34ef56"), key[:12])
	})

	t.Run("Empty Secret Fails", func(t *testing.T) {
		key, err := DeriveKey("")

		require.Error(t, err)
		assert.Nil(t, key)
		assert.Equal(t, constvars.ErrCodeEncryptionEmptySecret, exceptions.ErrorCode(err))
	})

	t.Run("Short Secret Fails", func(t *testing.T) {
		key, err := DeriveKey("XPSECK-short")

		require.Error(t, err)
		assert.Nil(t, key)
		assert.Equal(t, constvars.ErrCodeEncryptionSecretTooShort, exceptions.ErrorCode(err))
	})
}

func TestEncryptPayload(t *testing.T) {
	t.Run("Returns Valid Base64", func(t *testing.T) {
		payload := NewPayload().Set("amount", "1000")

		encrypted, err := EncryptPayload(payload, testSecretKey)

		require.NoError(t, err)
		decoded, err := base64.StdEncoding.DecodeString(encrypted)
		require.NoError(t, err)
		assert.NotEmpty(t, decoded)
	})

	t.Run("Ciphertext Is Multiple Of Block Size", func(t *testing.T) {
		payload := NewPayload().
			Set("amount", "1000").
			Set("email", "test@test.com")

		encrypted, err := EncryptPayload(payload, testSecretKey)

		require.NoError(t, err)
		decoded, err := base64.StdEncoding.DecodeString(encrypted)
		require.NoError(t, err)
		assert.Zero(t, len(decoded)%8)
	})

	t.Run("Different Payloads Produce Different Ciphertext", func(t *testing.T) {
		first, err := EncryptPayload(NewPayload().Set("amount", "1000"), testSecretKey)
		require.NoError(t, err)
		second, err := EncryptPayload(NewPayload().Set("amount", "2000"), testSecretKey)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Empty Payload Encrypts", func(t *testing.T) {
		// "{}" is 2 bytes, padded to one full block with six 0x06 bytes
		encrypted, err := EncryptPayload(NewPayload(), testSecretKey)

		require.NoError(t, err)
		decoded, err := base64.StdEncoding.DecodeString(encrypted)
		require.NoError(t, err)
		assert.Len(t, decoded, 8)
	})

	t.Run("Nil Payload Encrypts As Empty Object", func(t *testing.T) {
		fromNil, err := EncryptPayload(nil, testSecretKey)
		require.NoError(t, err)
		fromEmpty, err := EncryptPayload(NewPayload(), testSecretKey)
		require.NoError(t, err)

		assert.Equal(t, fromEmpty, fromNil)
	})

	t.Run("Known Answer Vectors", func(t *testing.T) {
		// computed with an independent 3DES-ECB implementation
		emptyObject, err := EncryptPayload(NewPayload(), testSecretKey)
		require.NoError(t, err)
		assert.Equal(t, "8GkVtZV6VFg=", emptyObject)

		amount, err := EncryptPayload(NewPayload().Set("amount", "1000"), testSecretKey)
		require.NoError(t, err)
		assert.Equal(t, "HQL/EduicxKnytXqEeUqGBacNWMz8NgZ", amount)
	})

	t.Run("Non Serializable Payload Fails", func(t *testing.T) {
		payload := NewPayload().Set("bad", make(chan int))

		encrypted, err := EncryptPayload(payload, testSecretKey)

		require.Error(t, err)
		assert.Empty(t, encrypted)
		assert.Equal(t, constvars.ErrCodeEncryptionNotSerializable, exceptions.ErrorCode(err))
		assert.Contains(t, err.Error(), "serialize")
	})

	t.Run("Derivation Failure Propagates", func(t *testing.T) {
		encrypted, err := EncryptPayload(NewPayload().Set("amount", "1000"), "XPSECK-short")

		require.Error(t, err)
		assert.Empty(t, encrypted)
		assert.True(t, exceptions.IsEncryptionError(err))
	})
}

func TestDecryptPayload(t *testing.T) {
	t.Run("Round Trip Recovers Canonical Bytes", func(t *testing.T) {
		payload := NewPayload().
			Set("publicKey", "XPPUBK-test").
			Set("amount", "2500.50").
			Set("meta", []map[string]string{{"orderId": "ORDER-001"}})

		encrypted, err := EncryptPayload(payload, testSecretKey)
		require.NoError(t, err)

		plaintext, err := DecryptPayload(encrypted, testSecretKey)
		require.NoError(t, err)
		assert.Equal(t, `{"publicKey":"XPPUBK-test","amount":"2500.50","meta":[{"orderId":"ORDER-001"}]}`, string(plaintext))
	})

	t.Run("Empty Object Round Trip", func(t *testing.T) {
		encrypted, err := EncryptPayload(NewPayload(), testSecretKey)
		require.NoError(t, err)

		plaintext, err := DecryptPayload(encrypted, testSecretKey)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(plaintext))
	})

	t.Run("Wrong Key Fails Padding Check", func(t *testing.T) {
		encrypted, err := EncryptPayload(NewPayload().Set("amount", "1000"), testSecretKey)
		require.NoError(t, err)

		plaintext, err := DecryptPayload(encrypted, "XPSECK-zz99yy88xx77ww66vv55uu44-X")

		// a wrong key almost always garbles the padding byte; either way the
		// recovered bytes must never match silently
		if err == nil {
			assert.NotEqual(t, `{"amount":"1000"}`, string(plaintext))
		} else {
			assert.Equal(t, constvars.ErrCodeEncryptionCipherFailure, exceptions.ErrorCode(err))
		}
	})

	t.Run("Invalid Base64 Fails", func(t *testing.T) {
		plaintext, err := DecryptPayload("not-base64!!!", testSecretKey)

		require.Error(t, err)
		assert.Nil(t, plaintext)
	})

	t.Run("Truncated Ciphertext Fails", func(t *testing.T) {
		truncated := base64.StdEncoding.EncodeToString([]byte{0x01, 0x02, 0x03})

		plaintext, err := DecryptPayload(truncated, testSecretKey)

		require.Error(t, err)
		assert.Nil(t, plaintext)
		assert.Equal(t, constvars.ErrCodeEncryptionCipherFailure, exceptions.ErrorCode(err))
	})
}

func TestPadPKCS7(t *testing.T) {
	t.Run("Pad Length Is Byte Value", func(t *testing.T) {
		padded := padPKCS7([]byte("abc"), 8)

		require.Len(t, padded, 8)
		assert.Equal(t, strings.Repeat("\x05", 5), string(padded[3:]))
	})

	t.Run("Aligned Input Gains Full Block", func(t *testing.T) {
		padded := padPKCS7([]byte("12345678"), 8)

		require.Len(t, padded, 16)
		assert.Equal(t, strings.Repeat("\x08", 8), string(padded[8:]))
	})

	t.Run("Strip Rejects Corrupt Padding", func(t *testing.T) {
		_, err := stripPKCS7([]byte("1234567\x00"), 8)
		assert.Error(t, err)

		_, err = stripPKCS7([]byte("123456\x03\x02"), 8)
		assert.Error(t, err)
	})
}
