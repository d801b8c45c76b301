// Package encryption implements the 3DES-24 payload transform the Xpresspay
// gateway requires on every payment request.
//
// The 24-byte Triple DES key is derived from the merchant secret key via MD5,
// the JSON payload is PKCS#7-padded to the DES block size, encrypted in ECB
// mode, and Base64-encoded. ECB with no IV is mandated by the gateway;
// switching to a chained mode breaks interoperability. The secret key never
// leaves the process, only the ciphertext is transmitted.
package encryption

import (
	"crypto/des"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const keyPartLength = 12

// DeriveKey derives the 24-byte 3DES key from the Xpresspay secret key.
//
// Algorithm, as documented by Xpresspay:
//  1. Remove every occurrence of "XPSECK-" and take the first 12 characters.
//  2. MD5-hash the full un-stripped secret key and take the last 12 hex chars.
//  3. Concatenate both parts.
//
// Deterministic, no I/O. Note the documented behavior is replace-all, not a
// single leading-prefix strip.
func DeriveKey(secretKey string) ([]byte, error) {
	if secretKey == "" {
		return nil, exceptions.ErrEncryptionEmptySecret()
	}

	stripped := []rune(strings.ReplaceAll(secretKey, constvars.XpresspaySecretKeyPrefix, ""))
	if len(stripped) < keyPartLength {
		return nil, exceptions.ErrEncryptionSecretTooShort()
	}

	partA := string(stripped[:keyPartLength])

	digest := md5.Sum([]byte(secretKey))
	md5Hex := hex.EncodeToString(digest[:])
	partB := md5Hex[len(md5Hex)-keyPartLength:]

	return []byte(partA + partB), nil
}

// EncryptPayload serializes payload to compact JSON, encrypts it with
// 3DES-ECB under the key derived from secretKey and returns the Base64
// ciphertext to be sent as the envelope's "request" field.
//
// Every failure is an *exceptions.CustomError carrying one of the
// ENCRYPTION_* codes.
func EncryptPayload(payload *Payload, secretKey string) (string, error) {
	if payload == nil {
		payload = NewPayload()
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrEncryptionNotSerializable(err)
	}

	key, err := DeriveKey(secretKey)
	if err != nil {
		return "", err
	}

	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		return "", exceptions.ErrEncryptionCipherFailure(err)
	}

	padded := padPKCS7(plaintext, des.BlockSize)
	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += des.BlockSize {
		block.Encrypt(ciphertext[i:i+des.BlockSize], padded[i:i+des.BlockSize])
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptPayload reverses EncryptPayload and returns the compact JSON bytes
// that were encrypted. The gateway never sends encrypted responses; this
// exists for sandbox debugging and round-trip verification.
func DecryptPayload(encoded, secretKey string) ([]byte, error) {
	key, err := DeriveKey(secretKey)
	if err != nil {
		return nil, err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, exceptions.ErrDecryptionCipherFailure(err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%des.BlockSize != 0 {
		return nil, exceptions.ErrDecryptionCipherFailure(errors.New(constvars.ErrDevDecryptionBadLength))
	}

	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		return nil, exceptions.ErrDecryptionCipherFailure(err)
	}

	padded := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += des.BlockSize {
		block.Decrypt(padded[i:i+des.BlockSize], ciphertext[i:i+des.BlockSize])
	}

	plaintext, err := stripPKCS7(padded, des.BlockSize)
	if err != nil {
		return nil, exceptions.ErrDecryptionCipherFailure(err)
	}
	return plaintext, nil
}

// padPKCS7 always appends between 1 and blockSize bytes; input already a
// multiple of blockSize gains a full padding block.
func padPKCS7(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func stripPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New(constvars.ErrDevDecryptionBadPadding)
	}
	padLen := int(data[len(data)-1])
	if padLen < 1 || padLen > blockSize || padLen > len(data) {
		return nil, errors.New(constvars.ErrDevDecryptionBadPadding)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.New(constvars.ErrDevDecryptionBadPadding)
		}
	}
	return data[:len(data)-padLen], nil
}
