package xsecure

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltSize 密钥派生盐的长度（字节）。
	saltSize = 16

	// keySize AES-256 密钥长度（字节）。
	keySize = 32

	// pbkdf2Iterations PBKDF2-HMAC-SHA256 迭代次数。
	// 取 OWASP 当前建议值；改动会使已有快照文件无法解密，等同于换密码。
	pbkdf2Iterations = 600_000
)

// deriveKey 从口令和盐派生 AES-256 密钥。
func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keySize, sha256.New)
}

// seal 加密明文，输出 salt || nonce || ciphertext。
// 盐和 nonce 每次调用都重新随机生成。
func seal(password string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("xsecure: generate salt: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("xsecure: init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("xsecure: init gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("xsecure: generate nonce: %w", err)
	}

	out := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, nil), nil
}

// open 解密 seal 的输出。
// 文件被截断、篡改或口令错误时，GCM 认证失败，统一返回 ErrDecrypt。
func open(password string, blob []byte) ([]byte, error) {
	if len(blob) < saltSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}
