package xsecure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndRead(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		dir := t.TempDir()
		payload := []byte(`{"hello":"world"}`)

		err := Write("snap", dir, "p", payload)
		require.NoError(t, err, "Write failed")

		got, err := Read("snap", dir, "p")
		require.NoError(t, err, "Read failed")
		assert.Equal(t, payload, got)
	})

	t.Run("empty payload round trip", func(t *testing.T) {
		dir := t.TempDir()

		require.NoError(t, Write("snap", dir, "p", nil))
		got, err := Read("snap", dir, "p")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("overwrite replaces content", func(t *testing.T) {
		dir := t.TempDir()

		require.NoError(t, Write("snap", dir, "p", []byte("v1")))
		require.NoError(t, Write("snap", dir, "p", []byte("v2")))

		got, err := Read("snap", dir, "p")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("file lands at expected path", func(t *testing.T) {
		dir := t.TempDir()

		require.NoError(t, Write("snap", dir, "p", []byte("x")))

		_, err := os.Stat(filepath.Join(dir, "snap.cache"))
		assert.NoError(t, err, "expected snap.cache to exist")
	})

	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "deeper")

		require.NoError(t, Write("snap", dir, "p", []byte("x")))
		got, err := Read("snap", dir, "p")
		require.NoError(t, err)
		assert.Equal(t, []byte("x"), got)
	})

	t.Run("ciphertext differs between writes", func(t *testing.T) {
		// 盐和 nonce 每次随机，相同明文不应产生相同文件内容
		dir := t.TempDir()

		require.NoError(t, Write("a", dir, "p", []byte("same")))
		require.NoError(t, Write("b", dir, "p", []byte("same")))

		blobA, err := os.ReadFile(filepath.Join(dir, "a.cache"))
		require.NoError(t, err)
		blobB, err := os.ReadFile(filepath.Join(dir, "b.cache"))
		require.NoError(t, err)
		assert.NotEqual(t, blobA, blobB)
	})
}

func TestRead_Failures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Read("nothing", dir, "p")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong name", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, Write("T", dir, "p", []byte("x")))

		_, err := Read("other", dir, "p")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, Write("snap", dir, "correct", []byte("secret")))

		_, err := Read("snap", dir, "wrong")
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("truncated file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, Write("snap", dir, "p", []byte("secret")))

		path := filepath.Join(dir, "snap.cache")
		blob, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, blob[:len(blob)/2], 0o600))

		_, err = Read("snap", dir, "p")
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("tampered file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, Write("snap", dir, "p", []byte("secret")))

		path := filepath.Join(dir, "snap.cache")
		blob, err := os.ReadFile(path)
		require.NoError(t, err)
		blob[len(blob)-1] ^= 0xff
		require.NoError(t, os.WriteFile(path, blob, 0o600))

		_, err = Read("snap", dir, "p")
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("empty file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "snap.cache")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := Read("snap", dir, "p")
		assert.ErrorIs(t, err, ErrDecrypt)
	})
}

func TestArgumentValidation(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty name", func(t *testing.T) {
		assert.ErrorIs(t, Write("", dir, "p", nil), ErrInvalidName)
		_, err := Read("", dir, "p")
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("name with separator", func(t *testing.T) {
		assert.ErrorIs(t, Write("a/b", dir, "p", nil), ErrInvalidName)
		assert.ErrorIs(t, Write(`a\b`, dir, "p", nil), ErrInvalidName)
		assert.ErrorIs(t, Write("../escape", dir, "p", nil), ErrInvalidName)
	})

	t.Run("name with null byte", func(t *testing.T) {
		assert.ErrorIs(t, Write("a\x00b", dir, "p", nil), ErrInvalidName)
	})

	t.Run("empty password", func(t *testing.T) {
		assert.ErrorIs(t, Write("snap", dir, "", []byte("x")), ErrEmptyPassword)
		_, err := Read("snap", dir, "")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})
}

func TestRemove(t *testing.T) {
	t.Run("removes existing snapshot", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, Write("snap", dir, "p", []byte("x")))

		require.NoError(t, Remove("snap", dir))

		_, err := Read("snap", dir, "p")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing snapshot is a no-op", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, Remove("nothing", dir))
	})

	t.Run("invalid name", func(t *testing.T) {
		assert.ErrorIs(t, Remove("a/b", t.TempDir()), ErrInvalidName)
	})
}

func TestSealOpen(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		blob, err := seal("p", []byte("plaintext"))
		require.NoError(t, err)

		got, err := open("p", blob)
		require.NoError(t, err)
		assert.Equal(t, []byte("plaintext"), got)
	})

	t.Run("blob shorter than salt", func(t *testing.T) {
		_, err := open("p", make([]byte, saltSize-1))
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("blob shorter than salt plus nonce", func(t *testing.T) {
		_, err := open("p", make([]byte, saltSize+4))
		assert.ErrorIs(t, err, ErrDecrypt)
	})
}
