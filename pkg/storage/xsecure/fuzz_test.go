package xsecure

import (
	"errors"
	"testing"
)

// FuzzOpen 验证解密对任意损坏输入的健壮性：
// 只允许返回 ErrDecrypt，绝不 panic，绝不返回伪造的明文。
func FuzzOpen(f *testing.F) {
	valid, err := seal("p", []byte("seed payload"))
	if err != nil {
		f.Fatalf("seal failed: %v", err)
	}

	// 种子语料：合法密文、空输入、过短输入、被截断的合法密文
	f.Add(valid, "p")
	f.Add(valid, "wrong")
	f.Add([]byte{}, "p")
	f.Add([]byte{0x01, 0x02, 0x03}, "p")
	f.Add(valid[:len(valid)-1], "p")

	f.Fuzz(func(t *testing.T, blob []byte, password string) {
		got, err := open(password, blob)
		if err != nil {
			if !errors.Is(err, ErrDecrypt) {
				t.Errorf("expected ErrDecrypt, got %v", err)
			}
			return
		}
		// 解密成功只可能发生在 fuzzer 恰好复现了合法密文 + 正确口令的情况
		if password != "p" || string(got) != "seed payload" {
			t.Errorf("open accepted forged input: password=%q plaintext=%q", password, got)
		}
	})
}
