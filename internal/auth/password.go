package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes         = 16
	keyBytes          = 32
	defaultIterations = 10000
)

// Hasher 密码散列器，存储格式为 hex(密钥):hex(盐)
type Hasher struct {
	iterations int
}

// NewHasher 创建密码散列器，iterations为0时使用默认迭代次数
func NewHasher(iterations int) *Hasher {
	if iterations <= 0 {
		iterations = defaultIterations
	}
	return &Hasher{iterations: iterations}
}

// Hash 生成随机盐并派生密码密钥
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("生成盐失败: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyBytes, sha256.New)
	return hex.EncodeToString(key) + ":" + hex.EncodeToString(salt), nil
}

// Verify 校验明文密码与存储值是否匹配
func (h *Hasher) Verify(stored, password string) bool {
	hashHex, saltHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(password), salt, h.iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}
