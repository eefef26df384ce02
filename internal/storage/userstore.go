package storage

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

// 用户存储相关错误
var (
	ErrEmailTaken   = errors.New("邮箱已被注册")
	ErrUserNotFound = errors.New("用户不存在")
)

// UserStore 注册用户存储，内容持久化为以邮箱为键的JSON文档
type UserStore struct {
	store    *FileStore
	filename string

	mu    sync.RWMutex
	users map[string]types.User // email -> user
}

// NewUserStore 创建用户存储并加载已有用户
func NewUserStore(store *FileStore, filename string) (*UserStore, error) {
	s := &UserStore{
		store:    store,
		filename: filename,
		users:    make(map[string]types.User),
	}
	if err := store.Load(filename, &s.users); err != nil {
		return nil, err
	}
	if s.users == nil {
		s.users = make(map[string]types.User)
	}
	return s, nil
}

// Create 注册新用户，邮箱重复时返回 ErrEmailTaken
func (s *UserStore) Create(user types.User) error {
	email := normalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return ErrEmailTaken
	}
	s.users[email] = user
	if err := s.store.Save(s.filename, s.users); err != nil {
		delete(s.users, email)
		return fmt.Errorf("持久化用户失败: %w", err)
	}
	return nil
}

// GetByEmail 按邮箱查找用户
func (s *UserStore) GetByEmail(email string) (types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[normalizeEmail(email)]
	if !ok {
		return types.User{}, ErrUserNotFound
	}
	return user, nil
}

// Count 当前用户数
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
