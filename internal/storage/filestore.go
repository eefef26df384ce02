package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore JSON文档存储，每个命名空间对应数据目录下的一个文件
// 写入走临时文件+原子重命名，避免进程中断留下半截文件
type FileStore struct {
	dataDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex // 按文件名的写锁
}

// NewFileStore 创建文件存储，数据目录不存在时自动建立
func NewFileStore(dataDir string) (*FileStore, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("数据目录不能为空")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建数据目录 %s 失败: %w", dataDir, err)
	}
	return &FileStore{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

func (f *FileStore) lockFor(filename string) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.locks[filename]; ok {
		return l
	}
	l := &sync.Mutex{}
	f.locks[filename] = l
	return l
}

// Path 返回某个文档文件的完整路径
func (f *FileStore) Path(filename string) string {
	return filepath.Join(f.dataDir, filename)
}

// Load 读取并反序列化一个JSON文档，文件不存在时不报错也不修改out
func (f *FileStore) Load(filename string, out interface{}) error {
	lock := f.lockFor(filename)
	lock.Lock()
	defer lock.Unlock()

	data, err := os.ReadFile(f.Path(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("读取 %s 失败: %w", filename, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("解析 %s 失败: %w", filename, err)
	}
	return nil
}

// Save 序列化并原子写入一个JSON文档
func (f *FileStore) Save(filename string, v interface{}) error {
	lock := f.lockFor(filename)
	lock.Lock()
	defer lock.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化 %s 失败: %w", filename, err)
	}

	tmp, err := os.CreateTemp(f.dataDir, filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // 重命名成功后此调用无效果

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("关闭临时文件失败: %w", err)
	}
	if err := os.Rename(tmpName, f.Path(filename)); err != nil {
		return fmt.Errorf("替换 %s 失败: %w", filename, err)
	}
	return nil
}
