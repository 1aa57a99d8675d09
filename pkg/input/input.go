// Package input 负责读取待提取的 CSS 文本
//
// 文件通过 mmap 映射读取，映射失败时回退到 os.ReadFile；
// 所有入口都会校验内容是否为合法 UTF-8 文本
package input

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"
	"github.com/yeisme/colorsift/pkg/extract"
	"github.com/yeisme/colorsift/pkg/utils/log"
)

// StdinName 命令行中表示标准输入的参数
const StdinName = "-"

// ReadFile 读取文件内容
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("file", path).Msg("close input file")
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	// 不能映射零字节文件
	if info.Size() == 0 {
		return "", nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		log.Debug().Err(err).Str("file", path).Msg("mmap failed, falling back to read")
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return "", fmt.Errorf("read %s: %w", path, rerr)
		}
		return validate(path, data)
	}
	defer func() {
		if uerr := m.Unmap(); uerr != nil {
			log.Warn().Err(uerr).Str("file", path).Msg("unmap input file")
		}
	}()

	// string(m) 复制数据，Unmap 之后仍然有效
	return validate(path, m)
}

// ReadAll 从任意 reader 读取内容，如标准输入
func ReadAll(name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return validate(name, data)
}

// ReadStdin 读取标准输入
func ReadStdin() (string, error) {
	return ReadAll("stdin", os.Stdin)
}

// Read 根据参数读取：StdinName 读取 stdin，否则读取文件
func Read(arg string, stdin io.Reader) (string, error) {
	if arg == StdinName {
		return ReadAll("stdin", stdin)
	}
	return ReadFile(arg)
}

func validate(name string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", name, extract.ErrInvalidInput)
	}
	return strings.TrimPrefix(string(data), "\uFEFF"), nil
}
