package utils

import (
	"strconv"
	"strings"
)

// 文本列中嵌入的多值约定：
//   - id 列表 (sculpt_ids / upload_ids / collection_ids) 用 ";" 或 "," 分隔
//   - sku 用 " / " 分隔

// ParseIDList 解析分隔符拼接的 id 列表，忽略空段与非法段。
func ParseIDList(s string, sep string) []uint {
	if s == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(v))
	}
	return ids
}

// JoinIDList 将 id 列表拼接为分隔符文本。
func JoinIDList(ids []uint, sep string) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, sep)
}

// AppendID 向分号分隔的 id 列表追加一个 id，已存在则原样返回。
func AppendID(list string, id uint) string {
	ids := ParseIDList(list, ";")
	for _, existing := range ids {
		if existing == id {
			return JoinIDList(ids, ";")
		}
	}
	ids = append(ids, id)
	return JoinIDList(ids, ";")
}

// RemoveID 从分号分隔的 id 列表中移除一个 id。
func RemoveID(list string, id uint) string {
	ids := ParseIDList(list, ";")
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return JoinIDList(kept, ";")
}

// ContainsID 判断分号分隔的 id 列表中是否包含指定 id。
func ContainsID(list string, id uint) bool {
	for _, existing := range ParseIDList(list, ";") {
		if existing == id {
			return true
		}
	}
	return false
}

// SplitSKUs 按 " / " 拆分多值 SKU 字段，去除空白段。
func SplitSKUs(sku string) []string {
	if sku == "" {
		return nil
	}
	var skus []string
	for _, part := range strings.Split(sku, " / ") {
		part = strings.TrimSpace(part)
		if part != "" {
			skus = append(skus, part)
		}
	}
	return skus
}
