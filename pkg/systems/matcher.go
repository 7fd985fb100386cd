package systems

import (
	"strings"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// IsMatch 判断骨头与轮廓是否匹配
//
// 去掉固定前缀（"bone-" / "outline-"）后比较剩余部分，大小写敏感、不做任何规范化。
// 任一标识符为空时返回 false。拖拽悬停高亮和放下时的提交都只通过这个函数判断，
// 保证高亮与放置结果一致。
func IsMatch(itemID, targetID string) bool {
	if itemID == "" || targetID == "" {
		return false
	}
	itemPart := strings.TrimPrefix(itemID, types.ItemPrefix)
	targetPart := strings.TrimPrefix(targetID, types.TargetPrefix)
	return itemPart == targetPart
}
