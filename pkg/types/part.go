// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "strings"

// Part 骨骼部位
// 页面上的查找字符串（bone-<part> / outline-<part>）只在边界处由 Part 派生
type Part int

const (
	// PartUnknown 未知部位
	PartUnknown Part = iota
	// PartSkull 头骨
	PartSkull
	// PartRibcage 胸廓
	PartRibcage
	// PartLeftArm 左臂
	PartLeftArm
	// PartRightArm 右臂
	PartRightArm
	// PartLeftLeg 左腿
	PartLeftLeg
	// PartRightLeg 右腿
	PartRightLeg
)

// PartCount 骨骼部位数量（同时也是胜利阈值）
const PartCount = 6

// 标识符前缀
const (
	ItemPrefix   = "bone-"
	TargetPrefix = "outline-"
)

var partSlugs = map[Part]string{
	PartSkull:    "skull",
	PartRibcage:  "ribcage",
	PartLeftArm:  "left-arm",
	PartRightArm: "right-arm",
	PartLeftLeg:  "left-leg",
	PartRightLeg: "right-leg",
}

var partLabels = map[Part]string{
	PartSkull:    "Skull",
	PartRibcage:  "Ribcage",
	PartLeftArm:  "Left Arm",
	PartRightArm: "Right Arm",
	PartLeftLeg:  "Left Leg",
	PartRightLeg: "Right Leg",
}

// AllParts 按规范顺序返回全部部位
// 骨头托盘的初始顺序和重置后的顺序都以此为准
func AllParts() []Part {
	return []Part{PartSkull, PartRibcage, PartLeftArm, PartRightArm, PartLeftLeg, PartRightLeg}
}

// Slug 返回部位的短名，如 "left-arm"
func (p Part) Slug() string {
	return partSlugs[p]
}

// String 返回部位的显示名
func (p Part) String() string {
	if label, ok := partLabels[p]; ok {
		return label
	}
	return "Unknown"
}

// ItemID 返回骨头元素的标识符，如 "bone-skull"
func ItemID(p Part) string {
	if p.Slug() == "" {
		return ""
	}
	return ItemPrefix + p.Slug()
}

// TargetID 返回轮廓元素的标识符，如 "outline-skull"
func TargetID(p Part) string {
	if p.Slug() == "" {
		return ""
	}
	return TargetPrefix + p.Slug()
}

// ParseItemID 将 "bone-<part>" 解析为 Part
func ParseItemID(id string) (Part, bool) {
	if !strings.HasPrefix(id, ItemPrefix) {
		return PartUnknown, false
	}
	return partFromSlug(strings.TrimPrefix(id, ItemPrefix))
}

// ParseTargetID 将 "outline-<part>" 解析为 Part
func ParseTargetID(id string) (Part, bool) {
	if !strings.HasPrefix(id, TargetPrefix) {
		return PartUnknown, false
	}
	return partFromSlug(strings.TrimPrefix(id, TargetPrefix))
}

func partFromSlug(slug string) (Part, bool) {
	for p, s := range partSlugs {
		if s == slug {
			return p, true
		}
	}
	return PartUnknown, false
}

// PlacementStatus 骨头的放置状态
// Unplaced → Placed 是单向的，只有重置能回到 Unplaced
type PlacementStatus int

const (
	// Unplaced 仍可拖动
	Unplaced PlacementStatus = iota
	// Placed 已固定在匹配的轮廓中
	Placed
)

// String 返回放置状态的字符串表示
func (s PlacementStatus) String() string {
	if s == Placed {
		return "placed"
	}
	return "unplaced"
}
