package service

import (
	"sort"
	"strings"

	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
	"malifaux-tracker-server/internal/utils"
)

// WishlistItem 愿望单视图中的一行。
// CollectionID 为 nil 表示该雕像尚无收藏记录（合成的未拥有行）。
type WishlistItem struct {
	SculptID         uint    `json:"sculpt_id"`
	CollectionID     *uint   `json:"collection_id"`
	CollectionStatus string  `json:"collection_status"`
	MiniStatus       string  `json:"mini_status"`
	Notes            string  `json:"notes"`
	SculptName       string  `json:"sculpt_name"`
	Edition          string  `json:"edition"`
	SKU              string  `json:"sku"`
	ModelName        *string `json:"model_name"`
	Faction          *string `json:"faction"`
	Keywords         *string `json:"keywords"`
}

// WishlistGroup 一个 SKU 分组：该盒装中包含的全部雕像。
type WishlistGroup struct {
	SKU   string         `json:"sku"`
	Items []WishlistItem `json:"items"`
}

// ListWishlistGroups 生成按 SKU 分组的愿望单视图。
// 对每个含有至少一条 Wishlist 记录的 SKU，列出所有出现在该盒装中的雕像：
// 已拥有、已加入愿望单、以及完全未拥有的（合成行）。
// 同一雕像在组内只出现一次，Wishlist 记录优先于其他记录，记录优先于合成行。
func ListWishlistGroups() ([]WishlistGroup, error) {
	sculpts, err := ListSculpts()
	if err != nil {
		return nil, err
	}

	var entries []model.CollectionEntry
	if err := db.DB.Order("created_at").Find(&entries).Error; err != nil {
		return nil, err
	}

	entriesBySculpt := make(map[uint][]model.CollectionEntry)
	for _, e := range entries {
		entriesBySculpt[e.SculptID] = append(entriesBySculpt[e.SculptID], e)
	}

	// 展开为 (雕像, 记录或空) 行
	var items []WishlistItem
	for _, s := range sculpts {
		base := WishlistItem{
			SculptID:   s.ID,
			SculptName: s.SculptName,
			Edition:    s.Edition,
			SKU:        s.SKU,
			ModelName:  s.ModelName,
			Faction:    s.Faction,
			Keywords:   s.Keywords,
		}
		sculptEntries := entriesBySculpt[s.ID]
		if len(sculptEntries) == 0 {
			items = append(items, base)
			continue
		}
		for _, e := range sculptEntries {
			item := base
			id := e.ID
			item.CollectionID = &id
			item.CollectionStatus = e.CollectionStatus
			item.MiniStatus = e.MiniStatus
			item.Notes = e.Notes
			items = append(items, item)
		}
	}

	// 先找出真正含有愿望单记录的 SKU
	wishlistedSKUs := make(map[string]bool)
	for _, item := range items {
		if item.CollectionStatus == model.CollectionStatusWishlist {
			for _, sku := range utils.SplitSKUs(item.SKU) {
				wishlistedSKUs[sku] = true
			}
		}
	}

	// 按 SKU 分组，组内按雕像去重
	grouped := make(map[string]map[uint]WishlistItem)
	for _, item := range items {
		for _, sku := range utils.SplitSKUs(item.SKU) {
			if !wishlistedSKUs[sku] {
				continue
			}
			if grouped[sku] == nil {
				grouped[sku] = make(map[uint]WishlistItem)
			}
			existing, ok := grouped[sku][item.SculptID]
			if !ok || wishlistRank(item) > wishlistRank(existing) {
				grouped[sku][item.SculptID] = item
			}
		}
	}

	groups := make([]WishlistGroup, 0, len(grouped))
	for sku, bySculpt := range grouped {
		group := WishlistGroup{SKU: sku}
		for _, item := range bySculpt {
			group.Items = append(group.Items, item)
		}
		sort.Slice(group.Items, func(i, j int) bool {
			a, b := group.Items[i], group.Items[j]
			an, bn := derefOrEmpty(a.ModelName), derefOrEmpty(b.ModelName)
			if an != bn {
				return an < bn
			}
			return a.SculptName < b.SculptName
		})
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return strings.Compare(groups[i].SKU, groups[j].SKU) < 0
	})

	return groups, nil
}

func wishlistRank(item WishlistItem) int {
	switch {
	case item.CollectionStatus == model.CollectionStatusWishlist:
		return 2
	case item.CollectionID != nil:
		return 1
	}
	return 0
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
