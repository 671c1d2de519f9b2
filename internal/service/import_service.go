package service

import (
	"fmt"
	"strings"

	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/dto"
	"malifaux-tracker-server/internal/model"
)

// 导入是尽力而为的批处理：单行失败不会中断其余行，也不会回滚已写入的行。
// 错误按 1-based 行号 +2 报告（输入第一行对应 CSV 的第 2 行，表头占第 1 行）。

// normalizeMultiValue 将 CSV 中分号分隔的多值字段归一化为逗号分隔存储。
func normalizeMultiValue(s string) string {
	return strings.ReplaceAll(s, ";", ", ")
}

// ImportModels 批量导入模型档案。
// 返回成功写入的行数；存在失败行时返回聚合错误，错误信息逐行列出原因。
func ImportModels(rows []dto.ModelRow) (int, error) {
	count := 0
	var rowErrors []string

	for index, row := range rows {
		profile := model.ModelProfile{
			ModelName:       strings.TrimSpace(row.ModelName),
			Faction:         strings.TrimSpace(row.Faction),
			Keywords:        normalizeMultiValue(row.Keywords),
			BaseSize:        row.BaseSize,
			Station:         normalizeMultiValue(row.Station),
			Henchman:        row.Henchman.Int(),
			Versatile:       row.Versatile.Int(),
			Loyal:           row.Loyal.Int(),
			UniqueModel:     row.Unique.Int(),
			HireLimit:       row.HireLimit.Ptr(),
			Cost:            row.Cost.Ptr(),
			Characteristics: normalizeMultiValue(row.Characteristics),
			Df:              row.Df.Ptr(),
			Wp:              row.Wp.Ptr(),
			Mv:              row.Mv.Ptr(),
			Sz:              row.Sz.Ptr(),
			Hp:              row.Hp.Ptr(),
			Stn:             row.Stn.Ptr(),
			CardFront:       row.CardFront,
			CardBack:        row.CardBack,
		}

		if profile.ModelName == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d (%s): model_name is required", index+2, row.ModelName))
			continue
		}
		if profile.Faction == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d (%s): faction is required", index+2, row.ModelName))
			continue
		}

		if err := db.DB.Create(&profile).Error; err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d (%s): %v", index+2, row.ModelName, err))
			continue
		}
		count++
	}

	if len(rowErrors) > 0 {
		return count, fmt.Errorf("Imported %d/%d. Errors: %s", count, len(rows), strings.Join(rowErrors, "; "))
	}
	return count, nil
}

// ImportSculpts 批量导入雕像。
// model_profile_id 允许是数字 id 或模型名称；名称按 model_name 精确匹配解析，
// 解析失败记为该行错误，批次继续。
func ImportSculpts(rows []dto.SculptRow) (int, error) {
	count := 0
	var rowErrors []string

	for index, row := range rows {
		modelID := row.ModelProfileID.ID
		if !row.ModelProfileID.IsID {
			var profile model.ModelProfile
			err := db.DB.Where("model_name = ?", row.ModelProfileID.Name).First(&profile).Error
			if err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("Row %d (%s): Model %q not found", index+2, row.SculptName, row.ModelProfileID.Name))
				continue
			}
			modelID = profile.ID
		}

		sculpt := model.Sculpt{
			SculptName:        strings.TrimSpace(row.SculptName),
			ModelProfileID:    modelID,
			Edition:           strings.ReplaceAll(row.Edition, ";", ", "),
			SKU:               strings.ReplaceAll(row.SKU, ";", " / "),
			OfficialArtwork:   row.OfficialArtwork,
			OfficialRender:    row.OfficialRender,
			SpruePhoto:        row.SpruePhoto,
			BuildInstructions: row.BuildInstructions,
		}

		if sculpt.SculptName == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d (%s): sculpt_name is required", index+2, row.SculptName))
			continue
		}

		if err := db.DB.Create(&sculpt).Error; err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d (%s): %v", index+2, row.SculptName, err))
			continue
		}
		count++
	}

	if len(rowErrors) > 0 {
		return count, fmt.Errorf("Imported %d/%d. Errors: %s", count, len(rows), strings.Join(rowErrors, "; "))
	}
	return count, nil
}
