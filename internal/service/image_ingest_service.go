package service

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"malifaux-tracker-server/internal/config"
	"malifaux-tracker-server/internal/consts"
	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
	"malifaux-tracker-server/internal/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	// 注册 WebP 解码器（imaging 自带 JPEG/PNG）
	_ "golang.org/x/image/webp"
)

// ValidatePhotoFile 验证上传的图片文件（大小、后缀、内容）
// 返回:
//   - bool: 是否合法
//   - string: 文件扩展名 (小写, 如 .jpg)
//   - error: 错误信息或原因
func ValidatePhotoFile(file *multipart.FileHeader) (bool, string, error) {
	// 检查文件大小
	maxSizeMB := GetInt(consts.ConfigMaxUploadSize) // 默认 5MB
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return false, "", fmt.Errorf("文件大小不能超过 %dMB", maxSizeMB)
	}

	// 检查文件扩展名
	allowExtsStr := GetString(consts.ConfigAllowFileExtensions)
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return false, "", errors.New("无法识别文件类型")
	}

	allowed := false
	for _, allowExt := range strings.Split(allowExtsStr, ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return false, ext, fmt.Errorf("不支持的文件类型: %s", ext)
	}

	// 检查文件内容 (Magic Bytes)
	src, err := file.Open()
	if err != nil {
		return false, ext, errors.New("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return false, ext, errors.New(msg)
	}

	return true, ext, nil
}

// PhotoUploadParams 上传图片的业务参数。
type PhotoUploadParams struct {
	Caption       string
	SculptIDs     string // 分号分隔
	SceneTag      string
	StatusTag     string
	CollectionIDs string // 逗号分隔，可为空
}

// ProcessPhotoUpload 处理图片上传核心业务
// 包括：参数校验、两份派生图（全尺寸 + 缩略图）落盘、数据库记录、收藏记录关联
// 派生图保证要么两份都写成功，要么一份不留。
func ProcessPhotoUpload(file *multipart.FileHeader, params PhotoUploadParams) (*model.Upload, error) {
	// 1. 校验标签参数（任何写操作之前）
	sculptIDs := utils.ParseIDList(params.SculptIDs, ";")
	if len(sculptIDs) == 0 {
		return nil, errors.New("请至少标记一个雕像")
	}
	if !model.ValidSceneTag(params.SceneTag) {
		return nil, errors.New("无效的场景标签")
	}
	if !model.ValidStatusTag(params.StatusTag) {
		return nil, errors.New("无效的状态标签")
	}
	if err := verifySculptsExist(sculptIDs); err != nil {
		return nil, err
	}

	// 2. 校验文件
	if file == nil {
		return nil, errors.New("请选择文件")
	}
	valid, _, err := ValidatePhotoFile(file)
	if !valid {
		return nil, err
	}

	// 3. 解码图片
	src, err := file.Open()
	if err != nil {
		return nil, errors.New("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		log.Printf("Decode image error: %v\n", err)
		return nil, errors.New("图片解码失败")
	}

	// 4. 准备目录与文件名（时间戳 + 随机后缀，统一转存为 JPEG）
	cfg := config.Get()
	fullRoot := cfg.Upload.FullPath
	if fullRoot == "" {
		fullRoot = "uploads/full"
	}
	thumbRoot := cfg.Upload.ThumbPath
	if thumbRoot == "" {
		thumbRoot = "uploads/thumbs"
	}
	if err := os.MkdirAll(fullRoot, 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return nil, errors.New("系统错误: 无法创建存储目录")
	}
	if err := os.MkdirAll(thumbRoot, 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return nil, errors.New("系统错误: 无法创建存储目录")
	}

	now := time.Now()
	newFilename := now.Format("20060102_150405") + "_" + uuid.New().String()[:8] + ".jpg"
	fullPath := filepath.Join(fullRoot, newFilename)
	thumbPath := filepath.Join(thumbRoot, newFilename)

	// 5. 写两份派生图
	fullMaxEdge := GetInt(consts.ConfigFullImageMaxEdge)
	if fullMaxEdge <= 0 {
		fullMaxEdge = 1600
	}
	fullQuality := GetInt(consts.ConfigFullImageQuality)
	if fullQuality <= 0 {
		fullQuality = 85
	}
	thumbMaxEdge := GetInt(consts.ConfigThumbMaxEdge)
	if thumbMaxEdge <= 0 {
		thumbMaxEdge = 400
	}
	thumbQuality := GetInt(consts.ConfigThumbQuality)
	if thumbQuality <= 0 {
		thumbQuality = 80
	}

	full := imaging.Fit(img, fullMaxEdge, fullMaxEdge, imaging.Lanczos)
	if err := imaging.Save(full, fullPath, imaging.JPEGQuality(fullQuality)); err != nil {
		log.Printf("Save full image error: %v\n", err)
		return nil, errors.New("文件保存失败")
	}

	thumb := imaging.Fit(img, thumbMaxEdge, thumbMaxEdge, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(thumbQuality)); err != nil {
		_ = os.Remove(fullPath) // 不留下单份资产
		log.Printf("Save thumbnail error: %v\n", err)
		return nil, errors.New("文件保存失败")
	}

	var sizeBytes int64
	if info, err := os.Stat(fullPath); err == nil {
		sizeBytes += info.Size()
	}
	if info, err := os.Stat(thumbPath); err == nil {
		sizeBytes += info.Size()
	}

	// 6. 数据库记录
	upload := model.Upload{
		Filename:         newFilename,
		OriginalFilename: file.Filename,
		Caption:          params.Caption,
		SculptIDs:        utils.JoinIDList(sculptIDs, ";"),
		SceneTag:         params.SceneTag,
		StatusTag:        params.StatusTag,
		SizeBytes:        sizeBytes,
		UploadedAt:       now.Unix(),
		UploadedBy:       GetString(consts.ConfigUploaderName),
	}
	if err := db.DB.Create(&upload).Error; err != nil {
		_ = os.Remove(fullPath) // 回滚文件
		_ = os.Remove(thumbPath)
		log.Printf("Process upload DB error: %v\n", err)
		return nil, errors.New("系统错误: 数据库记录失败")
	}

	// 7. 关联收藏记录（尽力而为；对文本字段的读改写没有加锁，
	// 并发关联同一条记录时后写覆盖先写，单用户场景下接受）
	for _, collectionID := range utils.ParseIDList(params.CollectionIDs, ",") {
		var entry model.CollectionEntry
		if err := db.DB.First(&entry, collectionID).Error; err != nil {
			log.Printf("Link upload %d: collection entry %d not found\n", upload.ID, collectionID)
			continue
		}
		newList := utils.AppendID(entry.UploadIDs, upload.ID)
		if err := db.DB.Model(&entry).Update("upload_ids", newList).Error; err != nil {
			log.Printf("Link upload %d to entry %d error: %v\n", upload.ID, collectionID, err)
		}
	}

	return &upload, nil
}

// verifySculptsExist 校验标记的雕像 id 全部存在。
func verifySculptsExist(ids []uint) error {
	var count int64
	if err := db.DB.Model(&model.Sculpt{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return errors.New("系统错误: 查询雕像失败")
	}
	if count != int64(len(ids)) {
		return errors.New("标记的雕像不存在")
	}
	return nil
}
