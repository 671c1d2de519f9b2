package consts

const (

	// ConfigSiteName 站点名称
	ConfigSiteName = "site_name"

	// ConfigSiteDescription 站点描述
	ConfigSiteDescription = "site_description"

	// ConfigUploaderName 上传者显示名（单用户模式）
	ConfigUploaderName = "uploader_name"

	// ConfigMaxUploadSize 图片最大上传限制 (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigAllowFileExtensions 允许上传的文件扩展名 (逗号分隔)
	ConfigAllowFileExtensions = "allow_file_extensions"

	// ConfigFullImageMaxEdge 全尺寸图最长边 (px)
	ConfigFullImageMaxEdge = "full_image_max_edge"

	// ConfigFullImageQuality 全尺寸图 JPEG 质量 (1-100)
	ConfigFullImageQuality = "full_image_quality"

	// ConfigThumbMaxEdge 缩略图最长边 (px)
	ConfigThumbMaxEdge = "thumb_max_edge"

	// ConfigThumbQuality 缩略图 JPEG 质量 (1-100)
	ConfigThumbQuality = "thumb_quality"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitImportRPS 导入接口限流 RPS
	ConfigRateLimitImportRPS = "rate_limit_import_rps"

	// ConfigRateLimitImportBurst 导入接口限流 Burst
	ConfigRateLimitImportBurst = "rate_limit_import_burst"

	// ConfigRateLimitUploadRPS 上传接口限流 RPS
	ConfigRateLimitUploadRPS = "rate_limit_upload_rps"

	// ConfigRateLimitUploadBurst 上传接口限流 Burst
	ConfigRateLimitUploadBurst = "rate_limit_upload_burst"

	// ConfigMaxRequestBodySize 普通接口最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigMaxImportBodySize 导入接口最大请求体限制 (MB)
	ConfigMaxImportBodySize = "max_import_body_size"

	// ConfigSearchCacheTTLSeconds 搜索缓存有效期 (秒, 0 关闭)
	ConfigSearchCacheTTLSeconds = "search_cache_ttl_seconds"

	// ConfigStaticCacheControl 静态资源缓存设置 (Cache-Control header value)
	ConfigStaticCacheControl = "static_cache_control"
)
