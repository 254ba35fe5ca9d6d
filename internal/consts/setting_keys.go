package consts

// 运行时配置项的键名（存储在 settings 表中）
const (
	ConfigSiteName        = "site_name"
	ConfigSiteDescription = "site_description"

	ConfigAllowRegister = "allow_register"

	ConfigMaxUploadSize       = "max_upload_size"
	ConfigAllowFileExtensions = "allow_file_extensions"

	ConfigRateLimitEnabled     = "rate_limit_enabled"
	ConfigRateLimitAuthRPS     = "rate_limit_auth_rps"
	ConfigRateLimitAuthBurst   = "rate_limit_auth_burst"
	ConfigRateLimitUploadRPS   = "rate_limit_upload_rps"
	ConfigRateLimitUploadBurst = "rate_limit_upload_burst"

	ConfigMaxRequestBodySize = "max_request_body_size"

	ConfigStaticCacheControl = "static_cache_control"

	ConfigFeedCacheTTLSeconds = "feed_cache_ttl_seconds"

	ConfigTrustedProxies = "trusted_proxies"
)
