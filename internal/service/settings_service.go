package service

import (
	"strconv"

	"pic-share-server/internal/consts"
	"pic-share-server/internal/model"
)

const defaultValueNotFound = "||__NOT_FOUND__||"

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "Pic Share", Desc: "网站名称"},
	{Key: consts.ConfigSiteDescription, Value: "A photo sharing community", Desc: "网站描述"},
	{Key: consts.ConfigAllowRegister, Value: "true", Desc: "是否开放注册 (true/false)"},
	{Key: consts.ConfigMaxUploadSize, Value: "10", Desc: "单个文件最大大小 (MB)"},
	{Key: consts.ConfigAllowFileExtensions, Value: ".jpg,.jpeg,.png,.gif", Desc: "允许上传的文件扩展名"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "认证接口每秒请求限制 (RPS)"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "2", Desc: "认证接口突发请求限制"},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1.0", Desc: "发帖接口每秒请求限制 (RPS)"},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Desc: "发帖接口突发请求限制"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "非文件上传接口最大请求体限制 (MB)"},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Desc: "静态资源缓存设置 (Cache-Control)"},
	{Key: consts.ConfigFeedCacheTTLSeconds, Value: "10", Desc: "首页帖子列表 Redis 缓存时长 (秒)"},
	{Key: consts.ConfigTrustedProxies, Value: "", Desc: "信任的反向代理地址列表 (逗号分隔，留空禁用)"},
}

// ClearCache 清空运行时配置的内存缓存（配置变更或测试时调用）。
func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

// InitializeSettings 将缺失的默认配置写入数据库。
func (s *AppService) InitializeSettings() {
	for _, def := range DefaultSettings {
		setting := def
		_ = s.repos.Settings.CreateIfMissing(&setting)
	}
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		strVal, ok := val.(string)
		if !ok {
			s.settingsCache.Delete(key)
		} else {
			if strVal == defaultValueNotFound {
				return ""
			}
			return strVal
		}
	}

	setting, err := s.repos.Settings.Get(key)
	if err != nil {
		// 数据库没查到，尝试查找默认配置
		for _, def := range DefaultSettings {
			if def.Key == key {
				newSetting := def
				_ = s.repos.Settings.CreateIfMissing(&newSetting)
				s.settingsCache.Store(key, newSetting.Value)
				return newSetting.Value
			}
		}
		// 连默认值都没有，缓存哨兵值避免反复查库
		s.settingsCache.Store(key, defaultValueNotFound)
		return ""
	}

	s.settingsCache.Store(key, setting.Value)
	return setting.Value
}

func (s *AppService) GetBool(key string) bool {
	return s.GetString(key) == "true"
}

func (s *AppService) GetInt(key string) int {
	val, err := strconv.Atoi(s.GetString(key))
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetInt64(key string) int64 {
	val, err := strconv.ParseInt(s.GetString(key), 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	val, err := strconv.ParseFloat(s.GetString(key), 64)
	if err != nil {
		return 0
	}
	return val
}

// SaveSetting 更新配置并刷新缓存。
func (s *AppService) SaveSetting(key, value string) error {
	if err := s.repos.Settings.Save(&model.Setting{Key: key, Value: value}); err != nil {
		return err
	}
	s.settingsCache.Store(key, value)
	return nil
}
