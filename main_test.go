package main

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"pic-share-server/internal/config"
	"pic-share-server/internal/consts"
	"pic-share-server/internal/db"
	"pic-share-server/internal/model"
	"pic-share-server/internal/repository"
	"pic-share-server/internal/service"
	"pic-share-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 测试内容：为 main 包测试初始化配置环境并在结束时清理。
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "pic-share-main-config-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("PIC_SHARE_SERVER_MODE", "debug"),
		testutils.SetEnv("PIC_SHARE_JWT_SECRET", "test_secret"),
		testutils.SetEnv("PIC_SHARE_JWT_EXPIRATION_HOURS", "24"),
		testutils.SetEnv("PIC_SHARE_UPLOAD_PATH", "uploads/imgs"),
		testutils.SetEnv("PIC_SHARE_UPLOAD_URL_PREFIX", "/uploads/"),
		testutils.SetEnv("PIC_SHARE_REDIS_ENABLED", "false"),
	}
	config.InitConfig(tmpDir)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}

// 测试内容：验证 splitTrustedProxyList 能正确拆分代理列表。
func TestSplitTrustedProxyList(t *testing.T) {
	got := splitTrustedProxyList(" 1.1.1.1,2.2.2.2; 3.3.3.3 \n4.4.4.4\t")
	if len(got) != 4 {
		t.Fatalf("期望 4 parts，实际为 %v", got)
	}
}

// 测试内容：验证未启用 embed 构建时前端资源与 index 数据为空。
func TestEmbedDisabledFrontendHooks(t *testing.T) {
	// 默认构建（不带 -tags embed）应使用 embed_disabled.go。
	if GetFrontendAssets() != nil {
		t.Fatal("期望为 nil frontend assets in non-embed build")
	}
	r := gin.New()
	if data := setupFrontend(r, nil); data != nil {
		t.Fatal("期望为 nil index data in non-embed build")
	}
}

// 测试内容：验证 exportAPI 会写出有效的 routes.json 路由列表。
func TestExportAPI_WritesRoutesJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tmp := t.TempDir()
	oldwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	defer func() { _ = os.Chdir(oldwd) }()

	r := gin.New()
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	exportAPI(r)

	b, err := os.ReadFile("routes.json")
	if err != nil {
		t.Fatalf("期望 routes.json: %v", err)
	}
	var routes []map[string]any
	if err := json.Unmarshal(b, &routes); err != nil {
		t.Fatalf("JSON 无效: %v", err)
	}
	if len(routes) == 0 {
		t.Fatal("期望路由列表非空")
	}
}

// 测试内容：验证 NoRoute 处理在 API/上传路径返回 404，根路径回退到 index，静态文件可被服务。
func TestGetNoRouteHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dist := fstest.MapFS{
		"favicon.ico": &fstest.MapFile{Data: []byte("ico")},
	}
	indexData := []byte("<html>index</html>")

	r := gin.New()
	r.NoRoute(getNoRouteHandler(dist, indexData))

	// API 未找到
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if w1.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w1.Code)
	}

	// 上传前缀未找到
	wu := httptest.NewRecorder()
	r.ServeHTTP(wu, httptest.NewRequest(http.MethodGet, "/uploads/nope.png", nil))
	if wu.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", wu.Code)
	}

	// 根路径回退到 index
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w2.Code)
	}

	// 已有根目录文件被服务
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
	if w3.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w3.Code)
	}
}

// 测试内容：验证 dist 为空时 NoRoute 对任意路径返回 404。
func TestGetNoRouteHandler_DistFSNil(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.NoRoute(getNoRouteHandler(nil, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/any", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
}

// 测试内容：确保创建上传目录。
func TestEnsureDirectories_CreatesUploadDir(t *testing.T) {
	tmp := t.TempDir()
	oldwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	defer func() { _ = os.Chdir(oldwd) }()

	uploadPath := ensureDirectories()
	if _, err := os.Stat(uploadPath); err != nil {
		t.Fatalf("期望 upload dir exists: %v", err)
	}
}

// 测试内容：验证 trusted_proxies 设置对信任代理的影响：空值禁用、有效列表生效、无效列表回退。
func TestApplyTrustedProxies_UsesSettingValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDBForMain(t)

	getClientIP := func(r *gin.Engine, remoteAddr, xff string) string {
		r.GET("/ip", func(c *gin.Context) {
			c.String(http.StatusOK, c.ClientIP())
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ip", nil)
		req.RemoteAddr = remoteAddr
		if xff != "" {
			req.Header.Set("X-Forwarded-For", xff)
		}
		r.ServeHTTP(w, req)
		return strings.TrimSpace(w.Body.String())
	}

	remoteAddr := "10.0.0.1:1234"
	xff := "203.0.113.10, 10.0.0.1"

	// 空值会禁用信任，ClientIP 应为 RemoteAddr。
	if err := db.DB.Save(&model.Setting{Key: consts.ConfigTrustedProxies, Value: ""}).Error; err != nil {
		t.Fatalf("保存 trusted_proxies 失败: %v", err)
	}
	appService := buildTestAppServiceForMain()
	appService.ClearCache()
	r := gin.New()
	applyTrustedProxies(r, appService)
	if got := getClientIP(r, remoteAddr, xff); got != "10.0.0.1" {
		t.Fatalf("禁用可信代理时 ClientIP 应为 RemoteAddr，实际为 %q", got)
	}

	// 有效的代理列表应启用信任，ClientIP 应取 X-Forwarded-For。
	if err := db.DB.Save(&model.Setting{Key: consts.ConfigTrustedProxies, Value: "127.0.0.1,10.0.0.0/8"}).Error; err != nil {
		t.Fatalf("保存 trusted_proxies 失败: %v", err)
	}
	appService = buildTestAppServiceForMain()
	appService.ClearCache()
	r2 := gin.New()
	applyTrustedProxies(r2, appService)
	if got := getClientIP(r2, remoteAddr, xff); got != "203.0.113.10" {
		t.Fatalf("启用可信代理时 ClientIP 应取 X-Forwarded-For，实际为 %q", got)
	}

	// 无效的代理列表应回退为禁用，ClientIP 仍为 RemoteAddr。
	if err := db.DB.Save(&model.Setting{Key: consts.ConfigTrustedProxies, Value: "not-a-cidr"}).Error; err != nil {
		t.Fatalf("保存 trusted_proxies 失败: %v", err)
	}
	appService = buildTestAppServiceForMain()
	appService.ClearCache()
	r3 := gin.New()
	applyTrustedProxies(r3, appService)
	if got := getClientIP(r3, remoteAddr, xff); got != "10.0.0.1" {
		t.Fatalf("无效可信代理时 ClientIP 应为 RemoteAddr，实际为 %q", got)
	}
}

// 测试内容：验证静态文件挂载后上传图片可被访问。
func TestSetupStaticFiles_ServesUploads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDBForMain(t)

	tmp := t.TempDir()
	oldwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	defer func() { _ = os.Chdir(oldwd) }()

	uploadPath := ensureDirectories()
	_ = os.WriteFile(filepath.Join(uploadPath, "a.txt"), []byte("u"), 0644)

	r := gin.New()
	setupStaticFiles(r, buildTestAppServiceForMain(), uploadPath)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/a.txt", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证欢迎信息打印函数在测试配置下可执行。
func TestPrintWelcomeMessage(t *testing.T) {
	printWelcomeMessage()
}

func setupTestDBForMain(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	buildTestAppServiceForMain().ClearCache()
	return gdb
}

var _ fs.FS = fstest.MapFS{}

func buildTestAppServiceForMain() *service.AppService {
	return service.NewAppService(repository.NewRepositories(
		repository.NewUserRepository(db.DB),
		repository.NewPostRepository(db.DB),
		repository.NewCommentRepository(db.DB),
		repository.NewSettingRepository(db.DB),
	))
}
