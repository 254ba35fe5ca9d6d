package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"pic-share-server/internal/config"
	"pic-share-server/internal/consts"
	"pic-share-server/internal/db"
	"pic-share-server/internal/handler"
	"pic-share-server/internal/middleware"
	"pic-share-server/internal/repository"
	"pic-share-server/internal/router"
	"pic-share-server/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	configDir := flag.String("config", "", "配置文件目录（默认为 ./config）")
	flag.Parse()

	config.InitConfig(*configDir)
	db.InitDB()

	appService := service.NewAppService(repository.NewRepositories(
		repository.NewUserRepository(db.DB),
		repository.NewPostRepository(db.DB),
		repository.NewCommentRepository(db.DB),
		repository.NewSettingRepository(db.DB),
	))
	appService.InitializeSettings()

	uploadPath := ensureDirectories()

	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()
	applyTrustedProxies(r, appService)

	rt := router.NewRouter(handler.NewHandler(appService), appService)
	rt.Init(r)

	setupStaticFiles(r, appService, uploadPath)

	distFS := GetFrontendAssets()
	indexData := setupFrontend(r, distFS)
	r.NoRoute(getNoRouteHandler(distFS, indexData))

	// 导出模式
	if *exportRoutes {
		exportAPI(r)
		return // 导出后直接退出程序，不启动 Web 服务
	}

	printWelcomeMessage()

	// 停机配置
	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}

	if err := service.CloseRedisClient(); err != nil {
		log.Printf("⚠️ 关闭 Redis 连接失败: %v", err)
	}
	log.Println("✅ 服务已退出")
}

// ensureDirectories 创建上传目录并返回其路径
func ensureDirectories() string {
	uploadPath := config.Get().Upload.Path
	checkSecurePath(uploadPath)
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		log.Fatal("无法创建上传目录: ", err)
	}
	return uploadPath
}

// setupStaticFiles 挂载带缓存控制的上传图片静态服务
func setupStaticFiles(r *gin.Engine, appService *service.AppService, uploadPath string) {
	r.Group(config.Get().Upload.URLPrefix, middleware.StaticCacheMiddleware(appService)).
		StaticFS("", gin.Dir(uploadPath, false))
}

// applyTrustedProxies 根据运行时设置配置可信代理，空值或非法值时禁用信任
func applyTrustedProxies(r *gin.Engine, appService *service.AppService) {
	raw := appService.GetString(consts.ConfigTrustedProxies)
	proxies := splitTrustedProxyList(raw)
	if len(proxies) == 0 {
		if err := r.SetTrustedProxies(nil); err != nil {
			log.Printf("⚠️ 禁用可信代理失败: %v", err)
		}
		return
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		log.Printf("⚠️ 可信代理配置无效 (%q)，已回退为禁用: %v", raw, err)
		_ = r.SetTrustedProxies(nil)
	}
}

// splitTrustedProxyList 拆分代理列表，支持逗号、分号与空白分隔
func splitTrustedProxyList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	result := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			result = append(result, f)
		}
	}
	return result
}

// getNoRouteHandler 返回 NoRoute 处理函数，API 与上传路径返回 404，其余回退到 SPA index
func getNoRouteHandler(distFS fs.FS, indexData []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{"error": "API not found"})
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, config.Get().Upload.URLPrefix) {
			c.JSON(404, gin.H{"error": "Upload not found"})
			return
		}

		if distFS == nil || indexData == nil {
			c.JSON(404, gin.H{"error": "Not found"})
			return
		}

		// 尝试直接服务根目录下的静态文件 (如 favicon.ico, manifest.json)
		path := strings.TrimPrefix(c.Request.URL.Path, "/")

		// 如果 path 为空（即访问根路径 /），直接返回 index.html
		if path == "" {
			c.Data(200, "text/html; charset=utf-8", indexData)
			return
		}

		f, err := distFS.Open(path)
		if err == nil {
			defer f.Close()
			stat, _ := f.Stat()
			if !stat.IsDir() {
				c.FileFromFS(path, http.FS(distFS))
				return
			}
		}

		// SPA 回退：服务 index.html 内容
		c.Data(200, "text/html; charset=utf-8", indexData)
	}
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) {
	routes := r.Routes()

	// 简单的结构体，只留关键信息
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	var exportList []RouteInfo
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, _ := json.MarshalIndent(exportList, "", "  ")
	_ = os.WriteFile("routes.json", file, 0644)

	println("✅ 路由已成功导出到 routes.json")
}

func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("❌ 路径解析失败: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("❌ 无法获取当前工作目录: %v", err)
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		log.Fatalf("❌ 安全配置错误: 静态资源目录 '%s' 不能设置为项目根目录！这会导致源代码泄露。", path)
	}

	// 检查路径安全
	rel, err := filepath.Rel(cwd, absPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		// 统一路径分隔符为 / 方便匹配
		relSlash := filepath.ToSlash(rel)

		// 允许的安全目录列表
		// 只有位于这些目录下的路径才被允许作为静态资源目录
		allowedDirs := []string{
			"uploads",
			"public",
			"assets",
			"static",
			"tmp",
		}

		isAllowed := false
		firstComponent := strings.Split(relSlash, "/")[0]
		for _, allowed := range allowedDirs {
			if strings.EqualFold(firstComponent, allowed) {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			log.Fatalf("❌ 安全配置错误: 静态资源目录 '%s' (解析为: '%s') 必须位于项目根目录下的安全子目录中 (如 %v)。\n这能防止意外暴露源代码或配置文件 (如 internal, cmd 等)。", path, relSlash, allowedDirs)
		}
	}
}
