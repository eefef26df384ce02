package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/api/handler"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/api/router"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/auth"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/config"
	appLogger "github.com/realrohitsingh/Resume-Screening-Tool/internal/logger"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/matching"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/processor"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/ratelimit"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/storage"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/vocabulary"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	appLogger.Init(appLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	glog.SetLogger(hertzadapter.From(appLogger.Logger))
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化存储失败: %v", err)
	}
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	vocab := vocabulary.Load(cfg.Skills)
	glog.Infof("技能词表加载成功，共 %d 项", vocab.Len())

	pdfExtractor, err := parser.NewEinoPDFTextExtractor(ctx,
		parser.WithTimeout(config.GetDuration(cfg.Upload.PDFTimeout, 30*time.Second)),
	)
	if err != nil {
		glog.Fatalf("创建PDF提取器失败: %v", err)
	}
	textExtractor := parser.NewTextExtractor(pdfExtractor)
	glog.Info("文本提取器初始化成功")

	resumeExtractor := processor.NewResumeExtractor(
		[]processor.ComponentOpt{
			processor.WithVocabulary(vocab),
		},
		[]processor.SettingOpt{
			processor.WithDebug(cfg.Logger.Level == "debug"),
		},
	)
	glog.Info("简历字段抽取器初始化成功")

	engine := matching.NewEngine(vocab, storageManager.Jobs, storageManager.Cache)
	glog.Info("匹配引擎初始化成功")

	hasher := auth.NewHasher(cfg.Auth.PBKDF2Iterations)

	var limiter *ratelimit.TokenBucket
	if cfg.Upload.RateLimitQPM > 0 {
		limiter = ratelimit.NewTokenBucket(cfg.Upload.RateLimitQPM, cfg.Upload.RateLimitBurst)
		glog.Infof("简历分析限流开启: %d QPM", cfg.Upload.RateLimitQPM)
	}

	analysisHandler := handler.NewAnalysisHandler(cfg, storageManager, textExtractor, resumeExtractor, engine, limiter)
	jobHandler := handler.NewJobHandler(storageManager)
	authHandler := handler.NewAuthHandler(storageManager.Users, hasher)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, analysisHandler, jobHandler, authHandler)
	glog.Info("HTTP路由注册成功")

	go func() {
		glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}
