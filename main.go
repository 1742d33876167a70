// @title RhythmCoach 后端 API
// @version 1.0
// @description 音游谱面标注与个人能力诊断平台的后端服务器。
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"rhythm_coach_backend/internal/app"
	"rhythm_coach_backend/internal/config"
	"rhythm_coach_backend/pkg/configwatcher"
	"rhythm_coach_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置文件热更新监听
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		log.Println("config file reloaded")
	})

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
