package configwatcher

import (
	"log"
	"path/filepath"
	"time"

	"rhythm_coach_backend/internal/config"
	"rhythm_coach_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type ConfigReloader func(cfg interface{})

// WatchConfig 监听配置文件变更，写入后防抖 1 秒再重载。
// 编辑器保存常见是 rename+create，所以 Create 事件也触发重载。
func WatchConfig(configPath string, cfg interface{}, reloader ConfigReloader) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal("Failed to create config watcher:", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		log.Fatal("Failed to get absolute path:", err)
	}

	// 监听所在目录而不是文件本身，rename 后原 watch 会失效
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		log.Fatal("Failed to watch config dir:", err)
	}

	debounce := time.NewTimer(time.Hour)
	defer debounce.Stop()
	drain(debounce)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !debounce.Stop() {
				drain(debounce)
			}
			debounce.Reset(1 * time.Second)
		case <-debounce.C:
			newCfg, err := config.LoadConfig(filepath.Dir(configPath))
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			reloader(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}

// drain 清空可能已经到期的定时器通道，避免 Reset 前残留一次触发
func drain(t *time.Timer) {
	select {
	case <-t.C:
	default:
	}
}
