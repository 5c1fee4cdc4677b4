package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raccoonfox/hide-and-seek/internal/config"
	"github.com/raccoonfox/hide-and-seek/internal/logger"
	"github.com/raccoonfox/hide-and-seek/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	logToFile := flag.Bool("logfile", false, "是否输出日志到文件")
	flag.Parse()

	if *logToFile {
		if err := logger.Init(); err != nil {
			log.Printf("初始化文件日志失败: %v", err)
		} else {
			defer logger.Close()
			log.Printf("日志文件: %s", logger.GetLogPath())
		}
	}

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	// 创建服务器
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("创建服务器失败: %v", err)
	}

	// 优雅关闭：等待进行中的对局结束
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("正在关闭服务器...")
		srv.GracefulShutdown(30 * time.Second)
		os.Exit(0)
	}()

	// 启动服务器
	log.Println("🎮 捉迷藏服务器启动中...")
	if err := srv.Start(); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
