package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"formbuilder.link/configs"
	"formbuilder.link/configs/configsdatabase"
	"formbuilder.link/configs/configslog"
	"formbuilder.link/database"
	"formbuilder.link/routes"

	"go.uber.org/zap"
)

func main() {
	if err := configs.LoadEnv(); err != nil {
		// Logger henüz hazır değil
		os.Stderr.WriteString(".env yüklenemedi: " + err.Error() + "\n")
	}
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadAppConfig()

	db, err := configsdatabase.InitDB()
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	defer func() {
		if err := configsdatabase.CloseDB(db); err != nil {
			configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		}
	}()

	if cfg.AutoMigrate {
		if err := database.Initialize(db, true, true); err != nil {
			configslog.Log.Fatal("Veritabanı başlatılamadı", zap.Error(err))
		}
	}

	app := routes.NewApp(cfg)
	routes.SetupRoutes(app, db, cfg)

	errChan := make(chan error, 1)
	go func() {
		configslog.SLog.Infof("Sunucu başlatılıyor: %s", cfg.Addr())
		errChan <- app.Listen(cfg.Addr())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		if err != nil {
			configslog.Log.Error("Sunucu durdu", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
	}
}
