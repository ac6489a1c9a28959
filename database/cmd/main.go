package main

import (
	"flag"
	"fmt"
	"os"

	"formbuilder.link/configs"
	"formbuilder.link/configs/configsdatabase"
	"formbuilder.link/configs/configslog"
	"formbuilder.link/database"
	"formbuilder.link/middlewares"

	"go.uber.org/zap"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	hashKey := flag.String("hash-key", "", "Verilen yönetim anahtarı için ADMIN_API_KEY_HASH değerini yazdır")
	flag.Parse()

	if *hashKey != "" {
		hashed, err := middlewares.HashAdminKey(*hashKey)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hash üretilemedi:", err)
			os.Exit(1)
		}
		fmt.Println(hashed)
		return
	}

	_ = configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	db, err := configsdatabase.InitDB()
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	defer configsdatabase.CloseDB(db)

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	if err := database.Initialize(db, *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız", zap.Error(err))
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
