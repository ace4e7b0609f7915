package main

import (
	"log"
	"net/http"
	"os"

	"github.com/modashop/go-catalog/app/cmd"
	"github.com/modashop/go-catalog/app/configs"
	"github.com/modashop/go-catalog/app/routes"
	"github.com/modashop/go-catalog/app/utils/sessions"
	"go.uber.org/zap"
)

func main() {
	logger, err := configs.InitLogger()
	if err != nil {
		log.Fatal("logger init failed:", err)
	}
	defer logger.Sync()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		zap.S().Fatalw("session keys", "error", err)
	}
	store := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	db, err := configs.OpenConnection()
	if err != nil {
		zap.S().Fatalw("database connection failed", "error", err)
	}
	zap.S().Info("database connected")

	router := routes.NewRouter(db, store)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	zap.S().Infow("server starting", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		zap.S().Errorw("server stopped", "error", err)
	}
}
