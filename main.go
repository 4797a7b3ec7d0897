package main

import (
	"log"
	"net/http"
	"os"

	"github.com/fitfinder/fitfinder/app/cmd"
	"github.com/fitfinder/fitfinder/app/configs"
	"github.com/fitfinder/fitfinder/app/routes"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadEnv()

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		log.Fatalf("Session keys not usable: %v (run `fitfinder generate-keys`)", err)
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	router := routes.NewRouter(db, env, keys)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
