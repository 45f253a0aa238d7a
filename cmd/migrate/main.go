package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"gestaocontratos/config"
	"gestaocontratos/internal/pkg/database"
)

// Aplica as migrações embutidas em migrations/. Uso: migrate [-driver sqlite] [up|down|status|version|...]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema: %v", err)
	}

	cfg := config.LoadConfig()

	var driver string
	flag.StringVar(&driver, "driver", cfg.DBDriver, "driver do banco (postgres ou sqlite)")
	flag.Parse()

	db, err := database.NewDB(driver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o DB: %v\n", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	if err := database.Migrate(db, driver, command, arguments[1:]...); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("goose %s: sucesso\n", command)
}
