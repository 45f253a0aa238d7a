package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	// Nossos pacotes de infraestrutura e utilitários
	"gestaocontratos/config"
	"gestaocontratos/internal/pkg/cache"
	"gestaocontratos/internal/pkg/database"
	"gestaocontratos/internal/pkg/feed"
	"gestaocontratos/internal/pkg/logger"
	"gestaocontratos/internal/pkg/scheduler"

	// Camadas para Injeção de Dependências
	"gestaocontratos/internal/api/contrato"
	"gestaocontratos/internal/api/exportacao"
	"gestaocontratos/internal/api/painel"
	"gestaocontratos/internal/api/router"
	"gestaocontratos/internal/repository/contratorepo"
	"gestaocontratos/internal/service/contratoservice"
	"gestaocontratos/internal/service/painelservice"
	"gestaocontratos/internal/web"
)

// @title Gestão de Contratos API
// @version 1.0
// @description Contratos de manutenção de elevadores e plataformas: cadastro, painel e exportações.
// @BasePath /v1
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço de Gestão de Contratos...")
	if err := godotenv.Load(); err != nil {
		// As variáveis podem vir do ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "db_driver": cfg.DBDriver})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL ou SQLite), já migrado
	db, err := database.NewDB(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	if err := database.Migrate(db, cfg.DBDriver, "up"); err != nil {
		log.Fatal("Falha ao aplicar migrações.", err)
	}
	log.Info("Banco de dados pronto.", nil)

	// B. Cache e pub/sub (Redis). Sem Redis a instância segue sozinha, com cache em memória.
	var cacheClient cache.Client
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Warn("Redis indisponível; usando cache em memória.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		cacheClient = cache.NewMemoryClient()
	} else {
		defer redisClient.Close()
		cacheClient = redisClient
		log.Info("Conexão Redis estabelecida.", nil)
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Feed -> Handler

	contratoRepo := contratorepo.NewContratoRepository(db, cfg.DBDriver, cacheClient, cfg.CacheTTL, cfg.DBTimeout, log)
	log.Debug("Repositório de Contrato inicializado.", nil)

	contratoSvc := contratoservice.NewService(contratoRepo, log)
	log.Debug("Serviço de Contrato inicializado.", nil)

	// O feed relê a coleção pelo serviço e é avisado por ele a cada escrita.
	broker := feed.NewBroker(contratoSvc, cacheClient, log)
	contratoSvc.SetNotifier(broker)
	if err := broker.Listen(ctx); err != nil {
		log.Warn("Falha ao escutar alterações de outras instâncias.", map[string]interface{}{"error": err.Error()})
	}

	painelSvc := painelservice.NewService(contratoSvc, broker, log)
	log.Debug("Serviço de Painel inicializado.", nil)

	agendador, err := scheduler.New(broker, log)
	if err != nil {
		log.Fatal("Falha ao configurar agendador.", err)
	}
	agendador.Start()
	defer agendador.Stop()

	contratoHandler := contrato.NewHandler(contratoSvc, log)
	painelHandler := painel.NewHandler(painelSvc, log)
	exportHandler := exportacao.NewHandler(contratoSvc, log)
	webHandler, err := web.NewHandler(contratoSvc, painelSvc, log)
	if err != nil {
		log.Fatal("Falha ao carregar templates.", err)
	}
	log.Debug("Handlers inicializados.", nil)

	// Métricas do processo, do pool de conexões e das requisições em /metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.DBDriver),
	)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(contratoHandler, painelHandler, exportHandler, webHandler, cacheClient, cfg, reg, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second, // o stream do painel remove o prazo da própria conexão
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	// Encerrar o contexto base derruba os streams abertos; sem isso o Shutdown esperaria por eles.
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
