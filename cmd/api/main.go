package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/pos-backoffice/internal/application/auth"
	"github.com/tu-usuario/pos-backoffice/internal/application/member"
	"github.com/tu-usuario/pos-backoffice/internal/application/shop"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
	"github.com/tu-usuario/pos-backoffice/internal/infrastructure/memory"
	"github.com/tu-usuario/pos-backoffice/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-backoffice/internal/infrastructure/postgres"
	"github.com/tu-usuario/pos-backoffice/internal/infrastructure/stockapi"
	httpRouter "github.com/tu-usuario/pos-backoffice/internal/interfaces/http"
	"github.com/tu-usuario/pos-backoffice/pkg/config"
	"github.com/tu-usuario/pos-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("stock_source", cfg.Stock.Mode).
		Str("member_store", cfg.Members.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// El pool solo se abre si alguna variante lo necesita.
	var pool *pgxpool.Pool
	needsDB := cfg.Stock.Mode == config.StockModePostgres || cfg.Members.Store == config.MemberStorePostgres
	if needsDB {
		p, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer p.Close()
		pool = p
	}

	// Stock Source según el modo configurado.
	var stockSrc shop.StockSource
	switch cfg.Stock.Mode {
	case config.StockModeAPI:
		stockSrc = stockapi.NewClient(cfg.Stock.APIBaseURL, time.Duration(cfg.Stock.TimeoutSeconds)*time.Second)
	case config.StockModePostgres:
		stockSrc = postgres.NewStockSource(pool)
	default:
		stockSrc = memory.NewSeededStockSource()
	}

	// Directorio de miembros según el almacén configurado.
	var memberRepo repository.MemberRepository
	if cfg.Members.Store == config.MemberStorePostgres {
		memberRepo = postgres.NewMemberRepository(pool)
	} else {
		repo := memory.NewMemberRepository()
		repo.Seed(cfg.Members.Seed)
		memberRepo = repo
	}

	sessions := shop.NewSessions(stockSrc)
	memberUC := member.NewUseCase(memberRepo)
	authUC := auth.NewUseCase(auth.Config{
		OperatorEmail: cfg.Auth.OperatorEmail,
		PasswordHash:  cfg.Auth.PasswordHash,
		JWTSecret:     cfg.Auth.JWTSecret,
		JWTExpMinutes: cfg.Auth.JWTExpMinutes,
		JWTIssuer:     cfg.Auth.JWTIssuer,
	}, sessions)
	receipts := pdf.NewReceiptGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		MemberUC:  memberUC,
		Sessions:  sessions,
		Receipts:  receipts,
		JWTSecret: cfg.Auth.JWTSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
