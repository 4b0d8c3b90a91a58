package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp091 "github.com/rabbitmq/amqp091-go"

	"github.com/Ibrakam/Sales-Machine/internal/infra/database"
	"github.com/Ibrakam/Sales-Machine/internal/infra/http/handlers"
	"github.com/Ibrakam/Sales-Machine/internal/infra/http/middleware"
	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
	"github.com/Ibrakam/Sales-Machine/internal/infra/mail"
	"github.com/Ibrakam/Sales-Machine/internal/infra/queue"
	"github.com/Ibrakam/Sales-Machine/internal/infra/session"
	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

func main() {
	godotenv.Load()

	ctx := context.Background()

	// 1. Sessão (tokens persistidos entre execuções)
	tokenStore := session.NewStore(os.Getenv("SESSION_FILE"))

	// 2. Client do backend Sales Machine
	api := salesapi.NewClient(os.Getenv("SALES_API_URL"), tokenStore)

	// 3. Infra opcional: RabbitMQ (eventos) + Postgres (event log) + SMTP
	var events usecase.EventPublisherInterface
	var rabbitConn *queue.RabbitMQ
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbit, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível, eventos desligados: %v", err)
		} else {
			rabbitConn = rabbit
			defer rabbit.Conn.Close()
			defer rabbit.Ch.Close()
			events = queue.NewProducer(rabbit.Conn, rabbit.Ch)
		}
	}

	var db *sql.DB
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		conn, err := database.NewDBConnection(dsn)
		if err != nil {
			log.Printf("⚠️ Postgres indisponível, event log desligado: %v", err)
		} else {
			db = conn
			defer db.Close()
		}
	}

	// 4. Worker de notificações (só com RabbitMQ + SMTP configurados)
	if rabbitConn != nil && os.Getenv("MAIL_HOST") != "" {
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"), os.Getenv("NOTIFY_EMAIL"),
		)

		var eventLog queue.EventLogRepository
		if db != nil {
			eventLog = database.NewEventLogRepository(db)
		}

		worker := queue.NewWorker(rabbitConn.Ch, mailSender, eventLog)
		go worker.Start(queue.QueueName)
	}

	// 5. UseCases
	leadStore := usecase.NewLeadStore(api)
	coordinator := usecase.NewMutationCoordinator(api, leadStore, events)
	chatSession := usecase.NewChatSession(api, leadStore)
	instagram := usecase.NewInstagramManager(api, leadStore, events)
	sessionManager := usecase.NewSessionManager(api, tokenStore)

	// 6. Restore da sessão + bootstrap do workspace
	if user, err := sessionManager.Restore(ctx); err != nil {
		log.Printf("⚠️ Falha ao restaurar sessão: %v", err)
	} else if user != nil {
		if err := leadStore.LoadLeads(ctx); err == nil {
			middleware.RecordLeadReload()
		}
		instagram.Load(ctx)
	}

	// 7. Handlers
	authHandler := handlers.NewAuthHandler(sessionManager)
	dashboardHandler := handlers.NewDashboardHandler(leadStore)
	leadHandler := handlers.NewLeadHandler(leadStore, coordinator)
	chatHandler := handlers.NewChatHandler(chatSession)
	instagramHandler := handlers.NewInstagramHandler(instagram)
	var healthRabbit *amqp091.Connection
	if rabbitConn != nil {
		healthRabbit = rabbitConn.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, healthRabbit)

	// 8. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/auth/login", authHandler.HandleLogin)
	r.Post("/auth/logout", authHandler.HandleLogout)
	r.Post("/auth/refresh", authHandler.HandleRefresh)
	r.Get("/auth/me", authHandler.HandleMe)

	r.Get("/dashboard", dashboardHandler.HandleGet)
	r.Post("/dashboard/refresh", dashboardHandler.HandleRefresh)

	r.Post("/leads", leadHandler.HandleCreate)
	r.Post("/leads/quick", leadHandler.HandleQuickAdd)
	r.Get("/leads/selected", leadHandler.HandleSelected)
	r.Put("/leads/selected/draft", leadHandler.HandleDraft)
	r.Post("/leads/selected/save", leadHandler.HandleSaveDraft)
	r.Put("/leads/{id}", leadHandler.HandleUpdate)
	r.Delete("/leads/{id}", leadHandler.HandleDelete)
	r.Post("/leads/{id}/select", leadHandler.HandleSelect)
	r.Post("/leads/{id}/tags", leadHandler.HandleAddTag)
	r.Delete("/leads/{id}/tags/{tag}", leadHandler.HandleRemoveTag)
	r.Post("/leads/{id}/interactions", leadHandler.HandleCreateInteraction)

	r.Post("/chat", chatHandler.HandleSend)
	r.Get("/chat", chatHandler.HandleState)
	r.Post("/chat/reset", chatHandler.HandleReset)
	r.Post("/chat/context", chatHandler.HandleSetContext)

	r.Get("/instagram", instagramHandler.HandleGet)
	r.Post("/instagram", instagramHandler.HandleConnect)
	r.Put("/instagram", instagramHandler.HandleUpdate)
	r.Post("/instagram/sync", instagramHandler.HandleSync)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("LISTEN_ADDR")
	if port == "" {
		port = ":8080"
	}
	log.Printf("🔥 Sales Machine dashboard rodando na porta %s", port)
	http.ListenAndServe(port, r)
}
