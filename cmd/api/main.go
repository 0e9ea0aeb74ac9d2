package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/expo-visitors/internal/infra/auth"
	"github.com/xavierca1/expo-visitors/internal/infra/database"
	"github.com/xavierca1/expo-visitors/internal/infra/http/handlers"
	"github.com/xavierca1/expo-visitors/internal/infra/http/middleware"
	"github.com/xavierca1/expo-visitors/internal/infra/mail"
	"github.com/xavierca1/expo-visitors/internal/infra/queue"
	"github.com/xavierca1/expo-visitors/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no Postgres: %v", err)
	}
	defer db.Close()

	// RabbitMQ é infraestrutura do lembrete de follow-up, que é best-effort:
	// sem broker o registro de visitors continua funcionando normalmente.
	var rabbitConn *amqp.Connection
	var producer *queue.RabbitMQProducer

	rabbitMQ, err := queue.NewRabbitMQ(
		getEnv("RABBITMQ_USER", "guest"),
		getEnv("RABBITMQ_PASS", "guest"),
		getEnv("RABBITMQ_HOST", "localhost"),
		getEnv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Printf("⚠️ RabbitMQ indisponível, lembretes de follow-up desativados: %v", err)
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	}

	// 1. Repositórios
	visitorRepo := database.NewVisitorRepository(db)
	leadRepo := database.NewLeadRepository(db)
	employeeRepo := database.NewEmployeeRepository(db)
	companyRepo := database.NewCompanyRepository(db)

	// 2. UseCases
	var queueProducer usecase.QueueProducerInterface
	if producer != nil {
		queueProducer = producer
	}
	attachLeadUC := usecase.NewAttachLeadUseCase(employeeRepo, leadRepo, queueProducer)
	registerVisitorUC := usecase.NewRegisterVisitorUseCase(visitorRepo, attachLeadUC)

	// 3. Handlers
	tokens := auth.NewTokenManager(getEnv("JWT_SECRET", "dev-secret"), 24*time.Hour)
	visitorHandler := handlers.NewVisitorHandler(registerVisitorUC, visitorRepo, leadRepo)
	userHandler := handlers.NewUserHandler(employeeRepo, companyRepo, tokens)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/visitors", func(r chi.Router) {
		r.Get("/check-phone/{phone}", visitorHandler.HandleCheckPhone)
		r.Get("/phone-suggestions/{partialPhone}", visitorHandler.HandlePhoneSuggestions)
		r.Get("/exists/{phone}", visitorHandler.HandleExists)
		r.Post("/", visitorHandler.HandleRegister)
		r.Get("/{id}", visitorHandler.HandleGetByID)
		r.Get("/{id}/leads", visitorHandler.HandleListLeads)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", userHandler.HandleRegister)
		r.Post("/login", userHandler.HandleLogin)
		r.Get("/{id}", userHandler.HandleGetByID)
	})

	port := ":" + getEnv("SERVER_PORT", "8080")
	log.Printf("🔥 Expo Visitors API rodando na porta %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
