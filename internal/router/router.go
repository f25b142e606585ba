package router

import (
	"database/sql"
	"net/http"
	"time"

	"yield-ai/internal/adapters/inference/canned"
	"yield-ai/internal/adapters/notify/lognotifier"
	mem "yield-ai/internal/adapters/storage/memory"
	pg "yield-ai/internal/adapters/storage/postgres"
	"yield-ai/internal/adapters/storage/redisstore"
	_ "yield-ai/internal/docs"
	"yield-ai/internal/domain/breeders"
	"yield-ai/internal/domain/breeds"
	"yield-ai/internal/domain/chat"
	"yield-ai/internal/domain/contact"
	"yield-ai/internal/domain/content"
	"yield-ai/internal/domain/recognition"
	"yield-ai/internal/middleware"
	"yield-ai/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => nop

	// Opcional: si viene, catálogo y contacto van a Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene, las sesiones de chat van a Redis.
	Redis           *redis.Client
	RedisSessionTTL time.Duration

	// Opcionales: nil => filtro en memoria / respuestas canned / log.
	BreedIndex breeds.Index
	Responder  chat.Responder
	Classifier recognition.Classifier
	Notifier   contact.Notifier

	// Esperas simuladas. Cero => sin espera (tests).
	ChatDelay        time.Duration
	RecognitionDelay time.Duration
	ContactDelay     time.Duration

	MaxUploadBytes int64 // 0 => 10MB
}

// Router es el handler HTTP más los servicios que tienen trabajo en vuelo.
type Router struct {
	http.Handler

	chat        *chat.Service
	recognition *recognition.Service
}

// Shutdown cancela las respuestas de chat y los análisis pendientes.
func (rt *Router) Shutdown() {
	rt.chat.Shutdown()
	rt.recognition.Shutdown()
}

func NewRouter(opts Options) *Router {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics)
	r.Use(middleware.Recover(log)) // adentro de logger y métricas para que el 500 quede registrado

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		breedRepo   breeds.Repository
		breederRepo breeders.Repository
		contactRepo contact.Repository
		chatRepo    chat.Repository
	)

	if opts.DB != nil {
		breedRepo = pg.NewBreedsRepo(opts.DB)
		breederRepo = pg.NewBreedersRepo(opts.DB)
		contactRepo = pg.NewContactRepo(opts.DB)
	} else {
		breedRepo = mem.NewBreedRepo(breeds.Seed())
		breederRepo = mem.NewBreederRepo(breeders.Seed())
		contactRepo = mem.NewContactRepo()
	}

	if opts.Redis != nil {
		chatRepo = redisstore.NewChatRepo(opts.Redis, opts.RedisSessionTTL)
	} else {
		chatRepo = mem.NewChatRepo()
	}

	responder := opts.Responder
	if responder == nil {
		responder = canned.NewChatResponder(opts.ChatDelay)
	}
	classifier := opts.Classifier
	if classifier == nil {
		classifier = canned.NewClassifier(opts.RecognitionDelay)
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = lognotifier.New(log)
	}

	// Services por módulo
	breedsSvc := breeds.NewService(breedRepo, opts.BreedIndex, log)
	breedersSvc := breeders.NewService(breederRepo)
	chatSvc := chat.NewService(chatRepo, responder, log)
	recognitionSvc := recognition.NewService(mem.NewUploadRepo(), classifier, log, opts.MaxUploadBytes)
	contactSvc := contact.NewService(contactRepo, notifier, log, opts.ContactDelay)

	// Rutas por módulo
	breeds.RegisterRoutes(r, breedsSvc)
	breeders.RegisterRoutes(r, breedersSvc)
	chat.RegisterRoutes(r, chatSvc)
	recognition.RegisterRoutes(r, recognitionSvc)
	contact.RegisterRoutes(r, contactSvc)
	content.RegisterRoutes(r)

	return &Router{
		Handler:     r,
		chat:        chatSvc,
		recognition: recognitionSvc,
	}
}
