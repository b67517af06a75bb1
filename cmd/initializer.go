package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	firebase "firebase.google.com/go"
	"github.com/redis/go-redis/v9"

	"jambanganBack/internal/config"
	"jambanganBack/internal/handlers"
	"jambanganBack/internal/repositories"
	"jambanganBack/internal/services"
	"jambanganBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	tokenManager *utils.Manager
	denylist     *repositories.TokenDenylist
	wsManager    *WebSocketManager

	userHandler      *handlers.UserHandler
	complaintHandler *handlers.ComplaintHandler
	responseHandler  *handlers.ResponseHandler
	mapHandler       *handlers.MapHandler
	umkmHandler      *handlers.UmkmHandler
	uploadHandler    *handlers.UploadHandler
	notifyHandler    *handlers.NotifyHandler
}

type appDeps struct {
	db           *sql.DB
	cfg          config.Config
	redisClient  *redis.Client
	firebaseApp  *firebase.App
	tokenManager *utils.Manager
	errorLog     *log.Logger
	infoLog      *log.Logger
}

func initializeApp(deps appDeps) *application {
	storage := newFileStorage(deps.cfg)

	var denylist *repositories.TokenDenylist
	if deps.redisClient != nil {
		denylist = &repositories.TokenDenylist{Client: deps.redisClient}
	}

	wsManager := NewWebSocketManager()

	// Repositories
	userRepo := repositories.UserRepository{DB: deps.db}
	complaintRepo := repositories.ComplaintRepository{DB: deps.db}
	responseRepo := repositories.ResponseRepository{DB: deps.db}
	mapRepo := repositories.MapRepository{DB: deps.db}
	umkmRepo := repositories.UmkmRepository{DB: deps.db}
	notifyRepo := repositories.NotifyTokenRepository{DB: deps.db}

	// Services
	notifyService := &services.NotifyService{NotifyRepo: &notifyRepo}
	if deps.firebaseApp != nil {
		client, err := deps.firebaseApp.Messaging(context.Background())
		if err != nil {
			deps.errorLog.Printf("firebase messaging init: %v", err)
		} else {
			notifyService.Client = client
		}
	}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: deps.tokenManager,
		Denylist:     denylist,
	}
	complaintService := &services.ComplaintService{
		ComplaintRepo: &complaintRepo,
		Cache:         deps.redisClient,
	}
	responseService := &services.ResponseService{
		ResponseRepo:  &responseRepo,
		ComplaintRepo: &complaintRepo,
		Notify:        notifyService,
	}
	mapService := &services.MapService{MapRepo: &mapRepo}
	umkmService := &services.UmkmService{UmkmRepo: &umkmRepo}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService, TokenTTL: deps.tokenManager.TTL()}
	complaintHandler := &handlers.ComplaintHandler{Service: complaintService, Storage: storage, Events: wsManager}
	responseHandler := &handlers.ResponseHandler{Service: responseService, Storage: storage, Events: wsManager}
	mapHandler := &handlers.MapHandler{Service: mapService}
	umkmHandler := &handlers.UmkmHandler{Service: umkmService, Storage: storage}
	uploadHandler := &handlers.UploadHandler{Dir: deps.cfg.Storage.LocalDir}
	notifyHandler := &handlers.NotifyHandler{Service: notifyService}

	return &application{
		errorLog:         deps.errorLog,
		infoLog:          deps.infoLog,
		db:               deps.db,
		tokenManager:     deps.tokenManager,
		denylist:         denylist,
		wsManager:        wsManager,
		userHandler:      userHandler,
		complaintHandler: complaintHandler,
		responseHandler:  responseHandler,
		mapHandler:       mapHandler,
		umkmHandler:      umkmHandler,
		uploadHandler:    uploadHandler,
		notifyHandler:    notifyHandler,
	}
}

func newFileStorage(cfg config.Config) utils.FileStorage {
	if cfg.Storage.Backend == "s3" {
		return &utils.S3Storage{
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
			Bucket:    cfg.Storage.S3.Bucket,
			Region:    cfg.Storage.S3.Region,
			Endpoint:  cfg.Storage.S3.Endpoint,
		}
	}
	return &utils.LocalStorage{Dir: cfg.Storage.LocalDir}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	db.SetMaxOpenConns(100)
	db.SetConnMaxLifetime(5 * time.Minute)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
		next.ServeHTTP(w, r)
	})
}
