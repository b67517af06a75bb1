package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"google.golang.org/api/option"

	"jambanganBack/internal/config"
	"jambanganBack/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	cfg := config.LoadConfig()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Address
	} else {
		port = ":" + port
	}
	if port == "" {
		port = ":4001"
	}

	addr := flag.String("addr", port, "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	db, err := openDB(cfg.Database.URL)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer db.Close()

	tokenManager, err := utils.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	if err != nil {
		errorLog.Fatal(err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			errorLog.Printf("redis unavailable, continuing without it: %v", err)
			redisClient = nil
		}
	}

	var firebaseApp *firebase.App
	if cfg.Firebase.CredentialsFile != "" {
		firebaseApp, err = firebase.NewApp(context.Background(), nil,
			option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
		if err != nil {
			errorLog.Printf("firebase unavailable, continuing without it: %v", err)
			firebaseApp = nil
		}
	}

	app := initializeApp(appDeps{
		db:           db,
		cfg:          cfg,
		redisClient:  redisClient,
		firebaseApp:  firebaseApp,
		tokenManager: tokenManager,
		errorLog:     errorLog,
		infoLog:      infoLog,
	})

	go app.wsManager.Run()

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})

	srv := &http.Server{
		Addr:         *addr,
		ErrorLog:     errorLog,
		Handler:      addSecurityHeaders(c.Handler(app.routes())),
		IdleTimeout:  time.Minute,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	infoLog.Printf("Starting server on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}
