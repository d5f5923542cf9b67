package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emojitrivia/internal/bank"
	"emojitrivia/internal/cache"
	"emojitrivia/internal/config"
	"emojitrivia/internal/game"
	"emojitrivia/internal/model"
	"emojitrivia/internal/repository"
	"emojitrivia/internal/transport/rest"
	"emojitrivia/internal/transport/ws"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("started")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Question bank: MongoDB when configured, otherwise the JSON file.
	// An empty bank is a configuration error and aborts startup.
	var items []model.TriviaItem
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		defer pingCancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB:", err)
		}

		triviaRepo := repository.NewTriviaRepo(mongoClient.Database("emojitrivia"))
		items, err = triviaRepo.GetAll(ctx)
		if err != nil {
			log.Fatal("Failed to load questions from MongoDB:", err)
		}
		log.Printf("Loaded %d trivia items from MongoDB", len(items))
	} else {
		var err error
		items, err = bank.LoadFile(cfg.QuestionFile)
		if err != nil {
			log.Fatal("Failed to load question file:", err)
		}
		log.Printf("Loaded %d trivia items from %s", len(items), cfg.QuestionFile)
	}

	questionBank, err := bank.New(items)
	if err != nil {
		log.Fatal("Question bank:", err)
	}

	wsHub := ws.NewHub()
	session := game.NewSession(game.DefaultConfig(), questionBank)
	session.SetSender(wsHub)
	wsHub.SetGame(session)

	// Optional Redis leaderboard mirror.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis")

		leaderboard := cache.NewLeaderboardCache(rdb)
		if err := leaderboard.Clear(ctx); err != nil {
			log.Printf("Failed to clear leaderboard mirror: %v", err)
		}
		session.SetScoreSink(leaderboard)
	} else {
		log.Println("REDIS_ADDR not set, leaderboard mirror disabled")
	}

	go session.Run(ctx)

	router := rest.NewRouter(&rest.Container{
		Session: session,
		WSHub:   wsHub,
		Config:  cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  WS   /ws")
		log.Println("  GET  /v1/leaderboard")
		log.Println("  GET  /v1/join/qr")
		log.Println("  GET  /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
