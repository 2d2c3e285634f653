package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"studyblog/ai"
	"studyblog/api/router"
	"studyblog/config"
	"studyblog/db"
	_ "studyblog/docs" // swag generated package
	"studyblog/eventbus"
	"studyblog/logger"
	"studyblog/repositories"
	"studyblog/services"
)

// @title           StudyBlog API
// @version         1.0
// @description     AI-assisted study blog: post storage and writing assistance
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	var bus eventbus.Publisher = eventbus.NewNoopPublisher()
	if cfg.Kafka.BootstrapServers != "" {
		kafkaBus, err := eventbus.NewKafkaPublisher(cfg.Kafka.BootstrapServers)
		if err != nil {
			logger.Log.Warnf("kafka unavailable, lifecycle events disabled: %v", err)
		} else {
			bus = kafkaBus
		}
	}
	defer bus.Close()

	posts, err := services.NewPostServiceFromConfig(context.Background(), cfg.Storage, bus)
	if err != nil {
		log.Fatal(err)
	}

	factory := ai.NewFactory(cfg.AI)

	var recorder services.AILogRecorder
	if posts.Driver() == "mongo" {
		recorder = repositories.NewAILogRepository(db.Database())
	}
	assist := services.NewAssistService(factory, recorder)

	r := router.New(posts, assist, factory)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler(r)

	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
