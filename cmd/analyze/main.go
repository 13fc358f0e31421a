package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/m2tx/video_insights/internal/analyzer"
	"github.com/m2tx/video_insights/internal/config"
	"github.com/m2tx/video_insights/internal/notes"
	"github.com/m2tx/video_insights/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Fatal("create genai client", zap.Error(err))
	}

	var repo repository.ReportRepository
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Fatal("connect mongodb", zap.Error(err))
		}
		defer func() {
			if err := mongoClient.Disconnect(ctx); err != nil {
				logger.Warn("mongodb disconnect", zap.Error(err))
			}
		}()

		repo = repository.NewMongoReportRepository(mongoClient.Database(cfg.MongoDB), "reports")

		previous, err := repo.FindByVideo(ctx, cfg.VideoDisplayName)
		if err != nil {
			logger.Warn("load previous reports", zap.Error(err))
		} else if len(previous) > 0 {
			logger.Info("previous reports exist",
				zap.String("video", cfg.VideoDisplayName),
				zap.Int("count", len(previous)))
		}
	}

	analyzerCfg := analyzer.Config{
		Model:           cfg.Model,
		MIMEType:        cfg.VideoMIMEType,
		DisplayName:     cfg.VideoDisplayName,
		PollInterval:    cfg.PollInterval,
		MaxPollAttempts: cfg.MaxPollAttempts,
	}

	if cfg.NotesPath != "" {
		text, err := notes.Load(cfg.NotesPath)
		if err != nil {
			logger.Fatal("load notes", zap.Error(err))
		}
		analyzerCfg.Notes = text
	}

	a := analyzer.New(analyzer.NewFileService(client), analyzer.NewModelService(client), analyzerCfg, logger)

	report, err := a.Run(ctx, cfg.VideoPath)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	if report.Empty() {
		fmt.Println("no functions called")
	} else {
		out, err := json.MarshalIndent(report.Calls, "", "  ")
		if err != nil {
			logger.Fatal("encode report", zap.Error(err))
		}
		fmt.Println(string(out))
	}

	if repo != nil {
		if err := repo.Save(ctx, report); err != nil {
			logger.Error("save report", zap.Error(err))
		} else {
			logger.Info("report saved", zap.String("id", report.ID))
		}
	}
}
