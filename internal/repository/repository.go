package repository

import (
	"context"

	"github.com/m2tx/video_insights/internal/model"
)

// ReportRepository defines persistence operations for analysis reports.
type ReportRepository interface {
	// Save persists a report. Saving the same report ID twice replaces the
	// previously stored document.
	Save(ctx context.Context, report *model.AnalysisReport) error

	// FindByVideo retrieves all stored reports for a video display name,
	// newest first. Returns nil, nil if none exist.
	FindByVideo(ctx context.Context, video string) ([]model.AnalysisReport, error)

	// Delete removes a stored report by ID. Is a no-op if the report does
	// not exist.
	Delete(ctx context.Context, id string) error
}
