package analyzer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/m2tx/video_insights/internal/model"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// FileService is the subset of the Gemini file API the analyzer depends on.
// Narrow interfaces keep the genai client out of tests.
type FileService interface {
	// List returns all files currently registered with the service.
	List(ctx context.Context) ([]*genai.File, error)

	// Upload registers a local file and returns its remote handle.
	Upload(ctx context.Context, path string, config *genai.UploadFileConfig) (*genai.File, error)

	// Get fetches the current metadata of a remote file by name.
	Get(ctx context.Context, name string) (*genai.File, error)
}

// ModelService is the subset of the Gemini model API the analyzer depends on.
type ModelService interface {
	CountTokens(ctx context.Context, model string, contents []*genai.Content) (*genai.CountTokensResponse, error)
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config carries everything that used to be hardcoded in the request payload:
// generation parameters, the prompt, the video identity, and the poll budget.
type Config struct {
	Model           string
	Prompt          string
	Notes           string
	MIMEType        string
	DisplayName     string
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
	PollInterval    time.Duration
	MaxPollAttempts int
}

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = "gemini-2.5-flash"
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.MIMEType == "" {
		c.MIMEType = "video/mp4"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.4
	}
	if c.TopK == 0 {
		c.TopK = 32
	}
	if c.TopP == 0 {
		c.TopP = 0.95
	}
	if c.MaxOutputTokens == 0 {
		c.MaxOutputTokens = 8192
	}
	if c.PollInterval == 0 {
		c.PollInterval = 5 * time.Second
	}
	if c.MaxPollAttempts == 0 {
		c.MaxPollAttempts = 120
	}
	return c
}

// Analyzer drives the upload-or-reuse, wait-for-ready, generate workflow.
type Analyzer struct {
	files    FileService
	models   ModelService
	cfg      Config
	logger   *zap.Logger
	progress io.Writer
}

// New creates an Analyzer. A nil logger disables logging.
func New(files FileService, models ModelService, cfg Config, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		files:    files,
		models:   models,
		cfg:      cfg.withDefaults(),
		logger:   logger,
		progress: os.Stdout,
	}
}

// SetProgress redirects the per-poll progress dots. Defaults to stdout.
func (a *Analyzer) SetProgress(w io.Writer) {
	a.progress = w
}

// Run executes the full workflow once: resolve the remote file, wait for it
// to become active, then generate the report.
func (a *Analyzer) Run(ctx context.Context, localPath string) (*model.AnalysisReport, error) {
	file, err := a.ResolveRemoteFile(ctx, localPath)
	if err != nil {
		return nil, err
	}

	file, err = a.AwaitReady(ctx, file)
	if err != nil {
		return nil, err
	}

	return a.Generate(ctx, file)
}

// ResolveRemoteFile returns the remote handle for the video. A previously
// uploaded file with the configured display name is reused without a fresh
// upload; otherwise the local file is uploaded. Reused files are not assumed
// to be ready, callers establish that through AwaitReady.
func (a *Analyzer) ResolveRemoteFile(ctx context.Context, localPath string) (*genai.File, error) {
	existing, err := a.files.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyzer: list files: %w", err)
	}

	for _, f := range existing {
		if f.DisplayName == a.cfg.DisplayName {
			a.logger.Info("reusing remote file",
				zap.String("name", f.Name),
				zap.String("state", string(f.State)))
			return f, nil
		}
	}

	a.logger.Info("uploading video",
		zap.String("path", localPath),
		zap.String("display_name", a.cfg.DisplayName),
		zap.String("mime_type", a.cfg.MIMEType))

	file, err := a.files.Upload(ctx, localPath, &genai.UploadFileConfig{
		MIMEType:    a.cfg.MIMEType,
		DisplayName: a.cfg.DisplayName,
	})
	if err != nil {
		return nil, &UploadError{Path: localPath, Err: err}
	}

	return file, nil
}

// AwaitReady blocks until the remote file leaves the processing state,
// re-fetching its metadata once per poll interval. It returns immediately
// without a fetch if the file is already active. The wait is bounded by the
// configured attempt budget and by ctx.
func (a *Analyzer) AwaitReady(ctx context.Context, file *genai.File) (*genai.File, error) {
	name := file.Name

	for attempt := 0; file.State == genai.FileStateProcessing; attempt++ {
		if attempt >= a.cfg.MaxPollAttempts {
			return nil, &PollTimeoutError{Name: name, Attempts: attempt}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(a.cfg.PollInterval):
		}

		fmt.Fprint(a.progress, ".")

		next, err := a.files.Get(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("analyzer: poll file %q: %w", name, err)
		}
		file = next
	}

	if file.State == genai.FileStateFailed {
		var msg string
		if file.Error != nil {
			msg = file.Error.Message
		}
		return nil, &ProcessingFailedError{Name: name, Message: msg}
	}

	a.logger.Info("remote file ready", zap.String("name", name), zap.String("uri", file.URI))
	return file, nil
}

// Generate submits the generation request for an active remote file. The
// token count is fetched first for reporting only. A response without any
// function calls yields an empty report, not an error.
func (a *Analyzer) Generate(ctx context.Context, file *genai.File) (*model.AnalysisReport, error) {
	prompt := a.cfg.Prompt
	if a.cfg.Notes != "" {
		prompt += "\n\nAdditional context from the speaker's notes:\n" + a.cfg.Notes
	}

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{FileData: &genai.FileData{FileURI: file.URI, MIMEType: file.MIMEType}},
				{Text: prompt},
			},
		},
	}

	report := &model.AnalysisReport{
		ID:        uuid.NewString(),
		Video:     a.cfg.DisplayName,
		FileURI:   file.URI,
		MIMEType:  file.MIMEType,
		Model:     a.cfg.Model,
		CreatedAt: time.Now().UTC(),
	}

	count, err := a.models.CountTokens(ctx, a.cfg.Model, contents)
	if err != nil {
		return nil, &GenerationError{Stage: "count-tokens", Err: err}
	}
	report.TokenCount = count.TotalTokens
	a.logger.Info("token count", zap.Int32("total_tokens", count.TotalTokens))

	resp, err := a.models.GenerateContent(ctx, a.cfg.Model, contents, a.generateConfig())
	if err != nil {
		return nil, &GenerationError{Stage: "generate", Err: err}
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.FunctionCall != nil {
				report.Calls = append(report.Calls, model.FunctionCall{
					Name: part.FunctionCall.Name,
					Args: part.FunctionCall.Args,
				})
			}
		}
	}

	return report, nil
}

func (a *Analyzer) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(a.cfg.Temperature),
		TopK:            genai.Ptr(a.cfg.TopK),
		TopP:            genai.Ptr(a.cfg.TopP),
		MaxOutputTokens: a.cfg.MaxOutputTokens,
		SafetySettings:  safetySettings(),
		Tools:           tools(),
		ToolConfig: &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAny,
			},
		},
	}
}
