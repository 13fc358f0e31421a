package analyzer

import (
	"context"

	"google.golang.org/genai"
)

type genaiFiles struct {
	client *genai.Client
}

// NewFileService wraps a genai client as a FileService.
func NewFileService(client *genai.Client) FileService {
	return &genaiFiles{client: client}
}

func (s *genaiFiles) List(ctx context.Context) ([]*genai.File, error) {
	var files []*genai.File
	for file, err := range s.client.Files.All(ctx) {
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func (s *genaiFiles) Upload(ctx context.Context, path string, config *genai.UploadFileConfig) (*genai.File, error) {
	return s.client.Files.UploadFromPath(ctx, path, config)
}

func (s *genaiFiles) Get(ctx context.Context, name string) (*genai.File, error) {
	return s.client.Files.Get(ctx, name, nil)
}

type genaiModels struct {
	client *genai.Client
}

// NewModelService wraps a genai client as a ModelService.
func NewModelService(client *genai.Client) ModelService {
	return &genaiModels{client: client}
}

func (s *genaiModels) CountTokens(ctx context.Context, model string, contents []*genai.Content) (*genai.CountTokensResponse, error) {
	return s.client.Models.CountTokens(ctx, model, contents, nil)
}

func (s *genaiModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return s.client.Models.GenerateContent(ctx, model, contents, config)
}
