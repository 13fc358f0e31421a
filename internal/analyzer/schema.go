package analyzer

import "google.golang.org/genai"

// DefaultPrompt is the instruction sent alongside the video. The model is
// forced into function-calling mode, so the prompt only describes what each
// extraction should contain.
const DefaultPrompt = `Watch the video carefully and record your findings by calling the provided functions. ` +
	`Set a concise, compelling title. Write a summary covering the main points. ` +
	`Break the video into chapters with a timestamp (mm:ss or hh:mm:ss), a short title, and a description for each. ` +
	`Choose tags that would help someone find this video. ` +
	`Finally, write a complete blog post based on the video's content.`

func tools() []*genai.Tool {
	return []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				titleDeclaration(),
				summaryDeclaration(),
				chaptersDeclaration(),
				tagsDeclaration(),
				blogPostDeclaration(),
			},
		},
	}
}

func titleDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "set_video_title",
		Description: "Records a concise, compelling title for the video",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title": {
					Type:        genai.TypeString,
					Description: "The title, at most 100 characters",
				},
			},
			Required: []string{"title"},
		},
	}
}

func summaryDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "set_video_summary",
		Description: "Records a summary of the video's content",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary": {
					Type:        genai.TypeString,
					Description: "A few paragraphs covering the main points of the video",
				},
			},
			Required: []string{"summary"},
		},
	}
}

func chaptersDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "set_video_chapters",
		Description: "Records chapter markers dividing the video into sections",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"chapters": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"timestamp": {
								Type:        genai.TypeString,
								Description: "Chapter start time, mm:ss or hh:mm:ss",
							},
							"title": {
								Type:        genai.TypeString,
								Description: "Short chapter title",
							},
							"description": {
								Type:        genai.TypeString,
								Description: "One or two sentences about the chapter",
							},
						},
						Required: []string{"timestamp", "title"},
					},
				},
			},
			Required: []string{"chapters"},
		},
	}
}

func tagsDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "set_video_tags",
		Description: "Records topic tags for discovery and categorization",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"tags": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type:        genai.TypeString,
						Description: "A single lowercase tag",
					},
				},
			},
			Required: []string{"tags"},
		},
	}
}

func blogPostDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "write_blog_post",
		Description: "Records a blog post based on the video's content",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title": {
					Type:        genai.TypeString,
					Description: "Blog post title",
				},
				"content": {
					Type:        genai.TypeString,
					Description: "The full blog post in Markdown",
				},
			},
			Required: []string{"title", "content"},
		},
	}
}

func safetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	}
}
