package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// maxToolRounds bounds how many tool-call round trips one reply may take.
const maxToolRounds = 3

type GeminiAssistant struct {
	client    *genai.Client
	modelName string
}

func NewGeminiAssistant(ctx context.Context, apiKey, modelName string) (*GeminiAssistant, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAssistant{client: client, modelName: modelName}, nil
}

func (g *GeminiAssistant) Close() error {
	return g.client.Close()
}

func (g *GeminiAssistant) Reply(ctx context.Context, conv Conversation, tools ToolExecutor) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0.7)
	model.SystemInstruction = genai.NewUserContent(genai.Text(conv.System))
	model.Tools = chatbotTools()

	cs := model.StartChat()
	cs.History = toGeminiHistory(conv.History)

	parts := []genai.Part{genai.Text(conv.Message)}
	for round := 0; ; round++ {
		resp, err := cs.SendMessage(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("failed to generate content: %w", err)
		}

		text, calls := splitResponse(resp)
		if len(calls) == 0 {
			return text, nil
		}
		if round >= maxToolRounds {
			if text != "" {
				return text, nil
			}
			return "", errors.New("too many tool calls")
		}

		parts = make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			out, err := tools.Call(ctx, call.Name, call.Args)
			if err != nil {
				out = "Error: " + err.Error()
			}
			parts = append(parts, genai.FunctionResponse{
				Name:     call.Name,
				Response: map[string]any{"result": out},
			})
		}
	}
}

func chatbotTools() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        ToolGetMeals,
				Description: "Get meal suggestions from the CUFIT recipe catalog.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"diet_selection":  {Type: genai.TypeString, Description: "The user's diet selection."},
						"diet_preference": {Type: genai.TypeString, Description: "The user's diet preference."},
						"meal_type":       {Type: genai.TypeString, Description: "breakfast, lunch, dinner or snacks."},
					},
				},
			},
			{
				Name:        ToolGetExercises,
				Description: "Get exercises from the CUFIT exercise library.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"difficulty":   {Type: genai.TypeString, Description: "Beginner, Intermediate or Advanced."},
						"impact_level": {Type: genai.TypeString, Description: "Low, Medium or High."},
					},
				},
			},
		},
	}}
}

func toGeminiHistory(history []models.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == models.ChatRoleAssistant {
			role = "model"
		}
		out = append(out, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(msg.Content)}})
	}
	return out
}

func splitResponse(resp *genai.GenerateContentResponse) (string, []genai.FunctionCall) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var text strings.Builder
	var calls []genai.FunctionCall
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			text.WriteString(string(p))
		case genai.FunctionCall:
			calls = append(calls, p)
		case *genai.FunctionCall:
			calls = append(calls, *p)
		}
	}
	return strings.TrimSpace(text.String()), calls
}
