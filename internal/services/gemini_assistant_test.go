package services

import (
	"testing"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/google/generative-ai-go/genai"
)

func TestSplitResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{
			genai.Text("Let me check. "),
			genai.FunctionCall{Name: ToolGetMeals, Args: map[string]any{"meal_type": "dinner"}},
		}},
	}}}

	text, calls := splitResponse(resp)
	if text != "Let me check." {
		t.Fatalf("unexpected text %q", text)
	}
	if len(calls) != 1 || calls[0].Name != ToolGetMeals || calls[0].Args["meal_type"] != "dinner" {
		t.Fatalf("unexpected calls: %+v", calls)
	}
}

func TestSplitResponseEmpty(t *testing.T) {
	text, calls := splitResponse(&genai.GenerateContentResponse{})
	if text != "" || calls != nil {
		t.Fatalf("expected nothing, got %q %+v", text, calls)
	}
}

func TestToGeminiHistoryRoles(t *testing.T) {
	got := toGeminiHistory([]models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "hi"},
		{Role: models.ChatRoleAssistant, Content: "hello"},
	})
	if len(got) != 2 || got[0].Role != "user" || got[1].Role != "model" {
		t.Fatalf("unexpected history: %+v", got)
	}
}

func TestChatbotToolsDeclareBothFunctions(t *testing.T) {
	tools := chatbotTools()
	if len(tools) != 1 || len(tools[0].FunctionDeclarations) != 2 {
		t.Fatalf("unexpected tools: %+v", tools)
	}
}
