package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"

	"prism-backend/internal/llm"
)

type fakeModels struct {
	calls    int
	model    string
	contents []*genai.Content
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.contents = contents
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func TestCompleteSendsSingleUserTurn(t *testing.T) {
	fake := &fakeModels{resp: textResponse(`{"html":"<h1>Jane</h1>","css":"","js":""}`)}
	client := &Client{model: DefaultModel, models: fake}

	got, err := client.Complete(context.Background(), "build a site")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != `{"html":"<h1>Jane</h1>","css":"","js":""}` {
		t.Fatalf("unexpected completion: %q", got)
	}
	if fake.calls != 1 {
		t.Fatalf("expected exactly one call, got %d", fake.calls)
	}
	if fake.model != "gemini-2.5-flash-lite" {
		t.Fatalf("unexpected model: %s", fake.model)
	}
	if len(fake.contents) != 1 || len(fake.contents[0].Parts) != 1 || fake.contents[0].Parts[0].Text != "build a site" {
		t.Fatalf("unexpected contents: %+v", fake.contents)
	}
}

func TestCompleteJoinsTextParts(t *testing.T) {
	fake := &fakeModels{resp: textResponse(`{"html":`, `"<p/>"}`)}
	client := &Client{model: DefaultModel, models: fake}

	got, err := client.Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != `{"html":"<p/>"}` {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestCompleteWrapsProviderError(t *testing.T) {
	fake := &fakeModels{err: errors.New("429 RESOURCE_EXHAUSTED")}
	client := &Client{model: DefaultModel, models: fake}

	_, err := client.Complete(context.Background(), "p")
	if err == nil || !strings.Contains(err.Error(), "RESOURCE_EXHAUSTED") {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("expected no retry, got %d calls", fake.calls)
	}
}

func TestCompleteEmptyResponse(t *testing.T) {
	client := &Client{model: DefaultModel, models: &fakeModels{resp: &genai.GenerateContentResponse{}}}
	if _, err := client.Complete(context.Background(), "p"); !errors.Is(err, llm.ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(context.Background(), " ", "", 0); err == nil {
		t.Fatalf("expected error for missing key")
	}
}
