package report

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

// failingClient returns a Gemini client pointed at a server that answers
// every call with a 500.
func failingClient(t *testing.T) *genai.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend unavailable", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  srv.Client(),
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	if err != nil {
		t.Fatalf("genai.NewClient() failed: %v", err)
	}
	return client
}

func TestGenerateWrapsServiceFailure(t *testing.T) {
	gen := NewGenerator(failingClient(t))
	_, err := gen.Generate(context.Background(), "any prompt")
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("Generate() error = %v, want ErrGeneration", err)
	}
}

func TestSessionAskWrapsServiceFailure(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out, strings.NewReader(""))
	ctx := context.Background()

	if err := s.Start(ctx, failingClient(t), "data context"); err != nil {
		// chat creation may already hit the backend
		if !errors.Is(err, ErrGeneration) {
			t.Fatalf("Start() error = %v, want ErrGeneration", err)
		}
		return
	}
	if _, err := s.Ask(ctx, "a question"); !errors.Is(err, ErrGeneration) {
		t.Errorf("Ask() error = %v, want ErrGeneration", err)
	}
}
