package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Session is an interactive question-and-answer session about a loaded
// data set. The underlying chat keeps context, so follow-up questions can
// refer to earlier answers.
type Session struct {
	// Model overrides the default Gemini model when set.
	Model string

	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// NewSession creates a new Session writing the conversation to w and
// reading user input from r (e.g. os.Stdout and os.Stdin).
func NewSession(w io.Writer, r io.Reader) *Session {
	return &Session{w: w, r: bufio.NewReader(r)}
}

func (s *Session) model() string {
	if s.Model != "" {
		return s.Model
	}
	return defaultModel
}

// Start creates the chat, seeding it with a summary of the data under
// discussion so the model can ground its answers.
func (s *Session) Start(ctx context.Context, client *genai.Client, dataContext string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: systemInstruction},
			{Text: dataContext},
		}},
	}
	chat, err := client.Chats.Create(ctx, s.model(), config, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	s.chat = chat
	return nil
}

// Ask sends one question and returns the answer. Any service failure wraps
// ErrGeneration.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	resp, err := s.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "ask> "

// Run starts the interactive REPL. Questions given in prompts are asked
// first, then the user is read until 'bye' or EOF.
func (s *Session) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(s.w, "Ask questions about your financial data. Type 'bye' to exit.")

	for {
		fmt.Fprint(s.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(s.w, input)
		} else {
			var err error
			input, err = s.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := s.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.w, answer)
	}
}
