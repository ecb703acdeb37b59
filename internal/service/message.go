package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/outflo/campaign-manager/internal/dto"
	"github.com/outflo/campaign-manager/internal/validation"
)

// TextGenerator produces text from a prompt via an external model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Message generation sources, from highest to lowest quality tier.
const (
	SourceAI       = "ai"
	SourceTemplate = "template"
	SourceFallback = "fallback"
)

const (
	templateNote = "AI service temporarily unavailable. Using intelligent template."
	fallbackNote = "Service temporarily unavailable. Using basic template."

	ultimateFallbackMessage = "Hi! OutFlo can help automate your outreach to increase meetings & sales. Let's connect!"

	// An AI reply shorter than this is treated as degenerate.
	minAIMessageLength = 10
)

// MessageResult is the outcome of a generation attempt. Every reachable path
// yields a usable message string.
type MessageResult struct {
	Message string
	Source  string
	Note    string
}

// MessageService generates personalized outreach copy with a tiered
// AI -> template -> fallback chain.
type MessageService struct {
	generator TextGenerator // nil disables the AI tier
	pickIndex func(n int) int
}

// MessageOption configures optional dependencies.
type MessageOption func(*MessageService)

// WithTemplatePicker overrides the template selection source, making the
// template tier deterministic in tests.
func WithTemplatePicker(pick func(n int) int) MessageOption {
	return func(s *MessageService) {
		if pick != nil {
			s.pickIndex = pick
		}
	}
}

// NewMessageService wires the generator. A nil generator silently disables
// the AI tier; the endpoint still answers from the template tier.
func NewMessageService(generator TextGenerator, opts ...MessageOption) *MessageService {
	s := &MessageService{
		generator: generator,
		pickIndex: rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates the profile and walks the tiers. A validation failure is
// the only error this method returns; any failure past validation degrades to
// a lower tier instead of surfacing.
func (s *MessageService) Generate(ctx context.Context, req dto.MessageRequest) (result MessageResult, err error) {
	defer func() {
		// Anything unexpected outside the AI/template logic still yields a
		// usable message rather than a hard failure.
		if r := recover(); r != nil {
			result = MessageResult{
				Message: ultimateFallbackMessage,
				Source:  SourceFallback,
				Note:    fallbackNote,
			}
			err = nil
		}
	}()

	if verr := validation.ValidateMessageRequest(&req); verr != nil {
		return MessageResult{}, verr
	}

	if s.generator != nil {
		message, aiErr := s.generator.Generate(ctx, buildPrompt(req))
		if aiErr == nil {
			message = strings.TrimSpace(message)
			if len(message) > minAIMessageLength {
				return MessageResult{Message: message, Source: SourceAI}, nil
			}
		}
	}

	return MessageResult{
		Message: s.templateMessage(req),
		Source:  SourceTemplate,
		Note:    templateNote,
	}, nil
}

func (s *MessageService) templateMessage(req dto.MessageRequest) string {
	templates := []string{
		fmt.Sprintf("Hi %s! I noticed you're a %s at %s. OutFlo specializes in helping %ss like yourself automate outreach processes. Would love to connect and show you how we can help scale your efforts!",
			req.Name, req.JobTitle, req.Company, req.JobTitle),
		fmt.Sprintf("Hey %s, I see you're doing great work as a %s at %s. OutFlo has helped similar professionals in %s increase their meeting bookings by 3x through automated outreach. Let's connect!",
			req.Name, req.JobTitle, req.Company, req.Location),
		fmt.Sprintf("Hi %s! Your background as a %s at %s caught my attention. OutFlo can help streamline your outreach efforts and increase sales conversations. Would you be interested in learning more?",
			req.Name, req.JobTitle, req.Company),
		fmt.Sprintf("Hello %s, I came across your profile and was impressed by your work at %s. OutFlo helps professionals like you automate personalized outreach to boost meetings and sales. Let's connect!",
			req.Name, req.Company),
	}
	return templates[s.pickIndex(len(templates))]
}

func buildPrompt(req dto.MessageRequest) string {
	return fmt.Sprintf(`
You are an expert at writing personalized LinkedIn outreach messages for OutFlo, a platform that helps automate outreach to increase meetings and sales.

Create a personalized, professional, and engaging LinkedIn outreach message based on the following profile information:

Name: %s
Job Title: %s
Company: %s
Location: %s
Summary: %s

Guidelines:
- Keep the message between 50-100 words
- Be conversational and friendly, not salesy
- Reference their specific role or company
- Mention how OutFlo can help them specifically
- Include a clear call-to-action to connect
- Make it feel personal and genuine
- Avoid generic phrases

Generate only the message content, no additional text or formatting.
`, req.Name, req.JobTitle, req.Company, req.Location, req.Summary)
}
