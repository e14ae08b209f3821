package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petster/internal/platform/logger"
	"petster/internal/platform/retry"
	"petster/internal/ports/textgen"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrGenerationFailed = errors.New("failed to generate ai content")
	errNoGenerator      = errors.New("text generator not configured")
)

type Service struct {
	repo   Repository
	gen    textgen.Generator
	policy retry.Policy
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, gen textgen.Generator, policy retry.Policy, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:   repo,
		gen:    gen,
		policy: policy,
		log:    log,
		now:    time.Now,
	}
}

// Ask responde la pregunta y guarda el par usuario/ai en el historial del shelter.
// Si guardar falla, se loguea y la respuesta igual se devuelve.
func (s *Service) Ask(ctx context.Context, shelterID, question string) (string, error) {
	shelterID = strings.TrimSpace(shelterID)
	if strings.TrimSpace(question) == "" {
		return "", ErrInvalidInput
	}

	answer, err := s.answer(ctx, question)
	if err != nil {
		return "", err
	}

	if shelterID == "" {
		return answer, nil
	}

	now := s.now().UTC()
	msgs := []Message{
		{ID: uuid.NewString(), ShelterID: shelterID, Sender: SenderUser, Text: question, CreatedAt: now},
		// +1µs para que el orden por createdAt sea estable
		{ID: uuid.NewString(), ShelterID: shelterID, Sender: SenderAI, Text: answer, CreatedAt: now.Add(time.Microsecond)},
	}
	if err := s.repo.Append(ctx, msgs...); err != nil {
		s.log.Error("failed to save assistant conversation", map[string]any{
			"err":        err,
			"shelter_id": shelterID,
		})
	}
	return answer, nil
}

func (s *Service) History(ctx context.Context, shelterID string) ([]Message, error) {
	shelterID = strings.TrimSpace(shelterID)
	if shelterID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByShelter(ctx, shelterID)
}

// Regenerate vuelve a generar la respuesta para un mensaje. No toca el historial.
func (s *Service) Regenerate(ctx context.Context, messageID, question string) (string, error) {
	if strings.TrimSpace(messageID) == "" || strings.TrimSpace(question) == "" {
		return "", ErrInvalidInput
	}
	return s.answer(ctx, question)
}

// Improve reescribe un post de la comunidad según la opción elegida. Un solo intento.
func (s *Service) Improve(ctx context.Context, content, option string) (string, error) {
	if strings.TrimSpace(content) == "" || strings.TrimSpace(option) == "" {
		return "", ErrInvalidInput
	}

	out, err := s.generate(ctx, ImprovePrompt(option, content))
	if err != nil {
		s.log.Error("error generating ai content", map[string]any{"err": err, "option": option})
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return out, nil
}

func (s *Service) answer(ctx context.Context, question string) (string, error) {
	var answer string
	attempt := 0

	err := retry.Do(ctx, s.policy, func(ctx context.Context) error {
		attempt++
		out, err := s.generate(ctx, AssistantPrompt(question))
		if err != nil {
			return err
		}
		if strings.TrimSpace(out) == "" {
			return errors.New("empty response from ai")
		}
		answer = out
		return nil
	}, func(err error, wait time.Duration) {
		s.log.Warn("assistant retry", map[string]any{
			"attempt": attempt,
			"max":     s.policy.MaxRetries,
			"wait_ms": wait.Milliseconds(),
			"err":     err,
		})
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return answer, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.gen == nil {
		return "", errNoGenerator
	}
	return s.gen.Generate(ctx, prompt)
}
