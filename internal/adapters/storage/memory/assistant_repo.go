package memory

import (
	"context"
	"sort"
	"sync"

	"petster/internal/domain/assistant"
)

type assistantRepo struct {
	mu        sync.RWMutex
	byShelter map[string][]assistant.Message
}

func NewAssistantRepo() assistant.Repository {
	return &assistantRepo{
		byShelter: make(map[string][]assistant.Message),
	}
}

func (r *assistantRepo) Append(ctx context.Context, msgs ...assistant.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range msgs {
		r.byShelter[m.ShelterID] = append(r.byShelter[m.ShelterID], m)
	}
	return nil
}

func (r *assistantRepo) ListByShelter(ctx context.Context, shelterID string) ([]assistant.Message, error) {
	r.mu.RLock()
	out := append([]assistant.Message(nil), r.byShelter[shelterID]...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if out == nil {
		out = []assistant.Message{}
	}
	return out, nil
}
