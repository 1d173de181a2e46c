package zone

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/entities"
)

type Zone struct {
	repository Repository
}

func New(repository Repository) *Zone {
	return &Zone{
		repository: repository,
	}
}

// Resolve ищет зону по свободному адресу. Отсутствие совпадения не ошибка:
// возвращается nil, и заказ просто не назначается автоматически.
func (s *Zone) Resolve(ctx context.Context, address string) (*int64, error) {
	if strings.TrimSpace(address) == "" {
		return nil, nil
	}

	zones, err := s.repository.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active zones: %w", err)
	}

	matched := Match(address, zones)
	if matched == nil {
		return nil, nil
	}
	return &matched.ID, nil
}

// Match возвращает первую зону, которой соответствует адрес.
//
// Зона подходит, если адрес содержит ее название или описание целиком,
// либо, для названий из нескольких слов, содержит каждое слово названия.
// Слова ищутся как подстроки, без учета границ токенов.
func Match(address string, zones []entities.Zone) *entities.Zone {
	normalized := strings.ToLower(strings.TrimSpace(address))
	if normalized == "" {
		return nil
	}

	for i := range zones {
		if matches(normalized, &zones[i]) {
			return &zones[i]
		}
	}
	return nil
}

func matches(address string, z *entities.Zone) bool {
	name := strings.ToLower(strings.TrimSpace(z.Name))
	if name != "" && strings.Contains(address, name) {
		return true
	}

	if z.Description != nil {
		description := strings.ToLower(strings.TrimSpace(*z.Description))
		if description != "" && strings.Contains(address, description) {
			return true
		}
	}

	words := strings.Fields(name)
	if len(words) < 2 {
		return false
	}
	for _, word := range words {
		if !strings.Contains(address, word) {
			return false
		}
	}
	return true
}
