package birthday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const birthdaysKey = "birthdays"

// RedisRepository talks to an Upstash-style Redis REST endpoint: GET and SET
// of a single key over HTTPS with a bearer token. This is the backend the
// hosted deployment runs on.
type RedisRepository struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewRedisRepository(baseURL, token string) *RedisRepository {
	return &RedisRepository{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *RedisRepository) Load(ctx context.Context) ([]Birthday, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/get/"+birthdaysKey, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Errorf("Failed to reach birthday store: %v", err)
		return nil, fmt.Errorf("could not reach birthday store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("birthday store returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return nil, err
	}

	// The REST API wraps the stored value in {"result": "<json string>"};
	// a null result means the key was never written.
	var envelope struct {
		Result *string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("could not decode store response: %w", err)
	}
	if envelope.Result == nil || *envelope.Result == "" {
		return []Birthday{}, nil
	}

	var birthdays []Birthday
	if err := json.Unmarshal([]byte(*envelope.Result), &birthdays); err != nil {
		return nil, fmt.Errorf("could not decode stored birthdays: %w", err)
	}
	return birthdays, nil
}

func (r *RedisRepository) Save(ctx context.Context, birthdays []Birthday) error {
	value, err := json.Marshal(birthdays)
	if err != nil {
		return fmt.Errorf("could not marshal birthdays: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/set/"+birthdaysKey, bytes.NewReader(value))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Errorf("Failed to reach birthday store: %v", err)
		return fmt.Errorf("could not reach birthday store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("birthday store returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return err
	}
	return nil
}
