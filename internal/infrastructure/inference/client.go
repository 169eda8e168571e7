// Package inference talks to the external medgemma model endpoint that
// turns submitted case data into a knowledge graph and risk metadata.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"oncoportal/config"
	"oncoportal/internal/domain/entity"
)

var ErrNotConfigured = errors.New("model endpoint URL is not configured")

// Payload is the normalized request body sent to the model endpoint.
type Payload struct {
	PatientID           int                  `json:"patientId"`
	DoctorID            int                  `json:"doctorId"`
	ClinicalNotes       string               `json:"clinicalNotes,omitempty"`
	PatientData         string               `json:"patientData,omitempty"`
	PatientDataFileName string               `json:"patientDataFileName,omitempty"`
	ImagingData         []entity.ImagingFile `json:"imagingData,omitempty"`
	Timestamp           string               `json:"timestamp"`
}

// Runner is the inference collaborator consumed by the data-entry
// usecase. Any error is treated by callers as "model result absent",
// never as a fatal failure of the save itself.
type Runner interface {
	Run(ctx context.Context, payload Payload) (*entity.ModelResult, error)
}

// HTTPClient posts payloads to the configured endpoint with a bounded
// wait. The timeout (default 25s) is the only cancellation contract in
// the system.
type HTTPClient struct {
	cfg    config.ModelConfig
	client *http.Client
}

func NewHTTPClient(cfg config.ModelConfig) *HTTPClient {
	return &HTTPClient{
		cfg:    cfg,
		client: &http.Client{},
	}
}

func (c *HTTPClient) Run(ctx context.Context, payload Payload) (*entity.ModelResult, error) {
	if c.cfg.URL == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.New("model request timed out")
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if len(text) > 0 {
			return nil, fmt.Errorf("model call failed: %s", text)
		}
		return nil, fmt.Errorf("model call failed with status %d", resp.StatusCode)
	}

	var result entity.ModelResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}
	return &result, nil
}
