package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ssfi-digital/federation-portal/models"
)

const (
	geminiModel    = "gemini-2.0-flash-exp"
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

	insightSystemPrompt = "You are the Chief AI Performance Analyst for the Speed Skating Federation of India (SSFI). " +
		"Your tone is professional, encouraging, and data-driven."
)

// InsightService generates the dashboard's AI performance report. It always
// resolves to text: a missing key or a failed call degrades to an apologetic
// message instead of an error, so no caller ever has to handle a failure.
type InsightService interface {
	GenerateReport(ctx context.Context, role models.UserRole, contextData string) string
}

type insightService struct {
	apiKey string
	client *http.Client
	logger *slog.Logger
}

func NewInsightService(apiKey string, logger *slog.Logger) InsightService {
	return &insightService{
		apiKey: apiKey,
		client: &http.Client{Timeout: 20 * time.Second},
		logger: logger,
	}
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"system_instruction"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *insightService) GenerateReport(ctx context.Context, role models.UserRole, contextData string) string {
	if s.apiKey == "" {
		return "AI Analysis Unavailable: No API Key configured."
	}

	prompt := fmt.Sprintf("Generate a short performance insight for a %s of the federation.\nContext:\n%s", role, contextData)
	payload := geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: insightSystemPrompt}}},
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to encode insight request", slog.Any("error", err))
		return "AI Analysis Unavailable: the analyst could not be reached. Please try again later."
	}

	url := fmt.Sprintf(geminiEndpoint, geminiModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "AI Analysis Unavailable: the analyst could not be reached. Please try again later."
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("insight call failed", slog.Any("error", err))
		return "AI Analysis Unavailable: the analyst could not be reached. Please try again later."
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("insight call rejected", slog.Int("status", resp.StatusCode))
		return "AI Analysis Unavailable: the analyst could not be reached. Please try again later."
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "AI Analysis Unavailable: the analyst could not be reached. Please try again later."
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "AI Analysis Unavailable: the analyst returned no insight for this request."
	}
	return decoded.Candidates[0].Content.Parts[0].Text
}
