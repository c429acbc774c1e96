package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/utils"
	"github.com/MKhiriev/go-persona-keeper/models"
)

const (
	aliasesPath = "/api/v1/aliases"
	userAgent   = "persona-keeper"
	retryCount  = 2
)

type httpAliasClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPAliasClient constructs a REST implementation of [AliasClient]. It
// returns ErrNotConfigured when cfg.AliasBaseURL is empty and an error when it
// cannot be parsed as a URL.
func NewHTTPAliasClient(cfg config.Adapter, log *logger.Logger) (AliasClient, error) {
	if strings.TrimSpace(cfg.AliasBaseURL) == "" {
		return nil, ErrNotConfigured
	}

	baseURL, err := normalizeBaseURL(cfg.AliasBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid alias api address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Timeout:    cfg.RequestTimeout,
		RetryCount: retryCount,
		UserAgent:  userAgent,
	})
	client.
		SetHeader("Accept", "application/json").
		SetHeader("X-Requested-With", "XMLHttpRequest")

	return &httpAliasClient{
		client: client,
		token:  strings.TrimSpace(cfg.AliasToken),
		logger: log.GetChildLogger("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchAliases implements [AliasClient]. It GETs /api/v1/aliases with the
// configured bearer token.
func (h *httpAliasClient) FetchAliases(ctx context.Context) FetchAliasesResult {
	var body models.AliasesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetResult(&body).
		Get(aliasesPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpAliasClient.FetchAliases").Msg("alias request failed")
		return AliasesFailed{Message: fmt.Sprintf("request failed: %v", err)}
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Int("status", resp.StatusCode()).Msg("alias api returned an error")
		return AliasesFailed{Message: err.Error(), StatusCode: resp.StatusCode()}
	}

	aliases := body.Data
	if aliases == nil {
		aliases = []models.Alias{}
	}
	h.logger.Debug().Int("count", len(aliases)).Msg("aliases fetched")

	return AliasesFetched{Aliases: aliases}
}
