package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const viewerQuery = `query Viewer { viewer { id name email } }`

var ErrorLinearUnauthorized = errors.New("linear: unauthorized")

type LinearViewer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type viewerResponse struct {
	Data struct {
		Viewer *LinearViewer `json:"viewer"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type LinearClient struct {
	resty    *resty.Client
	endpoint string
}

// NewLinearClient sends the API key as is in Authorization. Personal keys are
// not bearer tokens.
func NewLinearClient(apiURL string, apiKey string) *LinearClient {
	restyClient := resty.New().
		SetTimeout(15*time.Second).
		SetHeader("Authorization", apiKey).
		SetHeader("Content-Type", "application/json")

	return &LinearClient{resty: restyClient, endpoint: apiURL}
}

func (l *LinearClient) Viewer(ctx context.Context) (*LinearViewer, error) {
	var result viewerResponse

	resp, err := l.resty.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString()).
		SetBody(map[string]any{"query": viewerQuery}).
		SetResult(&result).
		SetError(&result).
		Post(l.endpoint)

	if err != nil {
		return nil, fmt.Errorf("linear viewer request: %w", err)
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", ErrorLinearUnauthorized, resp.StatusCode())
	}

	if len(result.Errors) > 0 {
		messages := make([]string, 0, len(result.Errors))

		for _, gqlErr := range result.Errors {
			messages = append(messages, gqlErr.Message)
		}

		return nil, fmt.Errorf("linear viewer: %s", strings.Join(messages, "; "))
	}

	if resp.IsError() {
		return nil, fmt.Errorf("linear viewer: status %d", resp.StatusCode())
	}

	if result.Data.Viewer == nil {
		return nil, errors.New("linear viewer: empty response")
	}

	return result.Data.Viewer, nil
}
