package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/shinebright/schedule/internal/entity"
)

const (
	requestTimeout = 5 * time.Second
	retryMax       = 3
)

// Client calls the clients service over its internal HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.HTTPClient.Timeout = requestTimeout
	rc.Logger = nil

	return &Client{
		baseURL: baseURL,
		http:    rc.StandardClient(),
	}
}

type ClientResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Address              string          `json:"address"`
	ContractDays         []int           `json:"contractDays"`
	AssignedEmployeeID   *uuid.UUID      `json:"assignedEmployeeId"`
	AssignedEmployeeName string          `json:"assignedEmployeeName"`
	VisitPrice           decimal.Decimal `json:"visitPrice"`
}

type ContractedClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Client returns one client record by ID.
func (c *Client) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/api/internal/clients/%s", c.baseURL, id))
	if err != nil {
		return entity.Client{}, err
	}

	var data ClientResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return entity.Client{}, fmt.Errorf("decode response: %w", err)
	}

	return toEntity(data), nil
}

// ContractedClients returns every client with a non-empty contract-day set.
func (c *Client) ContractedClients(ctx context.Context) ([]entity.Client, error) {
	body, err := c.get(ctx, c.baseURL+"/api/internal/clients?contracted=true")
	if err != nil {
		return nil, err
	}

	var data ContractedClientsResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	result := make([]entity.Client, 0, len(data.Clients))
	for _, v := range data.Clients {
		result = append(result, toEntity(v))
	}

	return result, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, entity.ErrNotFound
		}

		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	return body, nil
}

func toEntity(data ClientResponse) entity.Client {
	days := make([]time.Weekday, 0, len(data.ContractDays))
	for _, d := range data.ContractDays {
		days = append(days, time.Weekday(d))
	}

	return entity.Client{
		ID:                   data.ID,
		Name:                 data.Name,
		Address:              data.Address,
		ContractDays:         days,
		AssignedEmployeeID:   data.AssignedEmployeeID,
		AssignedEmployeeName: data.AssignedEmployeeName,
		VisitPrice:           data.VisitPrice,
	}
}
