// Package client fala com a API HTTP do GoArmazém. É usado pelo armazemctl.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"goarmazem/internal/domain"
	"goarmazem/internal/service/warehouseservice"
)

// APIError é uma resposta de erro da API.
type APIError struct {
	Status   int
	Category string
	Message  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// Client é um cliente da API v1.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New cria um cliente para baseURL (ex.: http://localhost:8080). token vazio
// só permite as rotas de leitura e o login.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// Login troca email e senha por um token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp domain.LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", domain.LoginRequest{Email: email, Password: password}, &resp)
	return resp.Token, err
}

// Place coloca um item na grade.
func (c *Client) Place(ctx context.Context, req warehouseservice.PlaceRequest) (warehouseservice.PlaceResult, error) {
	var resp warehouseservice.PlaceResult
	err := c.do(ctx, http.MethodPost, "/v1/items", req, &resp)
	return resp, err
}

// Remove retira o registro que ocupa loc.
func (c *Client) Remove(ctx context.Context, loc domain.Location) (warehouseservice.RemoveResult, error) {
	var resp warehouseservice.RemoveResult
	path := fmt.Sprintf("/v1/locations/%d/%d/%d/%d", loc.Row, loc.Shelf, loc.Level, loc.Zone)
	err := c.do(ctx, http.MethodDelete, path, nil, &resp)
	return resp, err
}

// List devolve os registros ordenados por nome.
func (c *Client) List(ctx context.Context) ([]domain.Record, error) {
	var resp []domain.Record
	err := c.do(ctx, http.MethodGet, "/v1/items", nil, &resp)
	return resp, err
}

// Names devolve os nomes conhecidos.
func (c *Client) Names(ctx context.Context) ([]warehouseservice.NamedID, error) {
	var resp []warehouseservice.NamedID
	err := c.do(ctx, http.MethodGet, "/v1/items/names", nil, &resp)
	return resp, err
}

// SearchByID soma as quantidades de um ID.
func (c *Client) SearchByID(ctx context.Context, id int) (domain.SearchResult, error) {
	var resp domain.SearchResult
	err := c.do(ctx, http.MethodGet, "/v1/items/search?id="+strconv.Itoa(id), nil, &resp)
	return resp, err
}

// SearchByName soma as quantidades de um nome exato.
func (c *Client) SearchByName(ctx context.Context, name string) (domain.SearchResult, error) {
	var resp domain.SearchResult
	err := c.do(ctx, http.MethodGet, "/v1/items/search?name="+url.QueryEscape(name), nil, &resp)
	return resp, err
}

// Locations devolve os registros de um ID com seus locais.
func (c *Client) Locations(ctx context.Context, id int) ([]domain.Record, error) {
	var resp []domain.Record
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/items/%d/locations", id), nil, &resp)
	return resp, err
}

// Expiring consulta itens vencidos ou a vencer; date vazio usa o dia do servidor.
func (c *Client) Expiring(ctx context.Context, date string) ([]domain.ExpiringRecord, error) {
	path := "/v1/expiring"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	var resp []domain.ExpiringRecord
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	return resp, err
}

// Grid devolve o instantâneo da grade.
func (c *Client) Grid(ctx context.Context) (domain.GridSnapshot, error) {
	var resp domain.GridSnapshot
	err := c.do(ctx, http.MethodGet, "/v1/grid", nil, &resp)
	return resp, err
}

// Movements devolve o diário, mais recentes primeiro.
func (c *Client) Movements(ctx context.Context, limit int) ([]domain.Movement, error) {
	path := "/v1/movements"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp []domain.Movement
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("falha ao codificar requisição: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("falha ao montar requisição: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("falha ao contatar %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload domain.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Category = payload.Category
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("resposta inválida de %s: %w", path, err)
	}
	return nil
}
