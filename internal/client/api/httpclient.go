package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/foodcourt/internal/client/models"
	"github.com/dmitrijs2005/foodcourt/internal/common"
)

// HTTPClient implements Client over the JSON/HTTPS contract of the remote
// API. Every request carries the static apiKey header, a per-request
// X-Request-Id, and, when a session is active, a bearer token.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// envelope is the common response wrapper of the remote API.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues one request and decodes the response envelope. Network-level
// failures map to common.ErrUnavailable, 401 to common.ErrUnauthorized, and
// other non-2xx statuses to *APIError with the server message.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	var env envelope
	// Best-effort decode: some success responses carry payloads beside the
	// envelope fields, and a few return no data field at all.
	_ = json.Unmarshal(raw, &env)
	return &env, nil
}

// decodeData unmarshals the envelope's data field into out, tolerating an
// absent field only when out is nil.
func decodeData(env *envelope, out any) error {
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("decode response: missing data field")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ---- auth ----

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/register", req)
	return err
}

func (c *HTTPClient) Authenticate(ctx context.Context, email, password string) (string, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	raw, err := c.doRaw(ctx, http.MethodPost, "/api/v1/login", payload)
	if err != nil {
		return "", err
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || out.Token == "" {
		return "", fmt.Errorf("decode response: login did not return a token")
	}
	return out.Token, nil
}

// doRaw issues one request with the standard headers and returns the whole
// response body on 2xx. Routes whose payload lives beside status/message
// (login, get-user) use it directly; everything else goes through do().
func (c *HTTPClient) doRaw(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apiKey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		return nil, fmt.Errorf("%w: %s", common.ErrUnauthorized, env.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return raw, nil
}

func (c *HTTPClient) InvalidateSession(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apiKey", c.apiKey)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/api/v1/user", nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		User models.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.User.ID == "" {
		return nil, fmt.Errorf("decode response: user payload is empty")
	}
	return &out.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req ProfileUpdate) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/update-profile", req)
	return err
}

// ---- users (admin) ----

func (c *HTTPClient) AllUsers(ctx context.Context) ([]models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/all-user", nil)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := decodeData(env, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) UpdateUserRole(ctx context.Context, userID, role string) error {
	payload := struct {
		Role string `json:"role"`
	}{role}
	_, err := c.do(ctx, http.MethodPost, "/api/v1/update-user-role/"+userID, payload)
	return err
}

// ---- catalog ----

func (c *HTTPClient) Foods(ctx context.Context) ([]models.Food, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/foods", nil)
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := decodeData(env, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (c *HTTPClient) Food(ctx context.Context, id string) (*models.Food, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/foods/"+id, nil)
	if err != nil {
		return nil, err
	}
	var food models.Food
	if err := decodeData(env, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *HTTPClient) CreateFood(ctx context.Context, req FoodRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/create-food", req)
	return err
}

func (c *HTTPClient) UpdateFood(ctx context.Context, id string, req FoodRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/update-food/"+id, req)
	return err
}

func (c *HTTPClient) DeleteFood(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/delete-food/"+id, nil)
	return err
}

// ---- likes and reviews ----

func (c *HTTPClient) LikeFood(ctx context.Context, foodID string) error {
	payload := struct {
		FoodID string `json:"foodId"`
	}{foodID}
	_, err := c.do(ctx, http.MethodPost, "/api/v1/like", payload)
	return err
}

func (c *HTTPClient) UnlikeFood(ctx context.Context, foodID string) error {
	payload := struct {
		FoodID string `json:"foodId"`
	}{foodID}
	_, err := c.do(ctx, http.MethodPost, "/api/v1/unlike", payload)
	return err
}

func (c *HTTPClient) LikedFoods(ctx context.Context) ([]models.Food, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/like-foods", nil)
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := decodeData(env, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (c *HTTPClient) RateFood(ctx context.Context, foodID string, rating int, review string) error {
	payload := struct {
		Rating int    `json:"rating"`
		Review string `json:"review"`
	}{rating, review}
	_, err := c.do(ctx, http.MethodPost, "/api/v1/rate-food/"+foodID, payload)
	return err
}

func (c *HTTPClient) FoodRatings(ctx context.Context, foodID string) ([]models.Rating, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/food-rating/"+foodID, nil)
	if err != nil {
		return nil, err
	}
	var ratings []models.Rating
	if err := decodeData(env, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// ---- server cart ----

func (c *HTTPClient) CreateCartEntry(ctx context.Context, foodID string) (string, error) {
	payload := struct {
		FoodID string `json:"foodId"`
	}{foodID}
	env, err := c.do(ctx, http.MethodPost, "/api/v1/add-cart", payload)
	if err != nil {
		return "", err
	}
	// The add-cart response shape is not guaranteed: some deployments return
	// the created entry under data, some return only status/message. An empty
	// id with a nil error is a valid outcome the caller must tolerate.
	var entry struct {
		ID     string `json:"id"`
		CartID string `json:"cartId"`
	}
	if len(env.Data) > 0 {
		_ = json.Unmarshal(env.Data, &entry)
	}
	if entry.ID != "" {
		return entry.ID, nil
	}
	return entry.CartID, nil
}

func (c *HTTPClient) UpdateCartEntry(ctx context.Context, cartID string, quantity int) error {
	payload := struct {
		Quantity int `json:"quantity"`
	}{quantity}
	_, err := c.do(ctx, http.MethodPost, "/api/v1/update-cart/"+cartID, payload)
	return err
}

func (c *HTTPClient) DeleteCartEntry(ctx context.Context, cartID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/delete-cart/"+cartID, nil)
	return err
}

func (c *HTTPClient) CartEntries(ctx context.Context) ([]models.CartEntry, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/carts", nil)
	if err != nil {
		return nil, err
	}
	var entries []models.CartEntry
	if err := decodeData(env, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ---- payments and transactions ----

func (c *HTTPClient) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/payment-methods", nil)
	if err != nil {
		return nil, err
	}
	var methods []models.PaymentMethod
	if err := decodeData(env, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (c *HTTPClient) CreateTransaction(ctx context.Context, cartIDs []string, paymentMethodID string) (string, error) {
	payload := struct {
		CartIDs         []string `json:"cartIds"`
		PaymentMethodID string   `json:"paymentMethodId"`
	}{cartIDs, paymentMethodID}
	env, err := c.do(ctx, http.MethodPost, "/api/v1/create-transaction", payload)
	if err != nil {
		return "", err
	}
	var tx struct {
		ID            string `json:"id"`
		TransactionID string `json:"transactionId"`
	}
	if len(env.Data) > 0 {
		_ = json.Unmarshal(env.Data, &tx)
	}
	if tx.ID != "" {
		return tx.ID, nil
	}
	return tx.TransactionID, nil
}

func (c *HTTPClient) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/transaction/"+id, nil)
	if err != nil {
		return nil, err
	}
	var tx models.Transaction
	if err := decodeData(env, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *HTTPClient) MyTransactions(ctx context.Context) ([]models.Transaction, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/my-transactions", nil)
	if err != nil {
		return nil, err
	}
	var txs []models.Transaction
	if err := decodeData(env, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *HTTPClient) AllTransactions(ctx context.Context) ([]models.Transaction, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/all-transactions", nil)
	if err != nil {
		return nil, err
	}
	var txs []models.Transaction
	if err := decodeData(env, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *HTTPClient) CancelTransaction(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/cancel-transaction/"+id, nil)
	return err
}

func (c *HTTPClient) UpdateTransactionStatus(ctx context.Context, id, status string) error {
	payload := struct {
		Status string `json:"status"`
	}{status}
	_, err := c.do(ctx, http.MethodPost, "/api/v1/update-transaction-status/"+id, payload)
	return err
}
