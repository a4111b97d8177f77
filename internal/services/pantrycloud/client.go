// Package pantrycloud talks to the hosted inventory backend. The wire
// protocol is GraphQL over HTTP; every date crosses the wire as an
// epoch-milliseconds string.
package pantrycloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"github.com/pantrybase/pantrygo/internal/models"
)

const pageLimit = 10

// Client issues the GraphQL operations the sync engine needs. All
// methods are safe for concurrent use.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client for the given GraphQL endpoint. The
// transport forces IPv4; the hosted backend's IPv6 records are stale.
func NewClient(endpoint, apiKey string) *Client {
	ipv4Dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					return ipv4Dialer.DialContext(ctx, "tcp4", addr)
				},
				MaxIdleConns:    100,
				IdleConnTimeout: 90 * time.Second,
			},
		},
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// do posts one GraphQL operation and decodes data into out.
func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.endpoint)
	}

	envelope := struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decoding data: %w", err)
		}
	}
	return nil
}

// wireItem is an inventory record as the backend serializes it.
type wireItem struct {
	ID               string                `json:"id"`
	Brand            string                `json:"brand"`
	Variety          string                `json:"variety"`
	Food             string                `json:"food"`
	Measurement      models.FoodMeasurement `json:"measurement"`
	Capacity         float64               `json:"capacity"`
	StorageFormat    models.StorageFormat  `json:"storageFormat"`
	StorageLocation  models.StorageLocation `json:"storageLocation"`
	ContainersOnHand float64               `json:"containersOnHand"`
	FoodCategories   []models.FoodCategory `json:"foodCategories"`
	Expiration       string                `json:"expiration"`
	LastUpdated      string                `json:"lastUpdated"`
}

func parseEpochMillis(value string) (time.Time, error) {
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", value, err)
	}
	return time.UnixMilli(millis), nil
}

func epochMillisString(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func (w *wireItem) toModel() (*models.InventoryItem, error) {
	expiration, err := parseEpochMillis(w.Expiration)
	if err != nil {
		return nil, err
	}
	lastUpdated, err := parseEpochMillis(w.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &models.InventoryItem{
		ID:               w.ID,
		Brand:            w.Brand,
		Variety:          w.Variety,
		Food:             w.Food,
		Measurement:      w.Measurement,
		Capacity:         w.Capacity,
		StorageFormat:    w.StorageFormat,
		StorageLocation:  w.StorageLocation,
		ContainersOnHand: w.ContainersOnHand,
		FoodCategories:   datatypes.JSONSlice[models.FoodCategory](w.FoodCategories),
		Expiration:       expiration,
		LastUpdated:      lastUpdated,
	}, nil
}

const listItemsQuery = `
query ListItems($limit: Int!, $nextToken: String) {
  listItems(limit: $limit, nextToken: $nextToken) {
    items {
      id
      brand
      variety
      food
      measurement
      capacity
      storageFormat
      storageLocation
      containersOnHand
      foodCategories
      expiration
      lastUpdated
    }
    nextToken
  }
}`

// ListItems pulls the complete remote inventory, following the paging
// token until the backend reports no more pages.
func (c *Client) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	var items []*models.InventoryItem
	var nextToken *string
	for {
		variables := map[string]interface{}{"limit": pageLimit}
		if nextToken != nil {
			variables["nextToken"] = *nextToken
		}
		page := struct {
			ListItems struct {
				Items     []wireItem `json:"items"`
				NextToken *string    `json:"nextToken"`
			} `json:"listItems"`
		}{}
		if err := c.do(ctx, listItemsQuery, variables, &page); err != nil {
			return nil, fmt.Errorf("listing items: %w", err)
		}
		for i := range page.ListItems.Items {
			item, err := page.ListItems.Items[i].toModel()
			if err != nil {
				return nil, fmt.Errorf("listing items: %w", err)
			}
			items = append(items, item)
		}
		nextToken = page.ListItems.NextToken
		if nextToken == nil || *nextToken == "" {
			break
		}
	}
	return items, nil
}

const validationStampsQuery = `
query ListItems($limit: Int!, $nextToken: String) {
  listItems(limit: $limit, nextToken: $nextToken) {
    items {
      id
      lastUpdated
    }
    nextToken
  }
}`

// ValidationStamps pulls just ids and update times, the cheap
// projection reconciliation runs on.
func (c *Client) ValidationStamps(ctx context.Context) ([]models.ValidationStamp, error) {
	var stamps []models.ValidationStamp
	var nextToken *string
	for {
		variables := map[string]interface{}{"limit": pageLimit}
		if nextToken != nil {
			variables["nextToken"] = *nextToken
		}
		page := struct {
			ListItems struct {
				Items []struct {
					ID          string `json:"id"`
					LastUpdated string `json:"lastUpdated"`
				} `json:"items"`
				NextToken *string `json:"nextToken"`
			} `json:"listItems"`
		}{}
		if err := c.do(ctx, validationStampsQuery, variables, &page); err != nil {
			return nil, fmt.Errorf("listing validation stamps: %w", err)
		}
		for _, raw := range page.ListItems.Items {
			lastUpdated, err := parseEpochMillis(raw.LastUpdated)
			if err != nil {
				return nil, fmt.Errorf("listing validation stamps: %w", err)
			}
			stamps = append(stamps, models.ValidationStamp{ID: raw.ID, LastUpdated: lastUpdated})
		}
		nextToken = page.ListItems.NextToken
		if nextToken == nil || *nextToken == "" {
			break
		}
	}
	return stamps, nil
}

const createItemMutation = `
mutation CreateItem($input: CreateItemInput!) {
  createItem(input: $input) {
    id
  }
}`

// AddItem pushes a new record. The update timestamp is minted here and
// returned so the caller can stamp its local copy with the exact value
// the cloud stored. Nil means the backend rejected the write.
func (c *Client) AddItem(ctx context.Context, item *models.InventoryItem) (*time.Time, error) {
	now := time.Now()
	stamp := epochMillisString(now)
	input := map[string]interface{}{
		"id":               item.ID,
		"brand":            item.Brand,
		"variety":          item.Variety,
		"food":             item.Food,
		"measurement":      item.Measurement,
		"capacity":         item.Capacity,
		"storageFormat":    item.StorageFormat,
		"storageLocation":  item.StorageLocation,
		"containersOnHand": item.ContainersOnHand,
		"foodCategories":   []models.FoodCategory(item.FoodCategories),
		"expiration":       epochMillisString(item.Expiration),
		"lastUpdated":      stamp,
	}
	result := struct {
		CreateItem *struct {
			ID string `json:"id"`
		} `json:"createItem"`
	}{}
	if err := c.do(ctx, createItemMutation, map[string]interface{}{"input": input}, &result); err != nil {
		return nil, fmt.Errorf("adding item %s: %w", item.ID, err)
	}
	if result.CreateItem == nil || result.CreateItem.ID != item.ID {
		return nil, nil
	}
	minted := time.UnixMilli(now.UnixMilli())
	return &minted, nil
}

const updateItemMutation = `
mutation UpdateItem($input: UpdateItemInput!) {
  updateItem(input: $input) {
    containersOnHand
    foodCategories
    lastUpdated
  }
}`

// UpdateItem pushes the mutable fields of an existing record. Only the
// on-hand count and categories can change without changing the id, so
// only those cross the wire.
func (c *Client) UpdateItem(ctx context.Context, item *models.InventoryItem) (*time.Time, error) {
	now := time.Now()
	input := map[string]interface{}{
		"id":               item.ID,
		"containersOnHand": item.ContainersOnHand,
		"foodCategories":   []models.FoodCategory(item.FoodCategories),
		"lastUpdated":      epochMillisString(now),
	}
	result := struct {
		UpdateItem *json.RawMessage `json:"updateItem"`
	}{}
	if err := c.do(ctx, updateItemMutation, map[string]interface{}{"input": input}, &result); err != nil {
		return nil, fmt.Errorf("updating item %s: %w", item.ID, err)
	}
	if result.UpdateItem == nil {
		return nil, nil
	}
	minted := time.UnixMilli(now.UnixMilli())
	return &minted, nil
}

const deleteItemMutation = `
mutation DeleteItem($input: DeleteItemInput!) {
  deleteItem(input: $input) {
    id
  }
}`

// RemoveItem deletes a record by id. False without an error means the
// backend answered but did not confirm the deletion.
func (c *Client) RemoveItem(ctx context.Context, itemID string) (bool, error) {
	result := struct {
		DeleteItem *struct {
			ID string `json:"id"`
		} `json:"deleteItem"`
	}{}
	input := map[string]interface{}{"id": itemID}
	if err := c.do(ctx, deleteItemMutation, map[string]interface{}{"input": input}, &result); err != nil {
		return false, fmt.Errorf("removing item %s: %w", itemID, err)
	}
	return result.DeleteItem != nil && result.DeleteItem.ID == itemID, nil
}
