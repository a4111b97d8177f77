package pantrycloud

import (
	"context"
	"fmt"

	"github.com/pantrybase/pantrygo/internal/models"
)

// wireGTIN mirrors the backend's product-code row. The column names
// come from the open GTIN dataset the table was seeded with.
type wireGTIN struct {
	ID       string                `json:"id"`
	Image    int                   `json:"IMG"`
	MassG    *float64              `json:"M_G"`
	MassOz   *float64              `json:"M_OZ"`
	MassFlOz *float64              `json:"M_FLOZ"`
	BrandRef string                `json:"BSIN_id"`
	Name     string                `json:"GTIN_NM"`
	Package  *models.StorageFormat `json:"K_PACKAGE"`
	Category *models.FoodCategory  `json:"K_CATEGORY"`
}

func (w *wireGTIN) toModel() *models.GTINItem {
	return &models.GTINItem{
		Code:          w.ID,
		Image:         w.Image,
		MassOz:        w.MassOz,
		MassFlOz:      w.MassFlOz,
		MassG:         w.MassG,
		BrandRef:      w.BrandRef,
		Name:          w.Name,
		PackageFormat: w.Package,
		Category:      w.Category,
	}
}

func gtinInput(item *models.GTINItem) map[string]interface{} {
	return map[string]interface{}{
		"id":         item.Code,
		"IMG":        item.Image,
		"M_G":        item.MassG,
		"M_OZ":       item.MassOz,
		"M_FLOZ":     item.MassFlOz,
		"BSIN_id":    item.BrandRef,
		"GTIN_NM":    item.Name,
		"K_PACKAGE":  item.PackageFormat,
		"K_CATEGORY": item.Category,
	}
}

const getGTINQuery = `
query GetGTIN($id: ID!) {
  getGTIN(id: $id) {
    id
    IMG
    M_G
    M_OZ
    M_FLOZ
    BSIN_id
    GTIN_NM
    K_PACKAGE
    K_CATEGORY
  }
}`

// GetGTIN fetches the product record for a code. A nil result with a
// nil error means the backend has no row for it.
func (c *Client) GetGTIN(ctx context.Context, code string) (*models.GTINItem, error) {
	result := struct {
		GetGTIN *wireGTIN `json:"getGTIN"`
	}{}
	if err := c.do(ctx, getGTINQuery, map[string]interface{}{"id": code}, &result); err != nil {
		return nil, fmt.Errorf("fetching GTIN %s: %w", code, err)
	}
	if result.GetGTIN == nil || result.GetGTIN.ID == "" {
		return nil, nil
	}
	return result.GetGTIN.toModel(), nil
}

const createGTINMutation = `
mutation CreateGTIN($input: CreateGTINInput!) {
  createGTIN(input: $input) {
    id
  }
}`

// CreateGTIN inserts a product record. Restricted to power users
// upstream; the backend rejects everyone else.
func (c *Client) CreateGTIN(ctx context.Context, item *models.GTINItem) error {
	result := struct {
		CreateGTIN *struct {
			ID string `json:"id"`
		} `json:"createGTIN"`
	}{}
	if err := c.do(ctx, createGTINMutation, map[string]interface{}{"input": gtinInput(item)}, &result); err != nil {
		return fmt.Errorf("creating GTIN %s: %w", item.Code, err)
	}
	if result.CreateGTIN == nil || result.CreateGTIN.ID == "" {
		return fmt.Errorf("creating GTIN %s: backend did not confirm", item.Code)
	}
	return nil
}

const updateGTINMutation = `
mutation UpdateGTIN($input: UpdateGTINInput!) {
  updateGTIN(input: $input) {
    id
  }
}`

// UpdateGTIN overwrites an existing product record.
func (c *Client) UpdateGTIN(ctx context.Context, item *models.GTINItem) error {
	result := struct {
		UpdateGTIN *struct {
			ID string `json:"id"`
		} `json:"updateGTIN"`
	}{}
	if err := c.do(ctx, updateGTINMutation, map[string]interface{}{"input": gtinInput(item)}, &result); err != nil {
		return fmt.Errorf("updating GTIN %s: %w", item.Code, err)
	}
	if result.UpdateGTIN == nil || result.UpdateGTIN.ID == "" {
		return fmt.Errorf("updating GTIN %s: backend did not confirm", item.Code)
	}
	return nil
}
