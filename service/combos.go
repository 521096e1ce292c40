package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cinema-booking-cli/model"
)

// GetCombos returns every combo known to the backend, active or not.
func (c *Client) GetCombos(ctx context.Context) ([]model.Combo, error) {
	var combos []model.Combo
	if err := c.getJSON(ctx, c.endpoint("/combos"), &combos); err != nil {
		return nil, err
	}
	return combos, nil
}

// GetActiveCombos returns the combos offered at checkout.
func (c *Client) GetActiveCombos(ctx context.Context) ([]model.Combo, error) {
	combos, err := c.GetCombos(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]model.Combo, 0, len(combos))
	for _, combo := range combos {
		if combo.IsActive {
			active = append(active, combo)
		}
	}
	return active, nil
}

// GetCombo fetches a single combo by id.
func (c *Client) GetCombo(ctx context.Context, id string) (model.Combo, error) {
	if strings.TrimSpace(id) == "" {
		return model.Combo{}, errors.New("combo id is required")
	}
	var combo model.Combo
	if err := c.getJSON(ctx, c.endpoint("/combos/%s", escape(id)), &combo); err != nil {
		return model.Combo{}, err
	}
	return combo, nil
}

// SearchCombos searches combos by name on the backend.
func (c *Client) SearchCombos(ctx context.Context, name string) ([]model.Combo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c.GetCombos(ctx)
	}
	endpoint := c.endpoint("/combos/search?name=%s", url.QueryEscape(name))
	var combos []model.Combo
	if err := c.getJSON(ctx, endpoint, &combos); err != nil {
		return nil, err
	}
	return combos, nil
}

// GetCombosByPriceRange returns combos priced within [minPrice, maxPrice].
func (c *Client) GetCombosByPriceRange(ctx context.Context, minPrice float64, maxPrice float64) ([]model.Combo, error) {
	if minPrice < 0 || maxPrice < minPrice {
		return nil, fmt.Errorf("invalid price range %v-%v", minPrice, maxPrice)
	}
	endpoint := c.endpoint("/combos/price-range?minPrice=%v&maxPrice=%v", minPrice, maxPrice)
	var combos []model.Combo
	if err := c.getJSON(ctx, endpoint, &combos); err != nil {
		return nil, err
	}
	return combos, nil
}

// CreateCombo creates a new combo and returns the stored record.
func (c *Client) CreateCombo(ctx context.Context, input model.ComboInput) (model.Combo, error) {
	var combo model.Combo
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("/combos"), input, &combo); err != nil {
		return model.Combo{}, err
	}
	return combo, nil
}

// UpdateCombo replaces an existing combo and returns the stored record.
func (c *Client) UpdateCombo(ctx context.Context, id string, input model.ComboInput) (model.Combo, error) {
	if strings.TrimSpace(id) == "" {
		return model.Combo{}, errors.New("combo id is required")
	}
	var combo model.Combo
	if err := c.sendJSON(ctx, http.MethodPut, c.endpoint("/combos/%s", escape(id)), input, &combo); err != nil {
		return model.Combo{}, err
	}
	return combo, nil
}

// DeleteCombo removes a combo.
func (c *Client) DeleteCombo(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("combo id is required")
	}
	return c.sendJSON(ctx, http.MethodDelete, c.endpoint("/combos/%s", escape(id)), nil, nil)
}
