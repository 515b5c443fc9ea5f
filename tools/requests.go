package tools

/*
Handles API requests to the game economy endpoints: the public egg
collection feed and the authenticated coin balance lookup.
*/

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jqcwhw/ps99stuff/collector"
	"github.com/jqcwhw/ps99stuff/config"
)

var GlobalClient = &http.Client{}

// EggCollection JSON structure
type EggCollection struct {
	Status string      `json:"status"`
	Data   []EggRecord `json:"data"`
}

// EggRecord is one collection entry off the feed
type EggRecord struct {
	Category   string    `json:"category"`
	ConfigData EggConfig `json:"configData"`
}

type EggConfig struct {
	ID        string `json:"_id"`
	Available bool   `json:"available"`
}

// CurrencyResponse JSON structure
type CurrencyResponse struct {
	Robux int `json:"robux"`
}

// GetEggShopData fetches the current egg collection off the feed and
// returns the names marked available.
func GetEggShopData(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.EggShopAPI, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", config.UserAgent)

	resp, err := GlobalClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("egg shop request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("egg shop request: status %d, response %s", resp.StatusCode, string(body))
	}

	var collection EggCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return nil, fmt.Errorf("egg shop response: %w", err)
	}

	var names []string
	for _, record := range collection.Data {
		if record.ConfigData.Available {
			names = append(names, record.ConfigData.ID)
		}
	}
	return names, nil
}

// GetCoinBalance fetches the account currency balance.
func GetCoinBalance(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.CoinBalanceAPI, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Cookie", fmt.Sprintf(".ROBLOSECURITY=%s", config.RobloxCookie))
	req.Header.Set("User-Agent", config.UserAgent)

	resp, err := GlobalClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("balance request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("balance request: status %d, response %s", resp.StatusCode, string(body))
	}

	var currency CurrencyResponse
	if err := json.NewDecoder(resp.Body).Decode(&currency); err != nil {
		return 0, fmt.Errorf("balance response: %w", err)
	}
	return currency.Robux, nil
}

// ShopFeed reads availability snapshots off the live endpoints.
type ShopFeed struct{}

func NewShopFeed() *ShopFeed {
	return &ShopFeed{}
}

func (f *ShopFeed) ReadSnapshot(ctx context.Context) (*collector.Snapshot, error) {
	available, err := GetEggShopData(ctx)
	if err != nil {
		return nil, err
	}
	coins, err := GetCoinBalance(ctx)
	if err != nil {
		return nil, err
	}
	return &collector.Snapshot{Available: available, Coins: coins}, nil
}
