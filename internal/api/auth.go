package api

import (
	"encoding/json"
	"fmt"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(username, password string) (*LoginResponse, error) {
	data, err := c.post("/api/auth/login", LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne[LoginResponse](data)
}

// Health calls /api/health and returns its status string.
func (c *Client) Health() (string, error) {
	data, err := c.get("/api/health")
	if err != nil {
		return "", err
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return payload.Status, nil
}
