package api

import "fmt"

// --- User Methods (admin only) ---

func (c *Client) ListUsers() ([]User, error) {
	data, err := c.get("/api/auth/users")
	if err != nil {
		return nil, err
	}
	return decodeList[User](data)
}

func (c *Client) CreateUser(input CreateUserInput) (*User, error) {
	data, err := c.post("/api/auth/users", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[User](data)
}

func (c *Client) UpdateUser(id string, input UpdateUserInput) (*User, error) {
	data, err := c.put(fmt.Sprintf("/api/auth/users/%s", id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[User](data)
}

func (c *Client) DeleteUser(id string) error {
	_, err := c.del(fmt.Sprintf("/api/auth/users/%s", id))
	return err
}

// ResetPassword triggers a server-side password reset for the user.
func (c *Client) ResetPassword(id string) error {
	_, err := c.post(fmt.Sprintf("/api/auth/users/%s/reset-password", id), nil)
	return err
}
