package api

import "fmt"

// --- Project Methods ---

func (c *Client) ListProjects() ([]Project, error) {
	data, err := c.get("/api/projects")
	if err != nil {
		return nil, err
	}
	return decodeList[Project](data)
}

func (c *Client) GetProject(id string) (*Project, error) {
	data, err := c.get(fmt.Sprintf("/api/projects/%s", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[Project](data)
}

func (c *Client) CreateProject(input CreateProjectInput) (*Project, error) {
	data, err := c.post("/api/projects", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Project](data)
}

func (c *Client) UpdateProject(id string, input UpdateProjectInput) (*Project, error) {
	data, err := c.put(fmt.Sprintf("/api/projects/%s", id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Project](data)
}

func (c *Client) DeleteProject(id string) error {
	_, err := c.del(fmt.Sprintf("/api/projects/%s", id))
	return err
}
