package api

// --- Release / Report Methods ---

func (c *Client) ListReleases() ([]Release, error) {
	data, err := c.get("/api/releases")
	if err != nil {
		return nil, err
	}
	return decodeList[Release](data)
}

func (c *Client) ListReports() ([]Report, error) {
	data, err := c.get("/api/reports")
	if err != nil {
		return nil, err
	}
	return decodeList[Report](data)
}
