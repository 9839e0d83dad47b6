package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Domain calls. Each is a thin composition of the HTTP verbs against the
// remote records service contract; none of them add retry or caching.

// Login authenticates and, on success, captures the returned token into the
// credential store.
func (c *Client) Login(ctx context.Context, username, password string) Result {
	result := c.Post(ctx, "/login", map[string]any{
		"username": username,
		"password": password,
	})
	if !result.Success {
		return result
	}

	token := result.Str("token")
	if token == "" {
		return failure("login response missing token")
	}
	if err := c.SetToken(token); err != nil {
		c.logger.Error("credential not persisted", "error", err)
	}
	return result
}

// Register creates a new account. It does not log the new user in.
func (c *Client) Register(ctx context.Context, username, email, password string) Result {
	return c.Post(ctx, "/register", map[string]any{
		"username": username,
		"email":    email,
		"password": password,
	})
}

// Logout clears the held credential. Purely local: the remote service keeps
// no session state beyond the token itself.
func (c *Client) Logout() error {
	return c.ClearToken()
}

// Patients fetches the patient list. search filters by name; page/perPage
// control pagination (zero values are omitted and the service defaults apply).
func (c *Client) Patients(ctx context.Context, search string, page, perPage int) Result {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}

	endpoint := "/patients"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	return c.Get(ctx, endpoint)
}

// Patient fetches one patient by id.
func (c *Client) Patient(ctx context.Context, id int) Result {
	return c.Get(ctx, fmt.Sprintf("/patients/%d", id))
}

// CreatePatient creates a patient record.
func (c *Client) CreatePatient(ctx context.Context, fields map[string]any) Result {
	return c.Post(ctx, "/patients", fields)
}

// UpdatePatient updates a patient record.
func (c *Client) UpdatePatient(ctx context.Context, id int, fields map[string]any) Result {
	return c.Put(ctx, fmt.Sprintf("/patients/%d", id), fields)
}

// AddVitals appends a vital-signs record to a patient.
func (c *Client) AddVitals(ctx context.Context, patientID int, fields map[string]any) Result {
	return c.Post(ctx, fmt.Sprintf("/patients/%d/vitals", patientID), fields)
}

// Vitals fetches a patient's vitals history; latestOnly restricts the
// response to the most recent record.
func (c *Client) Vitals(ctx context.Context, patientID int, latestOnly bool) Result {
	endpoint := fmt.Sprintf("/patients/%d/vitals", patientID)
	if latestOnly {
		endpoint += "?latest=true"
	}
	return c.Get(ctx, endpoint)
}

// VitalStats fetches aggregate statistics over a patient's vitals.
func (c *Client) VitalStats(ctx context.Context, patientID int) Result {
	return c.Get(ctx, fmt.Sprintf("/patients/%d/vitals/stats", patientID))
}
