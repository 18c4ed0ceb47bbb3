package fetcher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"engsoc.net/eweek/internal/events"
	"engsoc.net/eweek/internal/leaderboard"
	"engsoc.net/eweek/internal/types"
)

// requestTimeout matches the mobile client's axios timeout. A request past
// it counts as failed and triggers whatever fallback the caller defines.
const requestTimeout = 15 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) GetEvents(query url.Values) ([]types.EventRecord, error) {
	path := "/api/createEvents/getEvents"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.fetchEvents(path)
}

func (c *Client) UpcomingEvents() ([]types.EventRecord, error) {
	return c.fetchEvents("/api/createEvents/UpcomingEvents")
}

func (c *Client) LiveEvents() ([]types.EventRecord, error) {
	return c.fetchEvents("/api/createEvents/LiveEvents")
}

func (c *Client) FinishedEvents() ([]types.EventRecord, error) {
	return c.fetchEvents("/api/createEvents/FinishedEvents")
}

func (c *Client) fetchEvents(path string) ([]types.EventRecord, error) {
	body, err := c.get(path)
	if err != nil {
		return nil, err
	}

	var raw []events.RawEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Printf("ERROR: %s returned an unexpected body: %s\n", path, err)
		return nil, errors.New("failed to parse events response")
	}

	return events.NormalizeAll(raw), nil
}

func (c *Client) EventById(id string) (*types.EventRecord, error) {
	body, err := c.post("/api/createEvents/getEventsById", eventByIdRequest{EventId: id})
	if err != nil {
		return nil, err
	}

	var raw events.RawEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.New("failed to parse event response")
	}

	ev := events.Normalize(raw)
	if len(ev.Id) == 0 {
		return nil, nil
	}
	return &ev, nil
}

// Register forwards a registration upstream. Fire and forget: the backend's
// message comes back as-is and nothing is retried.
func (c *Client) Register(payload RegistrationPayload) (string, error) {
	body, err := c.post("/api/register", payload)
	if err != nil {
		return "", err
	}

	ack := RegisterAck{}
	if err := json.Unmarshal(body, &ack); err != nil {
		return "Registration submitted", nil
	}
	if len(ack.Message) == 0 {
		return "Registration submitted", nil
	}
	return ack.Message, nil
}

func (c *Client) LiveLeaderboard() (leaderboard.Payload, error) {
	body, err := c.get("/api/LeaderBoard/getLeaderBoard")
	if err != nil {
		return leaderboard.Payload{Kind: leaderboard.KindNone}, err
	}
	return leaderboard.ParsePayload(body), nil
}

func (c *Client) DemoLeaderboard() (leaderboard.Payload, error) {
	body, err := c.get("/api/leaderboard")
	if err != nil {
		return leaderboard.Payload{Kind: leaderboard.KindNone}, err
	}
	return leaderboard.ParsePayload(body), nil
}

// FetchLeaderboard runs the fallback chain: the live board first, the demo
// board when that fails. Only when both fail does the caller see an error.
func (c *Client) FetchLeaderboard() (leaderboard.Payload, error) {
	payload, err := c.LiveLeaderboard()
	if err == nil {
		return payload, nil
	}
	log.Printf("WARN: live leaderboard unavailable, trying demo: %s\n", err)

	payload, err = c.DemoLeaderboard()
	if err != nil {
		return leaderboard.Payload{Kind: leaderboard.KindNone}, errors.New("both leaderboard sources failed")
	}
	return payload, nil
}

func (c *Client) Health() error {
	_, err := c.get("/api/health")
	return err
}

func (c *Client) get(path string) ([]byte, error) {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		log.Printf("WARN: failed to create request for %s\n", path)
		return nil, fmt.Errorf("failed to fetch %s", path)
	}
	req.Header.Add("Accept", "application/json")

	return c.do(req, path)
}

func (c *Client) post(path string, body any) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode body for %s", path)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		log.Printf("WARN: failed to create request for %s\n", path)
		return nil, fmt.Errorf("failed to fetch %s", path)
	}
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Content-Type", "application/json")

	return c.do(req, path)
}

func (c *Client) do(req *http.Request, path string) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("ERROR: %s\n", err)
		return nil, fmt.Errorf("failed to fetch %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s, status: %d", path, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
