package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

func baseURL() string {
	if url := os.Getenv("E2E_BASE_URL"); url != "" {
		return url
	}
	switch os.Getenv("ENV") {
	case "CI":
		return "http://movie-search:3000/api/v1"
	}
	return "http://localhost:3000/api/v1"
}

type SubmitRequest struct {
	UserID string   `json:"user_id"`
	RoomID string   `json:"room_id"`
	Genres []string `json:"genres"`
	Years  []int    `json:"years"`
}

type StatusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func main() {
	fmt.Println("Starting E2E tests for movie search API...")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	if !waitForService(client) {
		os.Exit(1)
	}

	if err := runFlow(client); err != nil {
		fmt.Printf("E2E flow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("All E2E tests passed")
}

// runFlow drives a fresh room through the public API. Sessions are owned by
// another service, so the room has nobody online and must stay waiting.
func runFlow(client *http.Client) error {
	roomID := "e2e-" + uuid.NewString()

	code, _, err := checkStatus(client, roomID)
	if err != nil {
		return err
	}
	if code != http.StatusNotFound {
		return fmt.Errorf("fresh room: want 404, got %d", code)
	}

	code, resp, err := submit(client, SubmitRequest{
		UserID: "e2e-user",
		RoomID: roomID,
		Genres: []string{"драма", "комедия"},
		Years:  []int{1990, 2000},
	})
	if err != nil {
		return err
	}
	if code != http.StatusOK || resp.Status != "waiting" {
		return fmt.Errorf("submit: want 200 waiting, got %d %+v", code, resp)
	}
	fmt.Printf(" Submitted preferences to room %s\n", roomID)

	code, resp, err = checkStatus(client, roomID)
	if err != nil {
		return err
	}
	if code != http.StatusOK || resp.Status != "waiting" {
		return fmt.Errorf("check-status: want 200 waiting, got %d %+v", code, resp)
	}

	code, resp, err = submit(client, SubmitRequest{
		UserID: "e2e-user",
		RoomID: roomID,
		Genres: []string{"драма"},
		Years:  []int{2010, 2000},
	})
	if err != nil {
		return err
	}
	if code != http.StatusBadRequest || resp.Error == "" {
		return fmt.Errorf("reversed years: want 400 with error, got %d %+v", code, resp)
	}

	return nil
}

func waitForService(client *http.Client) bool {
	fmt.Println(" Waiting for service to be ready...")

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		resp, err := client.Get(baseURL() + "/check-status")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusBadRequest {
				fmt.Println(" Service is ready!")
				return true
			}
		}

		if i < maxRetries-1 {
			fmt.Printf(" Service not ready yet (attempt %d/%d)...\n", i+1, maxRetries)
			time.Sleep(2 * time.Second)
		}
	}

	fmt.Println(" Service didn't start in time")
	return false
}

func submit(client *http.Client, req SubmitRequest) (int, StatusResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, StatusResponse{}, err
	}

	resp, err := client.Post(baseURL()+"/submit-preferences", "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, StatusResponse{}, fmt.Errorf("submit request failed: %w", err)
	}
	defer resp.Body.Close()

	return decode(resp)
}

func checkStatus(client *http.Client, roomID string) (int, StatusResponse, error) {
	resp, err := client.Get(baseURL() + "/check-status?room_id=" + roomID)
	if err != nil {
		return 0, StatusResponse{}, fmt.Errorf("check-status request failed: %w", err)
	}
	defer resp.Body.Close()

	return decode(resp)
}

func decode(resp *http.Response) (int, StatusResponse, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, StatusResponse{}, err
	}

	var out StatusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return resp.StatusCode, StatusResponse{}, fmt.Errorf("bad response body %q: %w", raw, err)
	}
	return resp.StatusCode, out, nil
}
