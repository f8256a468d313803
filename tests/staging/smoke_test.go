//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type registration struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	StarterPack []struct {
		ID     int    `json:"id"`
		Rarity string `json:"rarity"`
	} `json:"starter_pack"`
}

func register(t *testing.T, username string) registration {
	t.Helper()
	resp, body := makeRequest(t, "POST", "/users", "", map[string]string{"username": username})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var reg registration
	if err := json.Unmarshal(body, &reg); err != nil {
		t.Fatalf("Failed to unmarshal registration: %v", err)
	}
	t.Cleanup(func() {
		makeRequest(t, "DELETE", "/me", reg.User.ID, nil)
	})
	return reg
}

func TestCatalogEndpoint(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/cards", "", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var cards []map[string]interface{}
	if err := json.Unmarshal(body, &cards); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(cards) == 0 {
		t.Error("Expected a non-empty catalog")
	}
}

func TestRegisterAndForge(t *testing.T) {
	reg := register(t, fmt.Sprintf("staging_%d", time.Now().UnixNano()%1_000_000_000))

	if len(reg.StarterPack) == 0 {
		t.Fatal("Expected a starter pack")
	}

	card := reg.StarterPack[0]
	resp, body := makeRequest(t, "POST", "/me/forge/commit", reg.User.ID, map[string]int{"card_id": card.ID, "quantity": 1})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 from commit, got %d. Body: %s", resp.StatusCode, string(body))
	}

	resp, body = makeRequest(t, "POST", "/me/forge/execute", reg.User.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 from execute, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

func TestTheftBetweenUsers(t *testing.T) {
	suffix := time.Now().UnixNano() % 1_000_000_000
	thief := register(t, fmt.Sprintf("thief_%d", suffix))
	register(t, fmt.Sprintf("victim_%d", suffix))

	resp, body := makeRequest(t, "POST", "/me/thefts", thief.User.ID, nil)
	// other staging users may exist; any committed outcome is fine
	switch resp.StatusCode {
	case http.StatusOK, http.StatusConflict, http.StatusTooManyRequests:
	default:
		t.Errorf("Unexpected status %d. Body: %s", resp.StatusCode, string(body))
	}
}

func TestMeRequiresUser(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}
