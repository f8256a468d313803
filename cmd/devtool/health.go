package main

import (
	"fmt"
	"net/http"
	"time"
)

const defaultHealthURL = "http://localhost:8080/readyz"

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check application readiness (default " + defaultHealthURL + ")"
}

func (c *HealthCheckCommand) Run(args []string) error {
	url := defaultHealthURL
	if len(args) > 0 {
		url = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", url))

	start := time.Now()
	if err := checkHealth(url); err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}
	duration := time.Since(start)

	if duration > 1*time.Second {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}

	return nil
}

func checkHealth(url string) error {
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil
}
