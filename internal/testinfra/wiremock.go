//go:build integration
// +build integration

package testinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// WiremockContainer stands in for the redirect-style banks in integration tests.
type WiremockContainer struct {
	Container testcontainers.Container
	BaseURL   string
}

func NewWiremock(ctx context.Context, mappingsPath string) (*WiremockContainer, error) {
	absPath, err := filepath.Abs(mappingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	req := testcontainers.ContainerRequest{
		Image:        "wiremock/wiremock:3.9.1",
		ExposedPorts: []string{"8080/tcp"},
		WaitingFor:   wait.ForHTTP("/__admin/mappings").WithPort("8080/tcp"),
		Cmd:          []string{"--global-response-templating", "--disable-gzip", "--verbose"},
		Mounts: testcontainers.Mounts(
			testcontainers.BindMount(absPath, "/home/wiremock/mappings"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start wiremock container: %w", err)
	}

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "8080/tcp")
	baseURL := fmt.Sprintf("http://%s:%s", host, port.Port())

	return &WiremockContainer{
		Container: container,
		BaseURL:   baseURL,
	}, nil
}

// Requests returns how many requests wiremock received for a URL path.
func (c *WiremockContainer) Requests(ctx context.Context, path string) (int, error) {
	body := strings.NewReader(fmt.Sprintf(`{"method":"ANY","urlPath":%q}`, path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/__admin/requests/count", body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var out struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// ResetRequests clears the request journal.
func (c *WiremockContainer) ResetRequests(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/__admin/requests", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (c *WiremockContainer) Cleanup(ctx context.Context) {
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}
