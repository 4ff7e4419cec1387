package di

import (
	"fmt"
	"sync"

	"checkout/internal/clients/datadog"
	"checkout/internal/clients/listapi"
	"checkout/internal/config"
	"checkout/internal/sdk"
	"checkout/internal/session"
	"checkout/internal/ui"
)

// Container holds all application dependencies
type Container struct {
	config         *config.Config
	listClient     listapi.Interface
	sessionService *session.Service
	reporter       datadog.OutcomeReporter
	terminal       *ui.Terminal
	mu             sync.RWMutex
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{}
}

// Initialize builds all services from cfg for the named binary
func (c *Container) Initialize(cfg *config.Config, binaryName string) error {
	if cfg == nil {
		return fmt.Errorf("configuration is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.config = cfg

	listClient := listapi.NewClient(cfg.ListAPI)
	if listClient == nil {
		return fmt.Errorf("failed to initialize Payment API client")
	}
	c.listClient = listClient
	c.sessionService = session.NewService(listClient, cfg.Session)
	c.terminal = ui.NewTerminal()

	// Outcome reporting stays off without Datadog credentials
	if cfg.Datadog.Enabled() {
		c.reporter = datadog.NewReporter(datadog.NewClient(cfg.Datadog), cfg.Datadog, binaryName)
	} else {
		c.reporter = datadog.NopReporter{}
	}

	return nil
}

// ListClient returns the Payment API client
func (c *Container) ListClient() listapi.Interface {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listClient
}

// SessionService returns the payment session service
func (c *Container) SessionService() *session.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionService
}

// Reporter returns the outcome reporter
func (c *Container) Reporter() datadog.OutcomeReporter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reporter
}

// ClientSet contains all client dependencies for commands
type ClientSet struct {
	Config   *config.Config
	ListAPI  listapi.Interface
	Session  *session.Service
	Reporter datadog.OutcomeReporter
	Prompter sdk.Prompter

	// NewLauncher creates the payment SDK for one configuration
	NewLauncher func(cfg *sdk.Configuration) sdk.Launcher
}

// GetClientSet returns all clients as a convenient struct
func (c *Container) GetClientSet() *ClientSet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	listClient := c.listClient
	terminal := c.terminal
	return &ClientSet{
		Config:   c.config,
		ListAPI:  listClient,
		Session:  c.sessionService,
		Reporter: c.reporter,
		Prompter: terminal,
		NewLauncher: func(cfg *sdk.Configuration) sdk.Launcher {
			return sdk.New(cfg, listClient, terminal)
		},
	}
}
