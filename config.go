package barion

import (
	"fmt"
	"strings"
	"time"
)

// Environment selects the upstream API deployment.
type Environment string

const (
	// EnvironmentTest targets the Barion sandbox.
	EnvironmentTest Environment = "test"

	// EnvironmentProd targets the live Barion API.
	EnvironmentProd Environment = "prod"
)

// baseURLs maps each environment to its API origin.
var baseURLs = map[Environment]string{
	EnvironmentTest: "https://api.test.barion.com",
	EnvironmentProd: "https://api.barion.com",
}

// BaseURL returns the API origin for the environment. Panics are avoided:
// an unknown environment yields the test origin, but ParseEnvironment should
// be used to reject unknown names up front.
func (e Environment) BaseURL() string {
	if url, ok := baseURLs[e]; ok {
		return url
	}
	return baseURLs[EnvironmentTest]
}

// ParseEnvironment converts a user-supplied environment name. The empty
// string defaults to the test environment.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(EnvironmentTest):
		return EnvironmentTest, nil
	case string(EnvironmentProd), "production", "live":
		return EnvironmentProd, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEnvironment, s)
	}
}

// TimeoutConfig holds the HTTP timeout applied to upstream calls whose
// context carries no deadline of its own.
type TimeoutConfig struct {
	// RequestTimeout is the per-call ceiling for one upstream round trip.
	RequestTimeout time.Duration
}

// DefaultTimeouts provides the default per-call timeout.
var DefaultTimeouts = TimeoutConfig{
	RequestTimeout: 30 * time.Second,
}

// Validate ensures the timeout values are usable.
func (tc TimeoutConfig) Validate() error {
	if tc.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", tc.RequestTimeout)
	}
	return nil
}
