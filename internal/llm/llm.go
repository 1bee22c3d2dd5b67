package llm

// #region imports
import (
	"context"
	"os"

	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/sidecar"
)

// #endregion

// #region generator

// Generator produces the fallback reply when no tool section rendered.
type Generator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// #endregion

// #region mock

// Mock is the default generator. It never calls out and never fails.
type Mock struct{}

// Generate returns a canned reply pointing the user at the tools.
func (Mock) Generate(_ context.Context, _ string) (string, error) {
	return "Mock LLM reply. Ask me to 'calculate 19*23' to see the calculator tool, " +
		"or ask about your documents, the sample database, or the latest news.", nil
}

// #endregion

// #region from-env

// FromEnv picks the generator: LLM_MODE=sidecar routes through the gRPC
// client at addr, anything else (including unset) uses the mock. The
// returned func releases the client when one was opened.
func FromEnv(addr string) (Generator, func() error, error) {
	if os.Getenv("LLM_MODE") == "sidecar" {
		c, err := sidecar.NewClient(addr)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	}
	return Mock{}, func() error { return nil }, nil
}

// #endregion
