package sidecar

// #region imports
import (
	"context"
	"fmt"

	pb "github.com/fidelisnguakaaga20/project-7-multi-tool-agent/gen/agent"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #endregion

// #region types

// WebResult holds a single web search result from a WebSearch RPC call.
type WebResult struct {
	Title   string
	URL     string
	Snippet string
}

// #endregion

// #region client-struct

// Client wraps the gRPC connection to the sidecar service, which hosts the
// collaborators that need a model or the network: text generation and live
// web search.
type Client struct {
	conn   *grpc.ClientConn
	client pb.SidecarClient
}

// #endregion

// #region constructor

// NewClient connects to the sidecar gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, client: pb.NewSidecarClient(conn)}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.SidecarClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion

// #region generate

// Generate sends the raw message to the sidecar and returns its reply text.
func (c *Client) Generate(ctx context.Context, message string) (string, error) {
	resp, err := c.client.Generate(ctx, &pb.GenerateRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("generate rpc: %w", err)
	}
	return resp.GetText(), nil
}

// #endregion

// #region web-search

// WebSearch queries the live web via the sidecar.
func (c *Client) WebSearch(ctx context.Context, query string, maxResults int) ([]WebResult, error) {
	resp, err := c.client.WebSearch(ctx, &pb.WebSearchRequest{
		Query:      query,
		MaxResults: int32(maxResults),
	})
	if err != nil {
		return nil, fmt.Errorf("web search rpc: %w", err)
	}

	results := make([]WebResult, len(resp.GetResults()))
	for i, r := range resp.GetResults() {
		results[i] = WebResult{
			Title:   r.GetTitle(),
			URL:     r.GetUrl(),
			Snippet: r.GetSnippet(),
		}
	}
	return results, nil
}

// #endregion
