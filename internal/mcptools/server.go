package mcptools

import (
	"context"
	"log/slog"

	"github.com/chris-regnier/sunspot/internal/clock"
	"github.com/chris-regnier/sunspot/internal/logging"
	"github.com/chris-regnier/sunspot/internal/mood"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MoodStore is the record store the tools read and write.
type MoodStore interface {
	LoadToday(today string) (mood.Record, bool, error)
	Upsert(r mood.Record) error
}

// Deps bundles what the tool handlers need.
type Deps struct {
	Store MoodStore
	Clock clock.Clock
	// DataDir is used for prompt cache invalidation after writes; "" skips it.
	DataDir string
	Logger  *slog.Logger
}

// NewMoodMCPServer creates an in-memory MCP server exposing the mood tools.
// Returns the server and a client transport for connecting to it.
func NewMoodMCPServer(deps Deps) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(deps)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the mood tools registered.
func CreateMCPServer(deps Deps) *mcp.Server {
	if deps.Clock == nil {
		deps.Clock = clock.System()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	deps.Logger = deps.Logger.With("component", "mcp")

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sunspot",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_today_mood",
		Description: "Get the mood recorded for today, if any",
	}, GetTodayHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_moods",
		Description: "List the mood palette in display order",
	}, ListMoodsHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify_weather",
		Description: "Map a WMO weather code to a mood and theme",
	}, ClassifyWeatherHandler())

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_mood",
		Description: "Record today's mood, replacing any earlier record for today",
	}, RecordMoodHandler(deps))

	return server
}
