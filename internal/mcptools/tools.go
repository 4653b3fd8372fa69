package mcptools

import (
	"context"
	"fmt"

	"github.com/chris-regnier/sunspot/internal/mood"
	"github.com/chris-regnier/sunspot/internal/shell"
	"github.com/chris-regnier/sunspot/internal/weather"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetTodayHandler returns the handler for the get_today_mood MCP tool.
func GetTodayHandler(deps Deps) func(ctx context.Context, req *mcp.CallToolRequest, input GetTodayInput) (*mcp.CallToolResult, TodayOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetTodayInput) (*mcp.CallToolResult, TodayOutput, error) {
		today := deps.Clock.Today()
		rec, ok, err := deps.Store.LoadToday(today)
		if err != nil {
			return nil, TodayOutput{}, err
		}
		out := TodayOutput{Date: today, Recorded: ok}
		if ok {
			out.Mood = string(rec.Mood)
			out.Icon = rec.Mood.Icon()
			out.Label = rec.Mood.Label()
			out.Note = rec.Note
			out.Timestamp = rec.Timestamp
		}
		return nil, out, nil
	}
}

// RecordMoodHandler returns the handler for the record_mood MCP tool. It
// replaces any record already stored for today.
func RecordMoodHandler(deps Deps) func(ctx context.Context, req *mcp.CallToolRequest, input RecordMoodInput) (*mcp.CallToolResult, RecordMoodOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecordMoodInput) (*mcp.CallToolResult, RecordMoodOutput, error) {
		m, err := mood.Parse(input.Mood)
		if err != nil {
			return nil, RecordMoodOutput{}, err
		}

		today := deps.Clock.Today()
		_, existed, err := deps.Store.LoadToday(today)
		if err != nil {
			return nil, RecordMoodOutput{}, err
		}

		rec := mood.Record{Date: today, Mood: m, Note: input.Note, Timestamp: deps.Clock.NowMillis()}
		if err := deps.Store.Upsert(rec); err != nil {
			return nil, RecordMoodOutput{}, fmt.Errorf("recording mood: %w", err)
		}
		deps.Logger.Info("mood recorded via mcp", "date", today, "mood", string(m))

		// Invalidate shell prompt cache (best-effort)
		if deps.DataDir != "" {
			_ = shell.InvalidateCache(deps.DataDir)
		}

		return nil, RecordMoodOutput{Date: today, Mood: string(m), Note: input.Note, Replaced: existed}, nil
	}
}

// ListMoodsHandler returns the handler for the list_moods MCP tool.
func ListMoodsHandler() func(ctx context.Context, req *mcp.CallToolRequest, input ListMoodsInput) (*mcp.CallToolResult, ListMoodsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListMoodsInput) (*mcp.CallToolResult, ListMoodsOutput, error) {
		opts := mood.All()
		out := ListMoodsOutput{Moods: make([]MoodResult, len(opts))}
		for i, o := range opts {
			out.Moods[i] = MoodResult{Type: string(o.Type), Icon: o.Icon, Label: o.Label}
		}
		return nil, out, nil
	}
}

// ClassifyWeatherHandler returns the handler for the classify_weather MCP tool.
func ClassifyWeatherHandler() func(ctx context.Context, req *mcp.CallToolRequest, input ClassifyWeatherInput) (*mcp.CallToolResult, ClassifyWeatherOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ClassifyWeatherInput) (*mcp.CallToolResult, ClassifyWeatherOutput, error) {
		w := weather.Describe(input.Code, input.Temperature)
		return nil, ClassifyWeatherOutput{
			Mood:        string(w.Type),
			Icon:        w.Icon,
			Description: w.Description,
			Temperature: w.Temperature,
			Theme:       weather.ThemeFor(w.Type),
		}, nil
	}
}
