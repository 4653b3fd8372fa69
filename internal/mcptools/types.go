package mcptools

// GetTodayInput is the input schema for the get_today_mood MCP tool.
type GetTodayInput struct{}

// TodayOutput is the output schema for get_today_mood.
type TodayOutput struct {
	Date      string `json:"date"`
	Recorded  bool   `json:"recorded"`
	Mood      string `json:"mood,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Label     string `json:"label,omitempty"`
	Note      string `json:"note,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// RecordMoodInput is the input schema for the record_mood MCP tool.
type RecordMoodInput struct {
	Mood string `json:"mood" jsonschema-description:"One of sunny, cloudy, rainy, stormy, rainbow"`
	Note string `json:"note,omitempty" jsonschema-description:"Optional free-text note"`
}

// RecordMoodOutput is the output schema for record_mood.
type RecordMoodOutput struct {
	Date     string `json:"date"`
	Mood     string `json:"mood"`
	Note     string `json:"note,omitempty"`
	Replaced bool   `json:"replaced"`
}

// ListMoodsInput is the input schema for the list_moods MCP tool.
type ListMoodsInput struct{}

// ListMoodsOutput is the output schema for list_moods.
type ListMoodsOutput struct {
	Moods []MoodResult `json:"moods"`
}

// MoodResult is one palette entry.
type MoodResult struct {
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// ClassifyWeatherInput is the input schema for the classify_weather MCP tool.
type ClassifyWeatherInput struct {
	Code        int     `json:"code" jsonschema-description:"WMO weather interpretation code"`
	Temperature float64 `json:"temperature,omitempty" jsonschema-description:"Temperature in degrees Celsius"`
}

// ClassifyWeatherOutput is the output schema for classify_weather.
type ClassifyWeatherOutput struct {
	Mood        string `json:"mood"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Temperature int    `json:"temperature"`
	Theme       string `json:"theme"`
}
