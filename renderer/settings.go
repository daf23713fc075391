package renderer

// RenderSettings controls the canvas and the look of the map
type RenderSettings struct {
	Width             float64 `json:"width" validate:"gte=0,lte=100000"`
	Height            float64 `json:"height" validate:"gte=0,lte=100000"`
	Padding           float64 `json:"padding" validate:"gte=0"`
	LineWidth         float64 `json:"line_width" validate:"gte=0,lte=100000"`
	StopRadius        float64 `json:"stop_radius" validate:"gte=0,lte=100000"`
	BusLabelFontSize  uint32  `json:"bus_label_font_size" validate:"lte=100000"`
	BusLabelOffset    Point   `json:"bus_label_offset"`
	StopLabelFontSize uint32  `json:"stop_label_font_size" validate:"lte=100000"`
	StopLabelOffset   Point   `json:"stop_label_offset"`
	UnderlayerColor   Color   `json:"underlayer_color"`
	UnderlayerWidth   float64 `json:"underlayer_width" validate:"gte=0,lte=100000"`
	ColorPalette      []Color `json:"color_palette" validate:"min=1"`
}
