package model

// DateOption is one entry of the date selector
type DateOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Figure is a chart description in plotly.js figure format
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single bar series
type Trace struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	LegendGroup  string   `json:"legendgroup"`
	OffsetGroup  string   `json:"offsetgroup"`
	ShowLegend   bool     `json:"showlegend"`
	Orientation  string   `json:"orientation"`
	X            []string `json:"x"`
	Y            []int    `json:"y"`
	Marker       Marker   `json:"marker"`
	TextPosition string   `json:"textposition"`
}

// Marker holds the bar style
type Marker struct {
	Color string `json:"color"`
}

// Layout is the figure layout
type Layout struct {
	Title   Title  `json:"title"`
	BarMode string `json:"barmode"`
	XAxis   Axis   `json:"xaxis"`
	YAxis   Axis   `json:"yaxis"`
}

// Axis is an axis description
type Axis struct {
	Title Title `json:"title"`
}

// Title is a text label
type Title struct {
	Text string `json:"text"`
}
