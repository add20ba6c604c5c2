package model

import "time"

// ItemResult is one answered item inside a report category.
type ItemResult struct {
	ItemID      string       `json:"itemId"`
	Intent      string       `json:"intent"`
	OptionLabel string       `json:"optionLabel"`
	OptionText  string       `json:"optionText"`
	Score       int          `json:"score"`
	Source      AnswerSource `json:"source"`
}

// CategoryScore aggregates one category. Raw keeps full precision for any
// further computation; Display is rounded to one decimal place. Insufficient
// marks a category with zero covered items in a partial report; such
// categories are excluded from the overall mean rather than silently scored
// zero.
type CategoryScore struct {
	Name         string       `json:"name"`
	Raw          float64      `json:"raw"`
	Display      float64      `json:"display"`
	CoveredItems int          `json:"coveredItems"`
	TotalItems   int          `json:"totalItems"`
	Insufficient bool         `json:"insufficient"`
	Items        []ItemResult `json:"items,omitempty"`
}

// Report is the final per-category and overall score summary. Derived from
// session state on demand, never stored.
type Report struct {
	SessionID   string          `json:"sessionId"`
	Partial     bool            `json:"partial"`
	Categories  []CategoryScore `json:"categories"`
	Overall     float64         `json:"overall"`        // raw mean of category raws
	OverallDisp float64         `json:"overallDisplay"` // rounded to one decimal
	GeneratedAt time.Time       `json:"generatedAt"`
}

// CategoryProgress is per-category coverage for progress events.
type CategoryProgress struct {
	Covered int `json:"covered"`
	Total   int `json:"total"`
}

// Progress describes how far a session has advanced through the catalog.
type Progress struct {
	Covered     int                         `json:"covered"`
	Total       int                         `json:"total"`
	Percent     float64                     `json:"percent"`
	PerCategory map[string]CategoryProgress `json:"perCategory"`
}
