package service

import (
	"errors"
	"math"
	"time"

	"avika/internal/model"
)

// ErrNotComplete is returned when a full report is requested before every
// item is covered and the partial flag was not set. This is a caller error,
// rejected at the boundary rather than silently ignored.
var ErrNotComplete = errors.New("assessment not complete")

// ReportService computes score aggregates from session state. Pure and
// deterministic: the same covered-items input always yields the same report.
type ReportService struct {
	catalog *model.Catalog
}

// NewReportService creates a new report service.
func NewReportService(catalog *model.Catalog) *ReportService {
	return &ReportService{catalog: catalog}
}

// BuildReport derives the assessment report from session state. The caller
// must hold the session's turn lock. With allowPartial, categories without
// any covered item are marked insufficient and excluded from the overall
// mean; without it, an incomplete session is rejected.
func (s *ReportService) BuildReport(sess *model.Session, allowPartial bool) (*model.Report, error) {
	if len(sess.Covered) < s.catalog.Len() && !allowPartial {
		return nil, ErrNotComplete
	}

	report := &model.Report{
		SessionID:   sess.ID,
		Partial:     len(sess.Covered) < s.catalog.Len(),
		GeneratedAt: time.Now(),
	}

	sum := 0.0
	scored := 0
	for _, cat := range s.catalog.Categories {
		cs := model.CategoryScore{
			Name:       cat.Name,
			TotalItems: len(cat.Items),
		}
		total := 0
		for _, it := range cat.Items {
			ans, ok := sess.Covered[it.ID]
			if !ok {
				continue
			}
			opt, _ := it.Option(ans.OptionLabel)
			optText := ""
			if opt != nil {
				optText = opt.Text
			}
			cs.Items = append(cs.Items, model.ItemResult{
				ItemID:      it.ID,
				Intent:      it.Intent,
				OptionLabel: ans.OptionLabel,
				OptionText:  optText,
				Score:       ans.Score,
				Source:      ans.Source,
			})
			total += ans.Score
			cs.CoveredItems++
		}
		if cs.CoveredItems == 0 {
			cs.Insufficient = true
		} else {
			cs.Raw = float64(total) / float64(cs.CoveredItems)
			cs.Display = round1(cs.Raw)
			sum += cs.Raw
			scored++
		}
		report.Categories = append(report.Categories, cs)
	}

	if scored > 0 {
		report.Overall = sum / float64(scored)
		report.OverallDisp = round1(report.Overall)
	}
	return report, nil
}

// BuildProgress computes coverage counts for progress events. The caller
// must hold the session's turn lock.
func (s *ReportService) BuildProgress(sess *model.Session) model.Progress {
	p := model.Progress{
		Total:       s.catalog.Len(),
		PerCategory: make(map[string]model.CategoryProgress),
	}
	for _, cat := range s.catalog.Categories {
		cp := model.CategoryProgress{Total: len(cat.Items)}
		for _, it := range cat.Items {
			if sess.IsCovered(it.ID) {
				cp.Covered++
			}
		}
		p.PerCategory[cat.Name] = cp
		p.Covered += cp.Covered
	}
	if p.Total > 0 {
		p.Percent = round1(float64(p.Covered) / float64(p.Total) * 100)
	}
	return p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
