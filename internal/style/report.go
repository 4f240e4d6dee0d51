package style

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LabelRate is one entry of a success report.
type LabelRate struct {
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// SuccessReport is an ordered set of success rates. Order decides ties.
type SuccessReport []LabelRate

// Best returns the first entry holding the maximum rate.
func (r SuccessReport) Best() (LabelRate, bool) {
	if len(r) == 0 {
		return LabelRate{}, false
	}
	best := r[0]
	for _, e := range r[1:] {
		if e.Rate > best.Rate {
			best = e
		}
	}
	return best, true
}

// ToneReport labels each tone's rate with its template text so that
// tone-keyed data can be fed to UpdateWeights. Entries follow Tones order.
func ToneReport(rates map[Tone]float64) SuccessReport {
	var report SuccessReport
	for _, t := range Tones {
		if r, ok := rates[t]; ok {
			report = append(report, LabelRate{Label: Template(t), Rate: r})
		}
	}
	return report
}

// ParseSuccessReport decodes a JSON object of label -> rate, keeping the
// order in which labels appear in the document. A repeated label keeps the
// position of its first occurrence and the rate of its last.
func ParseSuccessReport(data []byte) (SuccessReport, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidReport)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object of label to rate", ErrInvalidReport)
	}

	var (
		report SuccessReport
		err    error
	)
	index := make(map[string]int)
	doc.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			err = fmt.Errorf("%w: rate for %q is not a number", ErrInvalidReport, key.String())
			return false
		}
		label := key.String()
		if i, ok := index[label]; ok {
			report[i].Rate = value.Float()
			return true
		}
		index[label] = len(report)
		report = append(report, LabelRate{Label: label, Rate: value.Float()})
		return true
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// LoadSuccessReport reads and parses a report file.
func LoadSuccessReport(path string) (SuccessReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read success report: %w", err)
	}
	return ParseSuccessReport(data)
}
